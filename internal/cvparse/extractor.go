// Package cvparse extracts structured profile data from plain-text CV
// documents using only local heuristics. Document-to-text conversion is a
// collaborator's job; this package starts from plain text.
package cvparse

import (
	"context"
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// DefaultMinInputLength is the minimum text length below which
// extraction is reported as insufficient data rather than attempted.
const DefaultMinInputLength = 30

// DefaultChunkBudget bounds how many section chunks one extraction run
// may process before returning partial results with a timeout status.
const DefaultChunkBudget = 64

// supportedMimeTypes are the document types the extractor has patterns
// for; ExtractFromDocument reports anything else as unsupported.
var supportedMimeTypes = map[string]bool{
	"text/plain":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/rtf":    true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.oasis.opendocument.text":                                 true,
}

// SupportedMimeType reports whether the extractor has patterns for the
// claimed document type.
func SupportedMimeType(mimeType string) bool {
	return supportedMimeTypes[mimeType]
}

// Extractor runs the CV extraction pipeline. It is stateless apart from
// the read-only pattern library and safe for concurrent use.
type Extractor struct {
	lib            *patterns.Library
	chunkBudget    int
	minInputLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithChunkBudget overrides the default chunk budget.
func WithChunkBudget(budget int) Option {
	return func(e *Extractor) {
		if budget > 0 {
			e.chunkBudget = budget
		}
	}
}

// WithMinInputLength overrides the default minimum input length.
func WithMinInputLength(length int) Option {
	return func(e *Extractor) {
		if length > 0 {
			e.minInputLength = length
		}
	}
}

// NewExtractor creates an Extractor backed by the given pattern library.
func NewExtractor(lib *patterns.Library, opts ...Option) *Extractor {
	e := &Extractor{lib: lib, chunkBudget: DefaultChunkBudget, minInputLength: DefaultMinInputLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFromDocument checks the claimed document type before extracting.
// An unsupported type returns an empty result with the format status set;
// no extraction is attempted.
func (e *Extractor) ExtractFromDocument(ctx context.Context, meta types.DocumentMetadata, text string) (*types.ExtractedProfileData, error) {
	if meta.MimeType != "" && !supportedMimeTypes[meta.MimeType] {
		result := types.NewExtractedProfileData()
		result.Status = types.StatusFormatNotSupported
		result.Fingerprint = meta.Fingerprint
		return result, nil
	}
	result, err := e.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	result.Fingerprint = meta.Fingerprint
	return result, nil
}

// Extract runs the full pipeline on normalized CV text. Heuristic
// shortfalls surface as result states; the only error returned is a
// cancelled context, in which case no partial result is produced.
//
// Categories are extracted and scored independently: a panic inside one
// category's heuristics empties that category without aborting the
// others. Identical input always yields an identical result.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ExtractedProfileData, error) {
	result := types.NewExtractedProfileData()

	normalized := normalizeText(text)
	if len(normalized) < e.minInputLength {
		result.Status = types.StatusInsufficientData
		return result, nil
	}

	sections := segment(normalized)
	if !hasRecognizableStructure(sections, normalized) {
		result.Status = types.StatusInsufficientData
		return result, nil
	}

	// Each category is one chunk; the context is checked between chunks
	// so the host can interleave other work or tear the run down. No
	// chunk boundary splits a pattern match because matches never cross
	// sections.
	chunks := []func(){
		func() {
			header := findSection(sections, "header")
			info, found := extractPersonalInfo(e.lib, header, normalized)
			result.PersonalInfo = info
			result.Confidence[types.CategoryPersonalInfo] = personalInfoConfidence(found)
		},
		func() {
			entries, confs := extractExperience(findSection(sections, "experience"))
			result.WorkExperience = entries
			result.Confidence[types.CategoryWorkExperience] = meanConfidence(confs)
		},
		func() {
			entries, confs := extractEducation(e.lib, findSection(sections, "education"))
			result.Education = entries
			result.Confidence[types.CategoryEducation] = meanConfidence(confs)
		},
		func() {
			skills, confs := extractSkills(findSection(sections, "skills"), descriptionText(result))
			result.Skills = skills
			result.Confidence[types.CategorySkills] = meanConfidence(confs)
		},
	}

	failures := 0
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			// Abandoned mid-run: no partial result escapes.
			return nil, &ExtractionError{Message: "run abandoned", Cause: ctx.Err()}
		default:
		}
		if i >= e.chunkBudget {
			result.Status = types.StatusTimeout
			result.Incomplete = true
			return result, nil
		}
		if !runChunk(chunk) {
			failures++
		}
	}

	if failures == len(chunks) {
		empty := types.NewExtractedProfileData()
		empty.Status = types.StatusExtractionFailed
		return empty, nil
	}

	return result, nil
}

// runChunk isolates one category extraction; a panic in its heuristics is
// contained so the remaining categories still run.
func runChunk(chunk func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	chunk()
	return true
}

// hasRecognizableStructure checks that the text has enough shape to apply
// heuristics: multiple lines, or at least one recognized section header
// or structured pattern.
func hasRecognizableStructure(sections []Section, text string) bool {
	if len(sections) > 1 {
		return true
	}
	return strings.Contains(text, "\n")
}

// descriptionText gathers experience and education free text for the
// secondary skill vocabulary scan.
func descriptionText(result *types.ExtractedProfileData) string {
	var b strings.Builder
	for _, we := range result.WorkExperience {
		b.WriteString(we.Description)
		b.WriteString("\n")
		for _, a := range we.Achievements {
			b.WriteString(a)
			b.WriteString("\n")
		}
	}
	for _, edu := range result.Education {
		b.WriteString(edu.FieldOfStudy)
		b.WriteString("\n")
	}
	return b.String()
}
