package classify

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// UploadOptions configures an upload matching run.
type UploadOptions struct {
	// MaxDocBytes caps the document size for fields that declare no
	// size limit of their own. Zero means no fallback cap.
	MaxDocBytes int64
}

// MatchUploads matches every file-input descriptor against the candidate
// document's metadata, drawing the purpose vocabulary from the given
// pattern library. Semantic labeling reuses the attribute, label, and
// context strategies restricted to upload-purpose vocabulary;
// compatibility is computed independently from the accept and size
// constraints. All matches are returned, including incompatible ones, so
// the caller can report why a field was skipped — and every compatible
// resume field is returned, not just the best one, because job forms
// frequently duplicate resume inputs.
func MatchUploads(descriptors []types.FieldDescriptor, doc types.DocumentMetadata, lib *patterns.Library, opts UploadOptions) []types.FileUploadMapping {
	var mappings []types.FileUploadMapping
	for _, d := range descriptors {
		if d.Kind != types.KindFile {
			continue
		}
		kind, confidence := classifyUploadPurpose(d, lib)
		mappings = append(mappings, types.FileUploadMapping{
			Descriptor:      d,
			UploadKind:      kind,
			Confidence:      confidence,
			CompatibilityOK: compatible(d, doc, opts),
		})
	}
	return mappings
}

// classifyUploadPurpose scores the upload-purpose vocabulary against the
// field's attributes, label, and surrounding text, taking the per-kind
// maximum across strategies.
func classifyUploadPurpose(d types.FieldDescriptor, lib *patterns.Library) (types.UploadKind, float64) {
	attrs := normalizeAttr(d.Name) + " " + normalizeAttr(d.ID) + " " + normalizeAttr(d.Placeholder)
	label := strings.ToLower(d.LabelText)
	context := strings.ToLower(d.SurroundingText)

	best := types.UploadKindOther
	bestConf := 0.0
	// Fixed evaluation order keeps ties deterministic.
	for _, kind := range []types.UploadKind{types.UploadKindResume, types.UploadKindCoverLetter, types.UploadKindPortfolio} {
		conf := 0.0
		for _, token := range lib.UploadTokens()[kind] {
			if strings.Contains(attrs, strings.ReplaceAll(token, " ", "")) || strings.Contains(attrs, token) {
				conf = max(conf, confAttributeSubstring)
			}
			if strings.Contains(label, token) {
				conf = max(conf, confLabelContains)
			}
			if strings.Contains(context, token) {
				conf = max(conf, confContext)
			}
		}
		if conf > bestConf {
			best, bestConf = kind, conf
		}
	}
	if bestConf == 0 {
		return types.UploadKindOther, 0
	}
	return best, bestConf
}

// compatible reports whether the document's MIME type and size satisfy
// the field's constraints. A field without its own size limit falls back
// to the run's MaxDocBytes cap; unspecified constraints always pass.
func compatible(d types.FieldDescriptor, doc types.DocumentMetadata, opts UploadOptions) bool {
	if !d.Accepts(doc.MimeType) {
		return false
	}
	limit := d.MaxSizeBytes
	if limit == 0 {
		limit = opts.MaxDocBytes
	}
	if limit > 0 && doc.SizeBytes > limit {
		return false
	}
	return true
}
