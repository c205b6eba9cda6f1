package classify

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// Strategy confidence constants. Attribute matches are author-authoritative
// and carry the highest confidence; context matches only break ties or
// fill gaps.
const (
	confAttributeExact     = 0.9
	confAttributeSubstring = 0.8
	confLabelExact         = 0.75
	confLabelContains      = 0.6
	confContext            = 0.4
	confTypeInference      = 0.6
)

// scores accumulates per-field-type confidence, keeping the maximum seen
// across strategies rather than a sum, so correlated signals do not
// inflate the result.
type scores map[types.FieldType]float64

func (s scores) raise(ft types.FieldType, confidence float64) {
	if confidence > s[ft] {
		s[ft] = confidence
	}
}

// applyAttributeStrategy matches name/id/placeholder (and the semantic
// input type itself, which is equally author-authoritative) against known
// attribute tokens per field type.
func applyAttributeStrategy(d types.FieldDescriptor, lib *patterns.Library, s scores) {
	attrs := []string{
		normalizeAttr(d.Name),
		normalizeAttr(d.ID),
		normalizeAttr(d.Placeholder),
	}

	for ft, tokens := range lib.AttributeTokens() {
		for _, attr := range attrs {
			if attr == "" {
				continue
			}
			for _, token := range tokens {
				if attr == token {
					s.raise(ft, confAttributeExact)
				} else if strings.Contains(attr, token) {
					s.raise(ft, confAttributeSubstring)
				}
			}
		}
	}

	// An explicit type="email" or type="tel" is an attribute declaration
	// of the field's semantics.
	switch d.Kind {
	case types.KindEmail:
		s.raise(types.FieldTypeEmail, confAttributeExact)
	case types.KindTel:
		s.raise(types.FieldTypePhone, confAttributeExact)
	}
}

// applyLabelStrategy fuzzily matches the associated label text against the
// synonym table. A label that is exactly a synonym scores higher than one
// that merely contains it.
func applyLabelStrategy(d types.FieldDescriptor, lib *patterns.Library, s scores) {
	label := strings.ToLower(strings.TrimSpace(d.LabelText))
	if label == "" {
		return
	}
	label = strings.TrimRight(label, ":*")
	label = strings.TrimSpace(label)

	for ft, synonyms := range lib.LabelSynonyms() {
		for _, syn := range synonyms {
			if label == syn {
				s.raise(ft, confLabelExact)
			} else if strings.Contains(label, syn) {
				s.raise(ft, confLabelContains)
			}
		}
	}
}

// applyContextStrategy scans the surrounding text for category keywords.
func applyContextStrategy(d types.FieldDescriptor, lib *patterns.Library, s scores) {
	context := strings.ToLower(d.SurroundingText)
	if context == "" {
		return
	}
	for ft, keywords := range lib.ContextKeywords() {
		for _, kw := range keywords {
			if strings.Contains(context, kw) {
				s.raise(ft, confContext)
			}
		}
	}
}

// largeTextareaRows is the row count at or above which a textarea is
// assumed to hold pasted resume text rather than a cover letter.
const largeTextareaRows = 8

// applyTypeStrategy infers a field type from the control kind alone,
// independent of naming: url inputs suggest a portfolio link, textareas
// suggest long-form cover-letter or resume text depending on size.
func applyTypeStrategy(d types.FieldDescriptor, s scores) {
	switch d.Kind {
	case types.KindURL:
		s.raise(types.FieldTypePortfolioURL, confTypeInference)
	case types.KindTextarea:
		if d.Rows >= largeTextareaRows {
			s.raise(types.FieldTypeResumeText, confTypeInference)
		} else {
			s.raise(types.FieldTypeCoverLetter, confTypeInference)
		}
	}
}

// normalizeAttr lowercases an attribute value for token comparison.
func normalizeAttr(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
