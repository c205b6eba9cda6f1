// Package patterns provides the immutable rule and vocabulary tables used
// by the form field classifier and the CV content extractor.
package patterns

import (
	"regexp"
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// Category identifies a semantic extraction category a rule belongs to.
type Category string

const (
	CategoryEmail     Category = "email"
	CategoryPhone     Category = "phone"
	CategoryLinkedIn  Category = "linkedin"
	CategoryPortfolio Category = "portfolio"
	CategoryURL       Category = "url"
	CategoryDateRange Category = "date_range"
	CategoryDegree    Category = "degree"
	CategoryGPA       Category = "gpa"
)

// Rule is a single extraction rule: a compiled matcher, the confidence a
// match contributes, and a normalizer applied to the raw match. Rules are
// immutable once the library is built.
type Rule struct {
	Category       Category
	Matcher        *regexp.Regexp
	BaseConfidence float64
	Normalize      func(raw string) string
}

// Library is the read-only table of rules and vocabularies. It is built
// once at process start and is safe for concurrent use by any number of
// classification or extraction runs.
type Library struct {
	rules map[Category][]Rule

	attributeTokens map[types.FieldType][]string
	labelSynonyms   map[types.FieldType][]string
	contextKeywords map[types.FieldType][]string
	uploadTokens    map[types.UploadKind][]string
}

// NewLibrary builds the default rule library.
func NewLibrary() *Library {
	lib := &Library{
		rules:           make(map[Category][]Rule),
		attributeTokens: attributeTokens,
		labelSynonyms:   labelSynonyms,
		contextKeywords: contextKeywords,
		uploadTokens:    uploadTokens,
	}

	lib.add(Rule{
		Category:       CategoryEmail,
		Matcher:        regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
		BaseConfidence: 0.95,
		Normalize:      strings.ToLower,
	})
	lib.add(Rule{
		Category: CategoryPhone,
		// The short local-number form is anchored on word boundaries so it
		// cannot start mid-number; without them "2020-2022" yields a bogus
		// "020-2022" match and year ranges turn into phone numbers.
		Matcher:        regexp.MustCompile(`\+?\d{1,3}[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}|\b\d{3}[\s.\-]\d{4}\b`),
		BaseConfidence: 0.85,
		Normalize:      NormalizePhone,
	})
	lib.add(Rule{
		Category:       CategoryLinkedIn,
		Matcher:        regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w.\-]+/?`),
		BaseConfidence: 0.9,
		Normalize:      NormalizeURL,
	})
	lib.add(Rule{
		Category:       CategoryPortfolio,
		Matcher:        regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:github\.com|gitlab\.com|behance\.net|dribbble\.com)/[\w.\-]+/?`),
		BaseConfidence: 0.8,
		Normalize:      NormalizeURL,
	})
	lib.add(Rule{
		Category:       CategoryURL,
		Matcher:        regexp.MustCompile(`https?://[^\s<>"]+`),
		BaseConfidence: 0.6,
		Normalize:      NormalizeURL,
	})
	lib.add(Rule{
		Category:       CategoryDateRange,
		Matcher:        dateRangePattern,
		BaseConfidence: 0.8,
		Normalize:      strings.TrimSpace,
	})
	lib.add(Rule{
		Category:       CategoryDegree,
		Matcher:        regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|associate(?:'s)?|ph\.?d\.?|doctorate|diploma|certificate|b\.?s\.?c?\.?|m\.?s\.?c?\.?|b\.?a\.?|m\.?b\.?a\.?)\b`),
		BaseConfidence: 0.8,
		Normalize:      strings.TrimSpace,
	})
	lib.add(Rule{
		Category:       CategoryGPA,
		Matcher:        regexp.MustCompile(`(?i)gpa[:\s]+([0-4](?:\.\d{1,2})?)(?:\s*/\s*[0-5](?:\.\d)?)?`),
		BaseConfidence: 0.85,
		Normalize:      strings.TrimSpace,
	})

	return lib
}

func (l *Library) add(r Rule) {
	l.rules[r.Category] = append(l.rules[r.Category], r)
}

// Rules returns the rules registered for a category. The returned slice
// must not be modified.
func (l *Library) Rules(c Category) []Rule {
	return l.rules[c]
}

// AttributeTokens returns the per-field-type name/id/placeholder token
// vocabulary. The returned map must not be modified.
func (l *Library) AttributeTokens() map[types.FieldType][]string {
	return l.attributeTokens
}

// LabelSynonyms returns the per-field-type label phrase vocabulary. The
// returned map must not be modified.
func (l *Library) LabelSynonyms() map[types.FieldType][]string {
	return l.labelSynonyms
}

// ContextKeywords returns the per-field-type surrounding-text keyword
// vocabulary. The returned map must not be modified.
func (l *Library) ContextKeywords() map[types.FieldType][]string {
	return l.contextKeywords
}

// UploadTokens returns the per-upload-kind purpose vocabulary. The
// returned map must not be modified.
func (l *Library) UploadTokens() map[types.UploadKind][]string {
	return l.uploadTokens
}

// Match holds a normalized match and the confidence of the rule that
// produced it.
type Match struct {
	Value      string
	Confidence float64
}

// FindAll applies every rule of a category to the text and returns all
// normalized matches in order of occurrence.
func (l *Library) FindAll(c Category, text string) []Match {
	var out []Match
	for _, rule := range l.rules[c] {
		for _, raw := range rule.Matcher.FindAllString(text, -1) {
			value := raw
			if rule.Normalize != nil {
				value = rule.Normalize(raw)
			}
			if value == "" {
				continue
			}
			out = append(out, Match{Value: value, Confidence: rule.BaseConfidence})
		}
	}
	return out
}

// FindBest returns the best match of a category in the text: highest
// confidence wins; on exact confidence ties the last occurrence wins,
// because documents typically restate contact info near the footer as the
// most current.
func (l *Library) FindBest(c Category, text string) (Match, bool) {
	matches := l.FindAll(c, text)
	if len(matches) == 0 {
		return Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence >= best.Confidence {
			best = m
		}
	}
	return best, true
}

// Matches reports whether category c has at least one match in text.
func (l *Library) Matches(c Category, text string) bool {
	for _, rule := range l.rules[c] {
		if rule.Matcher.MatchString(text) {
			return true
		}
	}
	return false
}
