// Package classify maps form field descriptors to semantic profile field
// types using layered local heuristics, and matches file upload fields
// against stored document metadata. It performs no network calls and
// holds no cross-invocation state.
package classify

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// DefaultThreshold is the minimum confidence required before a mapping is
// surfaced as fillable rather than left unmapped.
const DefaultThreshold = 0.5

// Options configures a classification run.
type Options struct {
	// Threshold overrides DefaultThreshold when > 0.
	Threshold float64
	// Profile, when set, is used to resolve fill values for mapped
	// fields.
	Profile *types.StoredProfile
}

func (o Options) threshold() float64 {
	if o.Threshold > 0 {
		return o.Threshold
	}
	return DefaultThreshold
}

// Classify produces exactly one FieldMapping per descriptor, drawing its
// matching vocabularies from the given pattern library. For each
// descriptor the four strategies run independently and the per-candidate
// maximum wins; ties prefer a field type not yet assigned in this scan,
// then the earlier-declared field type. A best confidence below the
// acceptance threshold yields FieldTypeUnmapped.
func Classify(descriptors []types.FieldDescriptor, lib *patterns.Library, opts Options) []types.FieldMapping {
	threshold := opts.threshold()
	assigned := make(map[types.FieldType]bool)
	mappings := make([]types.FieldMapping, 0, len(descriptors))

	for _, d := range descriptors {
		s := make(scores)
		applyAttributeStrategy(d, lib, s)
		applyLabelStrategy(d, lib, s)
		applyContextStrategy(d, lib, s)
		applyTypeStrategy(d, s)

		ft, confidence := pickBest(s, assigned)

		m := types.FieldMapping{
			Descriptor: d,
			FieldType:  types.FieldTypeUnmapped,
			Confidence: confidence,
		}
		if ft != types.FieldTypeUnmapped && confidence >= threshold {
			m.FieldType = ft
			m.ResolvedValue = resolveValue(ft, opts.Profile)
			assigned[ft] = true
		}
		mappings = append(mappings, m)
	}

	return mappings
}

// pickBest selects the highest-confidence candidate. Iteration follows
// the enumeration order so the result is deterministic; on equal
// confidence an unassigned field type beats an assigned one, and the
// earlier-declared type wins otherwise.
func pickBest(s scores, assigned map[types.FieldType]bool) (types.FieldType, float64) {
	best := types.FieldTypeUnmapped
	bestConf := 0.0
	for _, ft := range types.AllFieldTypes() {
		conf, ok := s[ft]
		if !ok {
			continue
		}
		switch {
		case conf > bestConf:
			best, bestConf = ft, conf
		case conf == bestConf && best != types.FieldTypeUnmapped:
			if assigned[best] && !assigned[ft] {
				best = ft
			}
		}
	}
	return best, bestConf
}

// resolveValue looks up the fill value for a field type in the profile.
// Long-form fields (cover letter, resume text) are left to the caller.
func resolveValue(ft types.FieldType, profile *types.StoredProfile) string {
	if profile == nil {
		return ""
	}
	pi := profile.PersonalInfo
	switch ft {
	case types.FieldTypeFirstName:
		first, _ := splitName(pi.FullName)
		return first
	case types.FieldTypeLastName:
		_, last := splitName(pi.FullName)
		return last
	case types.FieldTypeEmail:
		return pi.Email
	case types.FieldTypePhone:
		return pi.Phone
	case types.FieldTypeAddressLine:
		return pi.Address
	case types.FieldTypeLinkedInURL:
		return pi.LinkedInURL
	case types.FieldTypePortfolioURL:
		return pi.PortfolioURL
	default:
		return ""
	}
}

// splitName splits a full name into first and last on the final space.
func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, ""
	}
	return strings.TrimSpace(full[:idx]), strings.TrimSpace(full[idx+1:])
}
