// Package merge reconciles freshly extracted profile data with a
// previously stored profile, preserving user edits.
package merge

import (
	"fmt"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// Field paths accepted in the user-edited set. Scalar paths protect one
// personal-info field; section paths protect a whole list verbatim
// (entry identity across re-extractions cannot be reliably established
// from text alone, so there is no entry-level merge).
const (
	PathFullName     = "personal_info.full_name"
	PathEmail        = "personal_info.email"
	PathPhone        = "personal_info.phone"
	PathAddress      = "personal_info.address"
	PathLinkedInURL  = "personal_info.linkedin_url"
	PathPortfolioURL = "personal_info.portfolio_url"

	PathWorkExperience = "work_experience"
	PathEducation      = "education"
	PathSkills         = "skills"
)

// StaleError is returned when the extraction was produced from a
// document other than the one the profile currently tracks.
type StaleError struct {
	ProfileFingerprint    string
	ExtractionFingerprint string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("stale extraction: profile tracks document %s, extraction came from %s",
		e.ProfileFingerprint, e.ExtractionFingerprint)
}

// EditedFields is the set of field paths the user has manually edited.
type EditedFields map[string]bool

// Merge produces a new StoredProfile combining the extraction with the
// existing profile. Neither input is mutated.
//
// Rules: an edited field path always keeps the existing value; a
// non-edited field is replaced only when the extraction's category
// confidence is non-zero, so an extraction that found nothing never
// wipes stored data; skills are unioned and deduplicated; the
// experience and education lists are replaced wholesale unless their
// section path is edited.
func Merge(extracted *types.ExtractedProfileData, existing types.StoredProfile, edited EditedFields) (types.StoredProfile, error) {
	if extracted == nil {
		return existing.Clone(), nil
	}
	if extracted.Fingerprint != "" && existing.DocumentFingerprint != "" &&
		extracted.Fingerprint != existing.DocumentFingerprint {
		return types.StoredProfile{}, &StaleError{
			ProfileFingerprint:    existing.DocumentFingerprint,
			ExtractionFingerprint: extracted.Fingerprint,
		}
	}

	merged := existing.Clone()
	if edited == nil {
		edited = EditedFields{}
	}

	personalConfident := extracted.Confidence[types.CategoryPersonalInfo] > 0
	mergeScalar(&merged.PersonalInfo.FullName, extracted.PersonalInfo.FullName, personalConfident, edited[PathFullName])
	mergeScalar(&merged.PersonalInfo.Email, extracted.PersonalInfo.Email, personalConfident, edited[PathEmail])
	mergeScalar(&merged.PersonalInfo.Phone, extracted.PersonalInfo.Phone, personalConfident, edited[PathPhone])
	mergeScalar(&merged.PersonalInfo.Address, extracted.PersonalInfo.Address, personalConfident, edited[PathAddress])
	mergeScalar(&merged.PersonalInfo.LinkedInURL, extracted.PersonalInfo.LinkedInURL, personalConfident, edited[PathLinkedInURL])
	mergeScalar(&merged.PersonalInfo.PortfolioURL, extracted.PersonalInfo.PortfolioURL, personalConfident, edited[PathPortfolioURL])

	if !edited[PathWorkExperience] && extracted.Confidence[types.CategoryWorkExperience] > 0 {
		merged.WorkExperience = cloneExperience(extracted.WorkExperience)
	}
	if !edited[PathEducation] && extracted.Confidence[types.CategoryEducation] > 0 {
		merged.Education = append([]types.Education(nil), extracted.Education...)
	}
	if !edited[PathSkills] && extracted.Confidence[types.CategorySkills] > 0 {
		merged.Skills = unionSkills(merged.Skills, extracted.Skills)
	}

	if merged.Confidence == nil {
		merged.Confidence = make(map[string]float64, len(extracted.Confidence))
	}
	for category, conf := range extracted.Confidence {
		merged.Confidence[category] = conf
	}
	if extracted.Fingerprint != "" {
		merged.DocumentFingerprint = extracted.Fingerprint
	}

	return merged, nil
}

// mergeScalar replaces the destination with the extracted value unless
// the field was user-edited, the extraction is empty, or its category
// confidence is zero.
func mergeScalar(dst *string, extracted string, confident, userEdited bool) {
	if userEdited || !confident || extracted == "" {
		return
	}
	*dst = extracted
}

// unionSkills merges two skill lists, deduplicating case-insensitively.
// Existing entries keep their position and spelling; new skills append in
// extraction order.
func unionSkills(existing, extracted []types.Skill) []types.Skill {
	out := append([]types.Skill(nil), existing...)
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[patterns.NormalizeToken(s.Name)] = true
	}
	for _, s := range extracted {
		key := patterns.NormalizeToken(s.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func cloneExperience(entries []types.WorkExperience) []types.WorkExperience {
	out := append([]types.WorkExperience(nil), entries...)
	for i, we := range out {
		out[i].Achievements = append([]string(nil), we.Achievements...)
	}
	return out
}
