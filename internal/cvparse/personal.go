package cvparse

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// nameConfidence is the confidence assigned to the positional name
// heuristic, which has no pattern backing it.
const nameConfidence = 0.7

// extractPersonalInfo pulls contact details from the header zone, falling
// back to the whole document for anything the header did not yield. The
// returned map holds the per-sub-field match confidences used for
// category scoring.
func extractPersonalInfo(lib *patterns.Library, header *Section, fullText string) (types.PersonalInfo, map[string]float64) {
	info := types.PersonalInfo{}
	found := make(map[string]float64)

	zones := []string{fullText}
	if header != nil && len(header.Lines) > 0 {
		zones = []string{header.Text(), fullText}
	}

	for _, zone := range zones {
		if info.Email == "" {
			if m, ok := lib.FindBest(patterns.CategoryEmail, zone); ok {
				info.Email = m.Value
				found["email"] = m.Confidence
			}
		}
		if info.Phone == "" {
			if m, ok := lib.FindBest(patterns.CategoryPhone, zone); ok {
				info.Phone = m.Value
				found["phone"] = m.Confidence
			}
		}
		if info.LinkedInURL == "" {
			if m, ok := lib.FindBest(patterns.CategoryLinkedIn, zone); ok {
				info.LinkedInURL = m.Value
				found["linkedin"] = m.Confidence
			}
		}
		if info.PortfolioURL == "" {
			if m, ok := lib.FindBest(patterns.CategoryPortfolio, zone); ok {
				info.PortfolioURL = m.Value
				found["portfolio"] = m.Confidence
			}
		}
	}

	if header != nil {
		if name := extractName(lib, header.Lines); name != "" {
			info.FullName = name
			found["name"] = nameConfidence
		}
	}

	return info, found
}

// extractName applies the positional name heuristic: the first non-empty
// line of the header zone that is not itself a section header and does
// not match any structured pattern (email, phone, URL, date).
func extractName(lib *patterns.Library, lines []string) string {
	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if candidate == "" {
			continue
		}
		if patterns.MatchSectionHeader(candidate) != "" {
			continue
		}
		if lib.Matches(patterns.CategoryEmail, candidate) ||
			lib.Matches(patterns.CategoryPhone, candidate) ||
			lib.Matches(patterns.CategoryURL, candidate) ||
			lib.Matches(patterns.CategoryLinkedIn, candidate) ||
			ContainsDateRange(candidate) {
			continue
		}
		// A plausible name is short and has no sentence punctuation.
		if len(candidate) > 60 || strings.ContainsAny(candidate, ".;:") {
			continue
		}
		return candidate
	}
	return ""
}
