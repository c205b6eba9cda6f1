package cvparse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// institutionKeywords identify lines naming a school.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

var (
	gpaValueRe  = regexp.MustCompile(`(?i)gpa[:\s]+([0-5](?:\.\d{1,2})?(?:\s*/\s*[0-5](?:\.\d)?)?)`)
	honorsRe    = regexp.MustCompile(`(?i)\b(summa cum laude|magna cum laude|cum laude|with honou?rs|dean'?s list|first class)\b`)
	yearTokenRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// extractEducation segments the education section into entries delimited
// by blank lines or repeated degree lines, then identifies degree,
// institution, dates, field of study, GPA, and honors per entry.
func extractEducation(lib *patterns.Library, section *Section) ([]types.Education, []float64) {
	if section == nil {
		return []types.Education{}, nil
	}

	var groups [][]string
	var current []string
	for _, line := range section.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		// A second degree line opens a new entry even without a blank
		// delimiter.
		if len(current) > 0 && lib.Matches(patterns.CategoryDegree, trimmed) && groupHasDegree(lib, current) {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	educations := make([]types.Education, 0, len(groups))
	confidences := make([]float64, 0, len(groups))
	for _, group := range groups {
		edu, conf := buildEducation(lib, group)
		if edu == (types.Education{}) {
			continue
		}
		educations = append(educations, edu)
		confidences = append(confidences, conf)
	}

	sort.SliceStable(educations, func(i, j int) bool {
		return educationSortKey(educations[i]) > educationSortKey(educations[j])
	})
	return educations, confidences
}

func groupHasDegree(lib *patterns.Library, group []string) bool {
	for _, line := range group {
		if lib.Matches(patterns.CategoryDegree, line) {
			return true
		}
	}
	return false
}

// buildEducation extracts the entry fields from a group of lines.
func buildEducation(lib *patterns.Library, group []string) (types.Education, float64) {
	edu := types.Education{}
	matched := 0

	for _, line := range group {
		if edu.Degree == "" && lib.Matches(patterns.CategoryDegree, line) {
			edu.Degree = degreePhrase(line)
			matched++
			// "Bachelor of Science in Computer Science" carries the
			// field of study after the last " in ".
			if idx := strings.LastIndex(edu.Degree, " in "); idx > 0 {
				edu.FieldOfStudy = strings.TrimSpace(edu.Degree[idx+4:])
			}
			continue
		}
		if edu.Institution == "" && isInstitutionLine(line) {
			edu.Institution = institutionPhrase(line)
			matched++
			continue
		}
		if edu.GPA == "" {
			if m := gpaValueRe.FindStringSubmatch(line); m != nil {
				edu.GPA = strings.TrimSpace(m[1])
			}
		}
		if edu.Honors == "" {
			if m := honorsRe.FindString(line); m != "" {
				edu.Honors = m
			}
		}
	}

	// Graduation date: range end wins over a bare year mention.
	for _, line := range group {
		if ContainsDateRange(line) {
			dr, _ := ParseDateRange(line)
			if dr.Parsed && dr.End != "" {
				edu.GraduationDate = dr.End
				break
			}
		}
		if edu.GraduationDate == "" {
			if year := yearTokenRe.FindString(line); year != "" {
				edu.GraduationDate = year
			}
		}
	}

	if matched == 0 {
		// Nothing recognizable as education; best effort keeps the first
		// line as institution when it is a capitalized phrase.
		if len(group) > 0 && isCapitalizedPhrase(group[0]) {
			edu.Institution = group[0]
			return edu, entryConfidenceUnparsed
		}
		return types.Education{}, 0
	}

	conf := entryConfidenceParsed
	if edu.Degree == "" || edu.Institution == "" {
		conf = entryConfidenceUnparsed + 0.1
	}
	return edu, conf
}

// degreePhrase trims a degree line down to the degree clause, cutting at
// the institution separator when both share a line.
func degreePhrase(line string) string {
	for _, sep := range []string{",", " – ", " — ", " - ", " | "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx])
		}
	}
	return strings.TrimSpace(line)
}

func isInstitutionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range institutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// institutionPhrase keeps the clause containing the institution keyword,
// dropping trailing location or date noise after a comma.
func institutionPhrase(line string) string {
	for _, part := range strings.Split(line, ",") {
		if isInstitutionLine(part) {
			return strings.TrimSpace(yearTokenRe.ReplaceAllString(part, ""))
		}
	}
	return strings.TrimSpace(line)
}

// isCapitalizedPhrase reports whether most words in the line start with
// an uppercase letter, the institution-name heuristic.
func isCapitalizedPhrase(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	capitalized := 0
	for _, w := range words {
		if w[0] >= 'A' && w[0] <= 'Z' {
			capitalized++
		}
	}
	return capitalized*2 >= len(words)
}

func educationSortKey(edu types.Education) string {
	if edu.GraduationDate == "" {
		return "9999-98"
	}
	return edu.GraduationDate
}
