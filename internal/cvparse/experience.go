package cvparse

import (
	"sort"
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// Per-entry confidence levels. An entry whose date range failed to parse
// is kept but scored lower.
const (
	entryConfidenceParsed   = 0.8
	entryConfidenceUnparsed = 0.5
)

// experienceEntry accumulates one entry while walking the section lines.
type experienceEntry struct {
	titleLine    string
	dates        DateRange
	hasDates     bool
	description  []string
	achievements []string
}

// extractExperience groups the experience section into entries and emits
// them newest first. Entry boundaries are heuristic: a new date-range
// line closes the previous entry, as does a blank line followed by a
// non-bullet line. Lines before the first boundary fold into the first
// entry.
func extractExperience(section *Section) ([]types.WorkExperience, []float64) {
	if section == nil {
		return []types.WorkExperience{}, nil
	}

	var entries []*experienceEntry
	var current *experienceEntry
	blankPending := false

	for _, line := range section.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blankPending = current != nil
			continue
		}

		startsEntry := false
		switch {
		case current == nil:
			startsEntry = true
		case ContainsDateRange(trimmed) && current.hasDates:
			// A second date range always opens a new entry, even
			// without a blank delimiter.
			startsEntry = true
		case blankPending && !isBulletLine(trimmed):
			startsEntry = true
		}
		blankPending = false

		if startsEntry {
			current = &experienceEntry{}
			entries = append(entries, current)
		}

		switch {
		case ContainsDateRange(trimmed) && !current.hasDates:
			dr, remainder := ParseDateRange(trimmed)
			current.dates = dr
			current.hasDates = true
			if current.titleLine == "" && remainder != "" {
				current.titleLine = remainder
			} else if remainder != "" {
				current.description = append(current.description, remainder)
			}
		case current.titleLine == "":
			current.titleLine = trimmed
		case isBulletLine(trimmed):
			current.achievements = append(current.achievements, stripBullet(trimmed))
		default:
			current.description = append(current.description, trimmed)
		}
	}

	experiences := make([]types.WorkExperience, 0, len(entries))
	confidences := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.titleLine == "" && !e.hasDates && len(e.description) == 0 {
			continue
		}
		we, conf := e.build()
		experiences = append(experiences, we)
		confidences = append(confidences, conf)
	}

	sortExperience(experiences)
	return experiences, confidences
}

// build converts an accumulated entry into the output shape with its
// per-entry confidence.
func (e *experienceEntry) build() (types.WorkExperience, float64) {
	title, company := splitTitleCompany(e.titleLine)

	we := types.WorkExperience{
		JobTitle:     title,
		Company:      company,
		Description:  strings.Join(e.description, "\n"),
		Achievements: e.achievements,
	}

	conf := entryConfidenceUnparsed
	if e.hasDates {
		if e.dates.Parsed {
			we.StartDate = e.dates.Start
			we.EndDate = e.dates.End
			we.Current = e.dates.Current
			conf = entryConfidenceParsed
		} else {
			// Unparseable range: preserve the raw text, never guess.
			we.StartDate = e.dates.Raw
			we.Current = false
		}
	}
	if title == "" || company == "" {
		conf -= 0.1
	}
	return we, conf
}

// splitTitleCompany splits a header line into job title and company.
// Accepted separators, in priority order: " at ", comma, en/em dash.
func splitTitleCompany(line string) (string, string) {
	line = strings.Trim(strings.TrimSpace(line), ",")
	if line == "" {
		return "", ""
	}
	if idx := strings.Index(line, " at "); idx > 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+4:])
	}
	if idx := strings.Index(line, ","); idx > 0 {
		return strings.TrimSpace(line[:idx]), strings.Trim(strings.TrimSpace(line[idx+1:]), ",")
	}
	for _, sep := range []string{" – ", " — ", " - ", " | "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return line, ""
}

// sortExperience orders entries newest first by parsed end date; current
// and undated entries sort first. The sort is stable so same-key entries
// keep their document order, which keeps extraction deterministic.
func sortExperience(entries []types.WorkExperience) {
	sort.SliceStable(entries, func(i, j int) bool {
		return experienceSortKey(entries[i]) > experienceSortKey(entries[j])
	})
}

func experienceSortKey(we types.WorkExperience) string {
	if we.Current {
		return "9999-99"
	}
	if we.EndDate == "" {
		return "9999-98"
	}
	return we.EndDate
}
