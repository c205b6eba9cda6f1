package cvparse

import (
	"regexp"
	"strings"
	"time"
)

// DateRange is a parsed employment or education date span. Start and End
// are normalized to YYYY-MM, or YYYY when only a year was recognized.
// When Parsed is false the raw text is preserved in Raw and the entry's
// confidence is lowered.
type DateRange struct {
	Start   string
	End     string
	Current bool
	Parsed  bool
	Raw     string
}

// dateRangeRe mirrors the pattern library's date_range rule but captures
// the two sides of the range for normalization.
var dateRangeRe = regexp.MustCompile(
	`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current|now)`,
)

// ContainsDateRange reports whether the line holds a recognizable date
// range.
func ContainsDateRange(line string) bool {
	return dateRangeRe.MatchString(line)
}

// ParseDateRange extracts and normalizes the first date range in the
// line. The second return value is the line with the matched range
// removed, for title/company parsing.
func ParseDateRange(line string) (DateRange, string) {
	loc := dateRangeRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return DateRange{Raw: strings.TrimSpace(line)}, line
	}

	raw := line[loc[0]:loc[1]]
	startRaw := line[loc[2]:loc[3]]
	endRaw := line[loc[4]:loc[5]]
	remainder := strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
	remainder = strings.Trim(remainder, " ,;|-–—()")

	dr := DateRange{Raw: strings.TrimSpace(raw)}

	start, okStart := normalizeDate(startRaw)
	if !okStart {
		return dr, remainder
	}
	dr.Start = start

	lowerEnd := strings.ToLower(strings.TrimSpace(endRaw))
	if lowerEnd == "present" || lowerEnd == "current" || lowerEnd == "now" {
		dr.Current = true
		dr.Parsed = true
		return dr, remainder
	}

	end, okEnd := normalizeDate(endRaw)
	if !okEnd {
		return dr, remainder
	}
	dr.End = end
	dr.Parsed = true
	return dr, remainder
}

// dateLayouts are the accepted single-date input forms, tried in order.
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"01/2006",
	"1/2006",
}

// normalizeDate parses a single date token into the canonical textual
// form: YYYY-MM for month-resolution inputs, YYYY for bare years.
func normalizeDate(raw string) (string, bool) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", false
	}

	// Bare year stays year-resolution.
	if yearRe.MatchString(token) {
		return token, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

var yearRe = regexp.MustCompile(`^\d{4}$`)

// endSortKey orders entries newest first: current entries sort before
// everything, undated entries next, then by normalized end date
// descending. Year-only and year-month values compare correctly as
// strings because both are zero-padded and share a prefix.
func (d DateRange) endSortKey() string {
	switch {
	case d.Current:
		return "9999-99"
	case !d.Parsed || d.End == "":
		return "9999-98"
	default:
		return d.End
	}
}
