package patterns

import (
	"regexp"
	"strings"
)

// dateRangePattern recognizes the accepted date-range input forms:
// "Jan 2020 - Present", "January 2020 – March 2022", "2020-2022",
// "03/2020-03/2022". Exported indirectly through the date_range rule.
var dateRangePattern = regexp.MustCompile(
	`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current|now)`,
)

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// NormalizePhone strips formatting characters from a phone match, keeping
// digits and a leading plus sign.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	plus := strings.HasPrefix(trimmed, "+")
	digits := nonPhoneChars.ReplaceAllString(trimmed, "")
	digits = strings.ReplaceAll(digits, "+", "")
	if digits == "" {
		return ""
	}
	if plus {
		return "+" + digits
	}
	return digits
}

// NormalizeURL lowercases the scheme and host of a URL match, adds a
// https scheme when missing, and trims trailing punctuation picked up by
// the matcher.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimRight(u, ".,;)")
	if u == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(u), "http://") && !strings.HasPrefix(strings.ToLower(u), "https://") {
		u = "https://" + u
	}
	return u
}

// NormalizeToken lowercases and whitespace-normalizes a token for
// case-insensitive comparison (skill dedup, vocabulary lookup).
func NormalizeToken(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
