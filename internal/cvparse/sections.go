package cvparse

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
)

// Section is a contiguous block of CV lines keyed by the nearest
// preceding recognized header. The preamble before the first header is
// the personal-info zone, named "header".
type Section struct {
	Name  string
	Title string
	Lines []string
}

// normalizeText collapses line endings and excessive blank lines while
// preserving the line structure the segmenter depends on.
func normalizeText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(content)
}

// segment partitions the normalized text into sections. Each line is
// first classified as a header or content; content accumulates under the
// most recent header.
func segment(text string) []Section {
	lines := strings.Split(text, "\n")

	sections := []Section{{Name: "header"}}
	current := 0

	for _, line := range lines {
		if name := patterns.MatchSectionHeader(line); name != "" {
			sections = append(sections, Section{Name: name, Title: strings.TrimSpace(line)})
			current = len(sections) - 1
			continue
		}
		sections[current].Lines = append(sections[current].Lines, strings.TrimRight(line, " \t"))
	}

	return sections
}

// findSection returns the first section with the given canonical name,
// or nil when the CV has no such section.
func findSection(sections []Section, name string) *Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

// Text joins the section's lines back into a block for whole-section
// pattern scans.
func (s *Section) Text() string {
	return strings.Join(s.Lines, "\n")
}

// isBulletLine reports whether the line is a bullet list item.
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// stripBullet removes the bullet marker from a bullet line.
func stripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return strings.TrimSpace(trimmed)
}
