package cvparse

import (
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

const (
	skillSectionConfidence = 0.7
	skillScanConfidence    = 0.6
	maxSkillTokenLen       = 40
)

// extractSkills aggregates skills from the dedicated skills section
// (comma/semicolon/bullet separated tokens) plus a secondary vocabulary
// scan of experience and education description text. Tokens are
// deduplicated case-insensitively; the first occurrence's spelling wins.
func extractSkills(section *Section, secondaryText string) ([]types.Skill, []float64) {
	skills := make([]types.Skill, 0)
	confidences := make([]float64, 0)
	seen := make(map[string]bool)

	add := func(token string, confidence float64) {
		name := patterns.CanonicalSkillName(token)
		if name == "" || len(name) > maxSkillTokenLen {
			return
		}
		key := patterns.NormalizeToken(name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, types.Skill{
			Name:     name,
			Category: patterns.SkillCategoryFor(name),
		})
		confidences = append(confidences, confidence)
	}

	if section != nil {
		for _, line := range section.Lines {
			for _, token := range splitSkillTokens(line) {
				add(token, skillSectionConfidence)
			}
		}
	}

	// Secondary scan: only vocabulary-known tokens qualify, to avoid
	// promoting arbitrary description words to skills.
	for _, token := range strings.FieldsFunc(secondaryText, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ',' || r == ';' || r == '(' || r == ')'
	}) {
		trimmed := strings.Trim(token, ".:")
		if trimmed != "" && patterns.KnownSkill(trimmed) {
			add(trimmed, skillScanConfidence)
		}
	}

	return skills, confidences
}

// splitSkillTokens splits a skills-section line into tokens on commas,
// semicolons, pipes, and bullet markers.
func splitSkillTokens(line string) []string {
	cleaned := stripBullet(line)
	// Drop a leading group label ("Languages: Go, Python").
	if idx := strings.Index(cleaned, ":"); idx >= 0 && idx < 30 {
		cleaned = cleaned[idx+1:]
	}
	fields := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}
