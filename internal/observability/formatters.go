// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintExtractionResult outputs a human-readable summary of an extraction run.
func (p *Printer) PrintExtractionResult(result *types.ExtractedProfileData) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Status:   %s\n", result.Status))
	if result.Incomplete {
		sb.WriteString("Partial:  extraction budget exhausted\n")
	}
	sb.WriteString("\n")

	pi := result.PersonalInfo
	if pi.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", pi.FullName))
	}
	if pi.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", pi.Email))
	}
	if pi.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", pi.Phone))
	}
	if pi.LinkedInURL != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", truncate(pi.LinkedInURL, 45)))
	}
	sb.WriteString("\n")

	if len(result.WorkExperience) > 0 {
		sb.WriteString(fmt.Sprintf("Work Experience (%d entries):\n", len(result.WorkExperience)))
		count := min(len(result.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			we := result.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(we.JobTitle, 50)))
			line := we.Company
			if we.StartDate != "" {
				end := we.EndDate
				if we.Current {
					end = "present"
				}
				line = fmt.Sprintf("%s (%s – %s)", we.Company, we.StartDate, end)
			}
			sb.WriteString(fmt.Sprintf("    %s\n", truncate(line, 50)))
		}
		if len(result.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d entries):\n", len(result.Education)))
		count := min(len(result.Education), 3)
		for i := 0; i < count; i++ {
			edu := result.Education[i]
			entry := edu.Degree
			if entry == "" {
				entry = edu.Institution
			} else if edu.Institution != "" {
				entry = entry + ", " + edu.Institution
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(entry, 50)))
		}
		if len(result.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		names := make([]string, 0, len(result.Skills))
		for _, s := range result.Skills {
			names = append(names, s.Name)
		}
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(names), truncate(strings.Join(names, ", "), 45)))
		sb.WriteString("\n")
	}

	sb.WriteString("Confidence:\n")
	for _, cat := range []string{
		types.CategoryPersonalInfo,
		types.CategoryWorkExperience,
		types.CategoryEducation,
		types.CategorySkills,
	} {
		sb.WriteString(fmt.Sprintf("  %-16s %.2f\n", cat, result.Confidence[cat]))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFieldMappings outputs classified form fields with confidence scores.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFieldMappings(mappings []types.FieldMapping) {
	if len(mappings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO FIELDS MAPPED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mapped %d fields:\n\n", len(mappings)))

	for i, m := range mappings {
		label := m.Descriptor.Name
		if label == "" {
			label = m.Descriptor.ID
		}
		sb.WriteString(fmt.Sprintf("• %s → %s (%.2f)\n", truncate(label, 25), m.FieldType, m.Confidence))
		if m.ResolvedValue != "" {
			sb.WriteString(fmt.Sprintf("  = %s\n", truncate(m.ResolvedValue, 48)))
		}
		if i < len(mappings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FIELD MAPPINGS", sb.String())
}

// PrintUploadMappings outputs file upload matches with compatibility flags.
func (p *Printer) PrintUploadMappings(mappings []types.FileUploadMapping) {
	if len(mappings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d upload fields:\n\n", len(mappings)))

	for i, m := range mappings {
		label := m.Descriptor.Name
		if label == "" {
			label = m.Descriptor.ID
		}
		marker := "✓"
		if !m.CompatibilityOK {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s → %s\n", marker, truncate(label, 25), m.UploadKind))
		if len(m.Descriptor.AcceptedTypes) > 0 {
			sb.WriteString(fmt.Sprintf("  accepts: %s\n", truncate(strings.Join(m.Descriptor.AcceptedTypes, ", "), 45)))
		}
		if i < len(mappings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILE UPLOAD FIELDS", sb.String())
}
