package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

func TestPrintExtractionResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.NewExtractedProfileData()
	result.PersonalInfo = types.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "5551234",
	}
	result.WorkExperience = []types.WorkExperience{
		{JobTitle: "Software Engineer", Company: "Acme Corp", StartDate: "2020-01", EndDate: "2022-06"},
	}
	result.Education = []types.Education{
		{Degree: "BSc Computer Science", Institution: "State University"},
	}
	result.Skills = []types.Skill{
		{Name: "Go", Category: types.SkillTechnical},
		{Name: "SQL", Category: types.SkillTechnical},
	}
	result.Confidence[types.CategoryPersonalInfo] = 0.9

	p.PrintExtractionResult(result)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "BSc Computer Science")
	assert.Contains(t, output, "Go, SQL")
	assert.Contains(t, output, "0.90")
}

func TestPrintExtractionResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExtractionResult_Incomplete(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.NewExtractedProfileData()
	result.Status = types.StatusTimeout
	result.Incomplete = true

	p.PrintExtractionResult(result)
	output := buf.String()

	assert.Contains(t, output, "timeout")
	assert.Contains(t, output, "budget exhausted")
}

func TestPrintFieldMappings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	mappings := []types.FieldMapping{
		{
			Descriptor:    types.FieldDescriptor{Name: "email", Kind: types.KindEmail},
			FieldType:     types.FieldTypeEmail,
			Confidence:    0.9,
			ResolvedValue: "jane@example.com",
		},
		{
			Descriptor: types.FieldDescriptor{Name: "custom_field"},
			FieldType:  types.FieldTypeUnmapped,
			Confidence: 0.3,
		},
	}

	p.PrintFieldMappings(mappings)
	output := buf.String()

	assert.Contains(t, output, "FIELD MAPPINGS")
	assert.Contains(t, output, "email")
	assert.Contains(t, output, "0.90")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "unmapped")
}

func TestPrintFieldMappings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFieldMappings(nil)

	assert.Contains(t, buf.String(), "NO FIELDS MAPPED")
}

func TestPrintUploadMappings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	mappings := []types.FileUploadMapping{
		{
			Descriptor: types.FieldDescriptor{
				Name:          "resume",
				Kind:          types.KindFile,
				AcceptedTypes: []string{"application/pdf"},
			},
			UploadKind:      types.UploadKindResume,
			Confidence:      0.8,
			CompatibilityOK: true,
		},
		{
			Descriptor:      types.FieldDescriptor{Name: "portfolio", Kind: types.KindFile},
			UploadKind:      types.UploadKindPortfolio,
			Confidence:      0.6,
			CompatibilityOK: false,
		},
	}

	p.PrintUploadMappings(mappings)
	output := buf.String()

	assert.Contains(t, output, "FILE UPLOAD FIELDS")
	assert.Contains(t, output, "resume")
	assert.Contains(t, output, "application/pdf")
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "✗")
}

func TestPrintUploadMappings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUploadMappings(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
