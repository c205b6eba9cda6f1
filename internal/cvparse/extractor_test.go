package cvparse

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

func newTestExtractor(opts ...Option) *Extractor {
	return NewExtractor(patterns.NewLibrary(), opts...)
}

const minimalCV = "Jane Doe\njane@x.com\n555-1234\n\nEXPERIENCE\nSoftware Engineer, Acme Corp, 2020-2022"

func TestExtract_MinimalCV(t *testing.T) {
	result, err := newTestExtractor().Extract(context.Background(), minimalCV)
	require.NoError(t, err)
	require.Equal(t, types.StatusOK, result.Status)

	assert.Equal(t, "Jane Doe", result.PersonalInfo.FullName)
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
	assert.Equal(t, "5551234", result.PersonalInfo.Phone)
	assert.Greater(t, result.Confidence[types.CategoryPersonalInfo], 0.0)

	require.Len(t, result.WorkExperience, 1)
	we := result.WorkExperience[0]
	assert.Equal(t, "Software Engineer", we.JobTitle)
	assert.Equal(t, "Acme Corp", we.Company)
	assert.Equal(t, "2020", we.StartDate)
	assert.Equal(t, "2022", we.EndDate)
	assert.False(t, we.Current)
}

func TestExtract_NoPhoneFabricatedFromDates(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@x.com",
		"",
		"EXPERIENCE",
		"Software Engineer, Acme Corp, 2020-2022",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Equal(t, types.StatusOK, result.Status)

	// The CV has no phone; the date range must not be mistaken for one.
	assert.Empty(t, result.PersonalInfo.Phone)
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor()

	first, err := e.Extract(context.Background(), minimalCV)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Extract(context.Background(), minimalCV)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtract_ChronologicalOrdering(t *testing.T) {
	cv := strings.Join([]string{
		"John Smith",
		"john@example.com",
		"",
		"EXPERIENCE",
		"Junior Developer, Oldest Corp, 2018-2021",
		"",
		"Senior Developer, Newer Corp, 2021-2023",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.WorkExperience, 2)
	assert.Equal(t, "2023", result.WorkExperience[0].EndDate)
	assert.Equal(t, "2021", result.WorkExperience[1].EndDate)
}

func TestExtract_CurrentEntrySortsFirst(t *testing.T) {
	cv := strings.Join([]string{
		"John Smith",
		"john@example.com",
		"",
		"EXPERIENCE",
		"Staff Engineer, Past Corp, Jan 2015 - Dec 2019",
		"",
		"Principal Engineer, Current Corp, Jan 2020 - Present",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.WorkExperience, 2)
	assert.True(t, result.WorkExperience[0].Current)
	assert.Equal(t, "Current Corp", result.WorkExperience[0].Company)
}

func TestExtract_UnparseableDatePreservedRaw(t *testing.T) {
	cv := strings.Join([]string{
		"John Smith",
		"john@example.com",
		"",
		"EXPERIENCE",
		"Developer, Acme Corp",
		"during the pandemic years",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.WorkExperience, 1)
	assert.False(t, result.WorkExperience[0].Current)
	// Lowered confidence relative to a fully parsed entry.
	assert.Less(t, result.Confidence[types.CategoryWorkExperience], entryConfidenceParsed)
}

func TestExtract_SkillsDeduplicatedCaseInsensitively(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"SKILLS",
		"Python, python, PYTHON",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, "Python", result.Skills[0].Name)
	assert.Equal(t, types.SkillTechnical, result.Skills[0].Category)
}

func TestExtract_SkillCategories(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"SKILLS",
		"Go; Leadership; Spanish; ObscureTool",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.Skills, 4)

	byName := make(map[string]types.SkillCategory)
	for _, s := range result.Skills {
		byName[s.Name] = s.Category
	}
	assert.Equal(t, types.SkillTechnical, byName["Go"])
	assert.Equal(t, types.SkillSoft, byName["Leadership"])
	assert.Equal(t, types.SkillLanguage, byName["Spanish"])
	assert.Equal(t, types.SkillTechnical, byName["ObscureTool"])
}

func TestExtract_SecondarySkillScanFromDescriptions(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"EXPERIENCE",
		"Backend Engineer, Acme Corp, 2020-2022",
		"Built services in Go with PostgreSQL and Kubernetes.",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Skills))
	for _, s := range result.Skills {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Go")
	assert.Contains(t, names, "PostgreSQL")
	assert.Contains(t, names, "Kubernetes")
}

func TestExtract_Education(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"EDUCATION",
		"Bachelor of Science in Computer Science",
		"State University, 2016-2020",
		"GPA: 3.8, magna cum laude",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	require.Len(t, result.Education, 1)

	edu := result.Education[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "Computer Science", edu.FieldOfStudy)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "2020", edu.GraduationDate)
	assert.Equal(t, "3.8", edu.GPA)
	assert.Equal(t, "magna cum laude", edu.Honors)
	assert.Greater(t, result.Confidence[types.CategoryEducation], 0.0)
}

func TestExtract_LinkedInAndPortfolio(t *testing.T) {
	cv := strings.Join([]string{
		"Jane Doe",
		"jane@example.com | linkedin.com/in/janedoe | github.com/janedoe",
		"",
		"SUMMARY",
		"Engineer with ten years of experience.",
	}, "\n")

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/in/janedoe", result.PersonalInfo.LinkedInURL)
	assert.Equal(t, "https://github.com/janedoe", result.PersonalInfo.PortfolioURL)
}

func TestExtract_MissingSectionsAreEmptyNotFailed(t *testing.T) {
	cv := "Jane Doe\njane@example.com\n555-1234"

	result, err := newTestExtractor().Extract(context.Background(), cv)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, result.Status)
	assert.Empty(t, result.WorkExperience)
	assert.Empty(t, result.Education)
	assert.Zero(t, result.Confidence[types.CategoryWorkExperience])
	assert.Zero(t, result.Confidence[types.CategoryEducation])
	assert.Zero(t, result.Confidence[types.CategorySkills])
}

func TestExtract_InsufficientData(t *testing.T) {
	result, err := newTestExtractor().Extract(context.Background(), "too short")
	require.NoError(t, err)
	assert.Equal(t, types.StatusInsufficientData, result.Status)
	assert.Zero(t, result.Confidence[types.CategoryPersonalInfo])
}

func TestExtract_MinInputLengthConfigurable(t *testing.T) {
	// The default would attempt extraction on this input; a raised
	// minimum rejects it as insufficient.
	require.GreaterOrEqual(t, len(minimalCV), DefaultMinInputLength)

	result, err := newTestExtractor(WithMinInputLength(1000)).Extract(context.Background(), minimalCV)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInsufficientData, result.Status)

	// A lowered minimum lets a very short document through.
	result, err = newTestExtractor(WithMinInputLength(5)).Extract(context.Background(), "a: b\njane@x.com\nc")
	require.NoError(t, err)
	assert.NotEqual(t, types.StatusInsufficientData, result.Status)
}

func TestExtract_ChunkBudgetReturnsPartialWithTimeout(t *testing.T) {
	result, err := newTestExtractor(WithChunkBudget(2)).Extract(context.Background(), minimalCV)
	require.NoError(t, err)
	assert.Equal(t, types.StatusTimeout, result.Status)
	assert.True(t, result.Incomplete)
	// The first two chunks completed; their confidences are not
	// diminished.
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
	assert.NotEmpty(t, result.WorkExperience)
}

func TestExtract_CancelledContextAbandonsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestExtractor().Extract(ctx, minimalCV)
	require.Error(t, err)
	assert.Nil(t, result)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractFromDocument_UnsupportedFormat(t *testing.T) {
	meta := types.DocumentMetadata{MimeType: "image/png", Fingerprint: "abc"}

	result, err := newTestExtractor().ExtractFromDocument(context.Background(), meta, minimalCV)
	require.NoError(t, err)
	assert.Equal(t, types.StatusFormatNotSupported, result.Status)
	assert.Equal(t, "abc", result.Fingerprint)
	assert.Empty(t, result.PersonalInfo.Email)
}

func TestExtractFromDocument_SupportedFormat(t *testing.T) {
	meta := types.DocumentMetadata{MimeType: "application/pdf", Fingerprint: "abc"}

	result, err := newTestExtractor().ExtractFromDocument(context.Background(), meta, minimalCV)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOK, result.Status)
	assert.Equal(t, "abc", result.Fingerprint)
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
}
