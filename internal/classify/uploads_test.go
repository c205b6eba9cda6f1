package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var pdfResume = types.DocumentMetadata{
	FileName:  "resume.pdf",
	MimeType:  "application/pdf",
	SizeBytes: 200 * 1024,
}

func TestMatchUploads_OnlyFileDescriptors(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Kind: types.KindText, Name: "first_name"},
		{Kind: types.KindFile, Name: "resume"},
	}

	mappings := MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{})
	require.Len(t, mappings, 1)
	assert.Equal(t, types.UploadKindResume, mappings[0].UploadKind)
	assert.True(t, mappings[0].CompatibilityOK)
}

func TestMatchUploads_IncompatibleMimeStillReported(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{
			Kind:          types.KindFile,
			Name:          "resume_upload",
			AcceptedTypes: []string{"application/pdf"},
		},
	}
	wordDoc := types.DocumentMetadata{MimeType: "application/msword", SizeBytes: 1024}

	mappings := MatchUploads(descriptors, wordDoc, testLibrary, UploadOptions{})
	require.Len(t, mappings, 1)
	assert.Equal(t, types.UploadKindResume, mappings[0].UploadKind)
	assert.GreaterOrEqual(t, mappings[0].Confidence, 0.5)
	assert.False(t, mappings[0].CompatibilityOK)
}

func TestMatchUploads_SizeLimit(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Kind: types.KindFile, Name: "cv", MaxSizeBytes: 100 * 1024},
	}

	mappings := MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{})
	require.Len(t, mappings, 1)
	assert.False(t, mappings[0].CompatibilityOK)
}

func TestMatchUploads_FallbackSizeCap(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Kind: types.KindFile, Name: "cv"},
		{Kind: types.KindFile, Name: "resume_alt", MaxSizeBytes: 500 * 1024},
	}

	// The run-level cap applies only to fields without their own limit.
	mappings := MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{MaxDocBytes: 100 * 1024})
	require.Len(t, mappings, 2)
	assert.False(t, mappings[0].CompatibilityOK)
	assert.True(t, mappings[1].CompatibilityOK)

	// Without a cap the uncapped field is compatible.
	mappings = MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{})
	require.Len(t, mappings, 2)
	assert.True(t, mappings[0].CompatibilityOK)
}

func TestMatchUploads_AllCompatibleResumeFieldsReturned(t *testing.T) {
	// Job forms frequently duplicate resume fields; every qualifying one
	// is returned so the caller uploads to all of them.
	descriptors := []types.FieldDescriptor{
		{Kind: types.KindFile, Name: "resume"},
		{Kind: types.KindFile, ID: "cv-upload"},
		{Kind: types.KindFile, Name: "cover_letter_file", LabelText: "Cover Letter"},
	}

	mappings := MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{})
	require.Len(t, mappings, 3)

	resumeCount := 0
	for _, m := range mappings {
		if m.UploadKind == types.UploadKindResume && m.CompatibilityOK {
			resumeCount++
		}
	}
	assert.Equal(t, 2, resumeCount)
	assert.Equal(t, types.UploadKindCoverLetter, mappings[2].UploadKind)
}

func TestMatchUploads_LabelAndContextVocabulary(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Kind: types.KindFile, Name: "file1", LabelText: "Upload your resume"},
		{Kind: types.KindFile, Name: "file2", SurroundingText: "Attach a portfolio of recent work"},
		{Kind: types.KindFile, Name: "file3"},
	}

	mappings := MatchUploads(descriptors, pdfResume, testLibrary, UploadOptions{})
	require.Len(t, mappings, 3)
	assert.Equal(t, types.UploadKindResume, mappings[0].UploadKind)
	assert.Equal(t, types.UploadKindPortfolio, mappings[1].UploadKind)
	assert.Equal(t, types.UploadKindOther, mappings[2].UploadKind)
	assert.Zero(t, mappings[2].Confidence)
}
