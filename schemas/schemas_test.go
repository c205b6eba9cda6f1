package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/schemas"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var schemaFiles = []string{
	"stored_profile.schema.json",
	"extraction_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType || hasSchema || hasProps,
				"schema should have at least type, $schema, or properties")
		})
	}
}

func TestStoredProfileSchema_AcceptsValidProfile(t *testing.T) {
	schemaData, err := os.ReadFile("stored_profile.schema.json")
	require.NoError(t, err)

	profile := types.StoredProfile{
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		WorkExperience: []types.WorkExperience{
			{JobTitle: "Software Engineer", Company: "Acme Corp", StartDate: "2020-01", EndDate: "2022-06"},
		},
		Education: []types.Education{
			{Degree: "BSc", Institution: "State University"},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: types.SkillTechnical},
		},
	}

	err = schemas.ValidateValue(string(schemaData), profile)
	assert.NoError(t, err)
}

func TestStoredProfileSchema_RejectsBadSkillCategory(t *testing.T) {
	schemaData, err := os.ReadFile("stored_profile.schema.json")
	require.NoError(t, err)

	doc := `{
		"personal_info": {},
		"work_experience": [],
		"education": [],
		"skills": [{"name": "Go", "category": "wizardry"}]
	}`

	err = schemas.ValidateJSONString(string(schemaData), doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestExtractionResultSchema_AcceptsExtractorOutput(t *testing.T) {
	schemaData, err := os.ReadFile("extraction_result.schema.json")
	require.NoError(t, err)

	result := types.NewExtractedProfileData()
	result.PersonalInfo.FullName = "Jane Doe"
	result.Fingerprint = "abc123"

	err = schemas.ValidateValue(string(schemaData), result)
	assert.NoError(t, err)
}

func TestExtractionResultSchema_RejectsUnknownStatus(t *testing.T) {
	schemaData, err := os.ReadFile("extraction_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"personal_info": {},
		"work_experience": [],
		"education": [],
		"skills": [],
		"confidence": {"personal_info": 0, "work_experience": 0, "education": 0, "skills": 0},
		"status": "exploded"
	}`

	err = schemas.ValidateJSONString(string(schemaData), doc)
	assert.Error(t, err)
}
