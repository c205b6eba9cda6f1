package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"form_url": "https://example.com/apply",
		"mime_type": "text/plain",
		"threshold": 0.6,
		"chunk_budget": 32,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/apply", cfg.FormURL)
	assert.Equal(t, "text/plain", cfg.MimeType)
	assert.Equal(t, 0.6, cfg.Threshold)
	assert.Equal(t, 32, cfg.ChunkBudget)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Form:    "form.html",
		FormURL: "https://example.com/apply",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := &Config{
		Threshold: 1.5,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Threshold")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		ChunkBudget: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ChunkBudget")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		MimeType:       "application/pdf",
		Threshold:      0.5,
		MinInputLength: 30,
		ChunkBudget:    64,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		MimeType:       "text/plain",
		Profile:        "profile.json",
		DatabaseURL:    "postgres://localhost/autofill",
		MinInputLength: 30,
		ChunkBudget:    64,
	}

	partial := Config{
		MimeType: "application/pdf",
		Document: "cv.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "application/pdf", merged.MimeType)
	assert.Equal(t, "cv.txt", merged.Document)

	// Default values should fill in empty fields
	assert.Equal(t, "profile.json", merged.Profile)
	assert.Equal(t, "postgres://localhost/autofill", merged.DatabaseURL)
	assert.Equal(t, 30, merged.MinInputLength)
	assert.Equal(t, 64, merged.ChunkBudget)
}

func TestMergeWithDefaults_ThresholdDefault(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 0.5, merged.Threshold)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Document: "cv.txt",
		MimeType: "text/plain",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "cv.txt", merged.Document)
	assert.Equal(t, "text/plain", merged.MimeType)
}
