// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Document string `json:"document,omitempty"` // Path to CV/resume text file
	Form     string `json:"form,omitempty"`     // Path to form HTML file
	FormURL  string `json:"form_url,omitempty"` // URL to fetch the form page from
	Profile  string `json:"profile,omitempty"`  // Path to stored profile JSON

	// Document metadata
	MimeType string `json:"mime_type,omitempty"` // MIME type of the document

	// Tuning
	Threshold      float64 `json:"threshold,omitempty" validate:"gte=0,lte=1"`   // Classification confidence threshold
	MinInputLength int     `json:"min_input_length,omitempty" validate:"gte=0"`  // Minimum document length for extraction
	ChunkBudget    int     `json:"chunk_budget,omitempty" validate:"gte=0"`      // Extraction work budget before timing out
	MaxUploadBytes int64   `json:"max_upload_bytes,omitempty" validate:"gte=0"`  // Default upload size limit

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA forms
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Form != "" && c.FormURL != "" {
		return fmt.Errorf("config error: 'form' and 'form_url' are mutually exclusive")
	}

	// Validate numeric ranges via struct tags
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.Form != "" {
		if _, err := os.Stat(c.Form); os.IsNotExist(err) {
			return fmt.Errorf("config error: form file not found: %s", c.Form)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Form == "" {
		result.Form = defaults.Form
	}
	if result.FormURL == "" {
		result.FormURL = defaults.FormURL
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.MimeType == "" {
		result.MimeType = defaults.MimeType
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MinInputLength == 0 {
		result.MinInputLength = defaults.MinInputLength
	}
	if result.ChunkBudget == 0 {
		result.ChunkBudget = defaults.ChunkBudget
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Float fields
	if result.Threshold == 0 {
		if defaults.Threshold > 0 {
			result.Threshold = defaults.Threshold
		} else {
			result.Threshold = 0.5 // fields below this confidence stay unmapped
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
