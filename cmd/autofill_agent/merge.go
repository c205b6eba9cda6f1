package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/merge"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/schemas"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge an extraction result into a stored profile",
	Long:  "Merge freshly extracted profile data into an existing stored profile. Fields named in --edited keep their stored values; skills are unioned; the merged result is validated against the stored profile schema before it is written.",
	RunE:  runMerge,
}

var (
	mergeProfileFile    string
	mergeExtractionFile string
	mergeEditedFields   string
	mergeOutputFile     string
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeProfileFile, "profile", "p", "", "Path to existing profile JSON (omit to start from empty)")
	mergeCmd.Flags().StringVarP(&mergeExtractionFile, "extraction", "e", "", "Path to extraction result JSON (required)")
	mergeCmd.Flags().StringVar(&mergeEditedFields, "edited", "", "Comma-separated field paths the user has edited (e.g. personal_info.email,skills)")
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(_ *cobra.Command, _ []string) error {
	if mergeExtractionFile == "" {
		return fmt.Errorf("--extraction is required")
	}

	data, err := os.ReadFile(mergeExtractionFile)
	if err != nil {
		return fmt.Errorf("failed to read extraction file: %w", err)
	}
	var extracted types.ExtractedProfileData
	if err := json.Unmarshal(data, &extracted); err != nil {
		return fmt.Errorf("failed to parse extraction JSON: %w", err)
	}

	var profile types.StoredProfile
	if mergeProfileFile != "" {
		loaded, err := loadProfile(mergeProfileFile)
		if err != nil {
			return err
		}
		profile = *loaded
	}

	edited := merge.EditedFields{}
	for _, path := range strings.Split(mergeEditedFields, ",") {
		if path = strings.TrimSpace(path); path != "" {
			edited[path] = true
		}
	}

	merged, err := merge.Merge(&extracted, profile, edited)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	// Nil slices serialize as null, which the schema's array types reject.
	if merged.WorkExperience == nil {
		merged.WorkExperience = []types.WorkExperience{}
	}
	if merged.Education == nil {
		merged.Education = []types.Education{}
	}
	if merged.Skills == nil {
		merged.Skills = []types.Skill{}
	}

	if err := validateProfileSchema(merged); err != nil {
		return err
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged profile: %w", err)
	}

	if mergeOutputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(mergeOutputFile, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Merged profile written to %s\n", mergeOutputFile)
	return nil
}

// validateProfileSchema checks the merged profile against the stored
// profile JSON Schema.
func validateProfileSchema(profile types.StoredProfile) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/stored_profile.schema.json")
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read profile schema: %w", err)
	}
	if err := schemas.ValidateValue(string(schemaContent), profile); err != nil {
		return fmt.Errorf("merged profile failed schema validation: %w", err)
	}
	return nil
}
