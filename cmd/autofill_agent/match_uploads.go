package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/classify"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/config"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/cvparse"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/observability"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/scanner"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var matchUploadsCmd = &cobra.Command{
	Use:   "match-uploads",
	Short: "Match a stored document against a form's file upload fields",
	Long:  "Scan a form's HTML for file upload fields and report, per field, its likely purpose and whether the given document satisfies its type and size constraints.",
	RunE:  runMatchUploads,
}

var (
	matchFormFile   string
	matchDocFile    string
	matchDocMime    string
	matchOutputFile string
	matchMaxBytes   int64
	matchConfigFile string
)

func init() {
	matchUploadsCmd.Flags().StringVarP(&matchFormFile, "form", "f", "", "Path to form HTML file (required)")
	matchUploadsCmd.Flags().StringVarP(&matchDocFile, "doc", "d", "", "Path to the candidate document (required)")
	matchUploadsCmd.Flags().StringVar(&matchDocMime, "mime", "application/pdf", "MIME type of the candidate document")
	matchUploadsCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file")
	matchUploadsCmd.Flags().Int64Var(&matchMaxBytes, "max-bytes", 0, "Size cap for fields without their own limit (0 = none)")
	matchUploadsCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(matchUploadsCmd)
}

func runMatchUploads(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Form:           matchFormFile,
		Document:       matchDocFile,
		MimeType:       matchDocMime,
		MaxUploadBytes: matchMaxBytes,
	}
	if matchConfigFile != "" {
		fileCfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Form == "" || cfg.Document == "" {
		return fmt.Errorf("--form and --doc are required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	formHTML, err := os.ReadFile(cfg.Form)
	if err != nil {
		return fmt.Errorf("failed to read form file: %w", err)
	}

	docContent, err := os.ReadFile(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	descriptors, err := scanner.ScanHTML(string(formHTML))
	if err != nil {
		return fmt.Errorf("failed to scan form: %w", err)
	}

	doc := types.DocumentMetadata{
		FileName:    cfg.Document,
		MimeType:    cfg.MimeType,
		SizeBytes:   int64(len(docContent)),
		Fingerprint: cvparse.Fingerprint(docContent),
	}

	mappings := classify.MatchUploads(descriptors, doc, patterns.NewLibrary(), classify.UploadOptions{
		MaxDocBytes: cfg.MaxUploadBytes,
	})
	observability.NewPrinter(os.Stdout).PrintUploadMappings(mappings)

	if matchOutputFile != "" {
		data, err := json.MarshalIndent(mappings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode mappings: %w", err)
		}
		if err := os.WriteFile(matchOutputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Mappings written to %s\n", matchOutputFile)
	}

	return nil
}
