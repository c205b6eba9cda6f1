package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/config"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/cvparse"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/observability"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured profile data from a CV text file",
	Long:  "Extract personal info, work experience, education, and skills from a plain-text CV document using local heuristics; no network calls are made.",
	RunE:  runExtract,
}

var (
	extractInputFile   string
	extractOutputFile  string
	extractMimeType    string
	extractChunkBudget int
	extractMinInput    int
	extractConfigFile  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to CV text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout summary only)")
	extractCmd.Flags().StringVar(&extractMimeType, "mime", "text/plain", "MIME type of the source document")
	extractCmd.Flags().IntVar(&extractChunkBudget, "chunk-budget", 0, "Extraction work budget before timing out (0 = default)")
	extractCmd.Flags().IntVar(&extractMinInput, "min-input-length", 0, "Minimum document length for extraction (0 = default)")
	extractCmd.Flags().StringVar(&extractConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Document:       extractInputFile,
		MimeType:       extractMimeType,
		ChunkBudget:    extractChunkBudget,
		MinInputLength: extractMinInput,
	}
	if extractConfigFile != "" {
		fileCfg, err := config.LoadConfig(extractConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Document == "" {
		return fmt.Errorf("--in is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	content, err := os.ReadFile(cfg.Document)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	var opts []cvparse.Option
	if cfg.ChunkBudget > 0 {
		opts = append(opts, cvparse.WithChunkBudget(cfg.ChunkBudget))
	}
	if cfg.MinInputLength > 0 {
		opts = append(opts, cvparse.WithMinInputLength(cfg.MinInputLength))
	}
	extractor := cvparse.NewExtractor(patterns.NewLibrary(), opts...)

	meta := types.DocumentMetadata{
		FileName:    cfg.Document,
		MimeType:    cfg.MimeType,
		SizeBytes:   int64(len(content)),
		Fingerprint: cvparse.Fingerprint(content),
	}

	result, err := extractor.ExtractFromDocument(context.Background(), meta, string(content))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintExtractionResult(result)

	if extractOutputFile != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(extractOutputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Result written to %s\n", extractOutputFile)
	}

	return nil
}
