package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/classify"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/config"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/fetch"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/observability"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/patterns"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/scanner"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a job application form for fillable fields",
	Long:  "Scan a form's HTML (from a file or a fetched URL) for fillable fields and classify each one against the profile schema, optionally resolving fill values from a stored profile.",
	RunE:  runScan,
}

var (
	scanFormFile   string
	scanFormURL    string
	scanProfile    string
	scanOutputFile string
	scanThreshold  float64
	scanUseBrowser bool
	scanVerbose    bool
	scanConfigFile string
)

func init() {
	scanCmd.Flags().StringVarP(&scanFormFile, "form", "f", "", "Path to form HTML file")
	scanCmd.Flags().StringVarP(&scanFormURL, "url", "u", "", "URL of the application form page")
	scanCmd.Flags().StringVarP(&scanProfile, "profile", "p", "", "Path to stored profile JSON for value resolution")
	scanCmd.Flags().StringVarP(&scanOutputFile, "out", "o", "", "Path to output JSON file")
	scanCmd.Flags().Float64VarP(&scanThreshold, "threshold", "t", 0, "Classification confidence threshold (0 = default 0.5)")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "browser", false, "Fall back to a headless browser when no fields are found")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print fetch and platform details")
	scanCmd.Flags().StringVar(&scanConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Form:      scanFormFile,
		FormURL:   scanFormURL,
		Profile:   scanProfile,
		Threshold: scanThreshold,
	}
	if scanConfigFile != "" {
		fileCfg, err := config.LoadConfig(scanConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Form == "" && cfg.FormURL == "" {
		return fmt.Errorf("one of --form or --url is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	html, err := loadFormHTML(ctx, cfg)
	if err != nil {
		return err
	}

	descriptors, err := scanner.ScanHTML(html)
	if err != nil {
		return fmt.Errorf("failed to scan form: %w", err)
	}

	// SPA platforms often render the form client-side; the static fetch
	// then yields nothing scannable.
	if cfg.FormURL != "" && scanUseBrowser && fetch.ShouldUseBrowser(len(descriptors)) {
		if scanVerbose {
			fmt.Fprintln(os.Stderr, "No fields in static HTML, retrying with headless browser")
		}
		rendered, err := fetch.WithBrowser(ctx, cfg.FormURL, 30*time.Second, scanVerbose)
		if err != nil {
			return fmt.Errorf("browser fetch failed: %w", err)
		}
		html, err = fetch.ExtractFormHTML(rendered, fetch.PlatformFormSelectors(fetch.DetectPlatform(cfg.FormURL)))
		if err != nil {
			return fmt.Errorf("no form content in rendered page: %w", err)
		}
		descriptors, err = scanner.ScanHTML(html)
		if err != nil {
			return fmt.Errorf("failed to scan rendered form: %w", err)
		}
	}

	var profile *types.StoredProfile
	if cfg.Profile != "" {
		profile, err = loadProfile(cfg.Profile)
		if err != nil {
			return err
		}
	}

	mappings := classify.Classify(descriptors, patterns.NewLibrary(), classify.Options{
		Threshold: cfg.Threshold,
		Profile:   profile,
	})

	observability.NewPrinter(os.Stdout).PrintFieldMappings(mappings)

	if scanOutputFile != "" {
		data, err := json.MarshalIndent(mappings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode mappings: %w", err)
		}
		if err := os.WriteFile(scanOutputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Mappings written to %s\n", scanOutputFile)
	}

	return nil
}

// loadFormHTML reads the form HTML from a file or fetches and isolates it
// from the configured URL.
func loadFormHTML(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Form != "" {
		content, err := os.ReadFile(cfg.Form)
		if err != nil {
			return "", fmt.Errorf("failed to read form file: %w", err)
		}
		return string(content), nil
	}

	platform := fetch.DetectPlatform(cfg.FormURL)
	if scanVerbose {
		fmt.Fprintf(os.Stderr, "Fetching %s (platform: %s)\n", cfg.FormURL, platform)
	}

	result, err := fetch.URL(ctx, cfg.FormURL, fetch.DefaultOptions())
	if err != nil {
		return "", fmt.Errorf("failed to fetch form URL: %w", err)
	}

	html, err := fetch.ExtractFormHTML(result.HTML, fetch.PlatformFormSelectors(platform))
	if err != nil {
		return "", fmt.Errorf("no form content found at URL: %w", err)
	}
	return html, nil
}

// loadProfile reads a stored profile from a JSON file.
func loadProfile(path string) (*types.StoredProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.StoredProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}
