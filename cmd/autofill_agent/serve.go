package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/server"
)

var (
	servePort      int
	serveThreshold float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for extraction, form scanning, upload matching, profile merging, and profile storage.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().Float64Var(&serveThreshold, "threshold", 0, "Classification confidence threshold (0 = default 0.5)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Threshold:   serveThreshold,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
