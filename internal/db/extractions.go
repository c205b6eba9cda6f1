package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// SaveExtraction caches an extraction result under its document
// fingerprint, replacing any previous result for the same document.
func (db *DB) SaveExtraction(ctx context.Context, result *types.ExtractedProfileData) error {
	if result.Fingerprint == "" {
		return fmt.Errorf("extraction result has no fingerprint")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal extraction: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO extractions (fingerprint, status, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (fingerprint) DO UPDATE SET status = $2, data = $3, created_at = NOW()`,
		result.Fingerprint, string(result.Status), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save extraction %s: %w", result.Fingerprint, err)
	}
	return nil
}

// GetExtraction retrieves a cached extraction by document fingerprint.
// Returns (nil, nil) when no row exists.
func (db *DB) GetExtraction(ctx context.Context, fingerprint string) (*types.ExtractedProfileData, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM extractions WHERE fingerprint = $1`,
		fingerprint,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get extraction: %w", err)
	}

	var result types.ExtractedProfileData
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction %s: %w", fingerprint, err)
	}
	return &result, nil
}

// DeleteExtraction removes a cached extraction, forcing a re-run on the
// next request for that document.
func (db *DB) DeleteExtraction(ctx context.Context, fingerprint string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM extractions WHERE fingerprint = $1`, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to delete extraction: %w", err)
	}
	return nil
}
