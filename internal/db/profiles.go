package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// UpsertProfile stores a profile for a user, replacing any existing row
// with the same profile ID. Returns the profile's UUID.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, profile *types.StoredProfile) (uuid.UUID, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	profileID := uuid.Nil
	if profile.ID != "" {
		profileID, err = uuid.Parse(profile.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid profile id %q: %w", profile.ID, err)
		}
	}

	var id uuid.UUID
	if profileID == uuid.Nil {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO profiles (user_id, data, document_fingerprint)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			userID, data, profile.DocumentFingerprint,
		).Scan(&id)
	} else {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO profiles (id, user_id, data, document_fingerprint)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET data = $3, document_fingerprint = $4, updated_at = NOW()
			 RETURNING id`,
			profileID, userID, data, profile.DocumentFingerprint,
		).Scan(&id)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a stored profile by ID. Returns (nil, nil) when
// no row exists.
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*types.StoredProfile, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM profiles WHERE id = $1`,
		profileID,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.StoredProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", profileID, err)
	}
	profile.ID = profileID.String()
	return &profile, nil
}

// ListProfilesByUser retrieves profile rows for a user, newest first.
func (db *DB) ListProfilesByUser(ctx context.Context, userID uuid.UUID) ([]ProfileRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, data, COALESCE(document_fingerprint, ''), created_at, updated_at
		 FROM profiles WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var records []ProfileRecord
	for rows.Next() {
		var rec ProfileRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Data, &rec.DocumentFingerprint, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteProfile deletes a stored profile by ID.
func (db *DB) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", profileID)
	}
	return nil
}
