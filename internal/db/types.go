package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns stored profiles.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileRecord is a stored profile row. Data holds the profile JSON
// as produced by types.StoredProfile.
type ProfileRecord struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Data                []byte    `json:"data"`
	DocumentFingerprint string    `json:"document_fingerprint,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ExtractionRecord is a cached extraction result keyed by document
// fingerprint. Data holds the types.ExtractedProfileData JSON.
type ExtractionRecord struct {
	Fingerprint string    `json:"fingerprint"`
	Status      string    `json:"status"`
	Data        []byte    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}
