package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/classify"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/cvparse"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/fetch"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/merge"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/scanner"
	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// ExtractRequest is the body for POST /extract.
type ExtractRequest struct {
	Text     string `json:"text"`
	FileName string `json:"file_name,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	// Persist stores the extraction result keyed by fingerprint so a
	// later merge can reference it without re-parsing.
	Persist bool `json:"persist,omitempty"`
}

// handleExtract parses CV text into structured profile data. Results are
// cached per document fingerprint; repeated uploads of the same content
// do not re-run the pipeline.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	fingerprint := cvparse.Fingerprint([]byte(req.Text))

	var result *types.ExtractedProfileData
	if req.MimeType != "" && !cvparse.SupportedMimeType(req.MimeType) {
		result = types.NewExtractedProfileData()
		result.Status = types.StatusFormatNotSupported
		result.Fingerprint = fingerprint
	} else {
		var err error
		result, err = s.cache.Extract(r.Context(), fingerprint, req.Text)
		if err != nil {
			var stale *cvparse.StaleExtractionError
			if errors.As(err, &stale) {
				s.errorResponse(w, http.StatusConflict, "Document was replaced during extraction; retry")
				return
			}
			log.Printf("Extraction failed for %s: %v", req.FileName, err)
			s.errorResponse(w, http.StatusInternalServerError, "Extraction failed")
			return
		}
	}

	if req.Persist && result.Status != types.StatusFormatNotSupported {
		if err := s.db.SaveExtraction(r.Context(), result); err != nil {
			log.Printf("Failed to persist extraction %s: %v", fingerprint, err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist extraction")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// ScanRequest is the body for POST /scan. Exactly one of HTML or URL must
// be set; ProfileID optionally resolves fill values from a stored
// profile.
type ScanRequest struct {
	HTML      string  `json:"html,omitempty"`
	URL       string  `json:"url,omitempty"`
	ProfileID string  `json:"profile_id,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ScanResponse carries the classified field mappings alongside the raw
// descriptors for callers that run their own matching.
type ScanResponse struct {
	Platform    string                  `json:"platform,omitempty"`
	FromCache   bool                    `json:"from_cache,omitempty"`
	Descriptors []types.FieldDescriptor `json:"descriptors"`
	Mappings    []types.FieldMapping    `json:"mappings"`
}

// handleScan scans a form's HTML for fillable fields and classifies each
// one against the profile schema.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if (req.HTML == "") == (req.URL == "") {
		s.errorResponse(w, http.StatusBadRequest, "exactly one of html or url is required")
		return
	}

	resp := ScanResponse{}
	html := req.HTML
	if req.URL != "" {
		platform := fetch.DetectPlatform(req.URL)
		resp.Platform = string(platform)

		fetched, err := s.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			log.Printf("Fetch failed for %s: %v", req.URL, err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch URL")
			return
		}
		resp.FromCache = fetched.FromCache

		html, err = fetch.ExtractFormHTML(fetched.HTML, fetch.PlatformFormSelectors(platform))
		if err != nil {
			s.errorResponse(w, http.StatusUnprocessableEntity, "No form content found at URL")
			return
		}
	}

	descriptors, err := scanner.ScanHTML(html)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to parse HTML")
		return
	}

	profile, ok := s.resolveProfile(r.Context(), w, req.ProfileID)
	if !ok {
		return
	}

	resp.Descriptors = descriptors
	resp.Mappings = classify.Classify(descriptors, s.library, classify.Options{
		Threshold: s.scanThreshold(req.Threshold),
		Profile:   profile,
	})
	s.jsonResponse(w, http.StatusOK, resp)
}

// scanThreshold picks the per-request threshold, falling back to the
// server default.
func (s *Server) scanThreshold(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	return s.threshold
}

// resolveProfile loads the requested profile, writing the error response
// itself when the lookup fails. An empty ID resolves to no profile.
func (s *Server) resolveProfile(ctx context.Context, w http.ResponseWriter, profileID string) (*types.StoredProfile, bool) {
	if profileID == "" {
		return nil, true
	}
	id, err := uuid.Parse(profileID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile_id")
		return nil, false
	}
	profile, err := s.db.GetProfile(ctx, id)
	if err != nil {
		log.Printf("Profile lookup failed for %s: %v", profileID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Profile lookup failed")
		return nil, false
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return nil, false
	}
	return profile, true
}

// MatchUploadsRequest is the body for POST /match-uploads.
type MatchUploadsRequest struct {
	Descriptors []types.FieldDescriptor `json:"descriptors"`
	Document    types.DocumentMetadata  `json:"document"`
}

// handleMatchUploads matches the stored document against the form's file
// upload fields, reporting type and size compatibility per field.
func (s *Server) handleMatchUploads(w http.ResponseWriter, r *http.Request) {
	var req MatchUploadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Descriptors) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "descriptors are required")
		return
	}
	s.jsonResponse(w, http.StatusOK, classify.MatchUploads(req.Descriptors, req.Document, s.library, classify.UploadOptions{}))
}

// MergeRequest is the body for POST /merge. The extraction may be passed
// inline or referenced by fingerprint when it was persisted earlier.
type MergeRequest struct {
	ProfileID    string                      `json:"profile_id"`
	Extracted    *types.ExtractedProfileData `json:"extracted,omitempty"`
	Fingerprint  string                      `json:"fingerprint,omitempty"`
	EditedFields []string                    `json:"edited_fields,omitempty"`
}

// handleMerge reconciles an extraction with a stored profile, preserving
// user-edited fields, and persists the merged result.
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := userIDFrom(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, ok := s.resolveProfile(r.Context(), w, req.ProfileID)
	if !ok {
		return
	}
	if profile == nil {
		// Merging into nothing: start from an empty profile.
		profile = &types.StoredProfile{}
	}

	extracted := req.Extracted
	if extracted == nil && req.Fingerprint != "" {
		extracted, err = s.db.GetExtraction(r.Context(), req.Fingerprint)
		if err != nil {
			log.Printf("Extraction lookup failed for %s: %v", req.Fingerprint, err)
			s.errorResponse(w, http.StatusInternalServerError, "Extraction lookup failed")
			return
		}
		if extracted == nil {
			s.errorResponse(w, http.StatusNotFound, "No extraction found for fingerprint")
			return
		}
	}

	edited := make(merge.EditedFields, len(req.EditedFields))
	for _, path := range req.EditedFields {
		edited[path] = true
	}

	merged, err := merge.Merge(extracted, *profile, edited)
	if err != nil {
		var stale *merge.StaleError
		if errors.As(err, &stale) {
			s.errorResponse(w, http.StatusConflict, stale.Error())
			return
		}
		log.Printf("Merge failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Merge failed")
		return
	}

	id, err := s.db.UpsertProfile(r.Context(), userID, &merged)
	if err != nil {
		log.Printf("Failed to store merged profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store profile")
		return
	}
	merged.ID = id.String()

	s.jsonResponse(w, http.StatusOK, merged)
}

// handleGetProfile returns one stored profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.resolveProfile(r.Context(), w, r.PathValue("id"))
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handlePutProfile stores the request body as the profile with the given
// ID, creating it if absent. The body's own ID field is ignored.
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}
	userID, err := userIDFrom(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile types.StoredProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile.ID = id.String()

	// A replaced profile invalidates any cached extraction tied to the
	// document it previously tracked.
	if existing, err := s.db.GetProfile(r.Context(), id); err == nil && existing != nil {
		if existing.DocumentFingerprint != "" && existing.DocumentFingerprint != profile.DocumentFingerprint {
			s.cache.Invalidate(existing.DocumentFingerprint)
		}
	}

	if _, err := s.db.UpsertProfile(r.Context(), userID, &profile); err != nil {
		log.Printf("Failed to store profile %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store profile")
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleDeleteProfile removes a stored profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		log.Printf("Profile lookup failed for %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Profile lookup failed")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), id); err != nil {
		log.Printf("Failed to delete profile %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}
	if profile.DocumentFingerprint != "" {
		s.cache.Invalidate(profile.DocumentFingerprint)
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListProfiles returns the authenticated user's profiles, newest
// first.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := s.db.ListProfilesByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list profiles for %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	profiles := make([]types.StoredProfile, 0, len(records))
	for _, rec := range records {
		var profile types.StoredProfile
		if err := json.Unmarshal(rec.Data, &profile); err != nil {
			log.Printf("Skipping malformed profile %s: %v", rec.ID, err)
			continue
		}
		profile.ID = rec.ID.String()
		profiles = append(profiles, profile)
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}
