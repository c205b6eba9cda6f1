package cvparse

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/JessicaCaiqingYang/Chrome-Extension-Autofill-Job-Application-sub002/internal/types"
)

// Fingerprint computes the SHA-256 content hash identifying an uploaded
// document for caching and invalidation.
func Fingerprint(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Cache deduplicates extraction runs per document fingerprint. At most
// one parse is in flight per fingerprint: a concurrent request for the
// same fingerprint joins the in-flight run instead of re-running the
// pipeline, and completed results are served from cache until
// invalidated by a new upload.
type Cache struct {
	extractor *Extractor

	group singleflight.Group

	mu      sync.Mutex
	results map[string]*types.ExtractedProfileData
}

// NewCache wraps an extractor with per-fingerprint deduplication.
func NewCache(extractor *Extractor) *Cache {
	return &Cache{
		extractor: extractor,
		results:   make(map[string]*types.ExtractedProfileData),
	}
}

// Extract returns the cached result for the fingerprint, joins an
// in-flight run, or starts a new one. A run abandoned through context
// cancellation is not cached; the next trigger starts fresh.
func (c *Cache) Extract(ctx context.Context, fingerprint, text string) (*types.ExtractedProfileData, error) {
	c.mu.Lock()
	if cached, ok := c.results[fingerprint]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(fingerprint, func() (any, error) {
		result, err := c.extractor.Extract(ctx, text)
		if err != nil {
			return nil, err
		}
		result.Fingerprint = fingerprint

		c.mu.Lock()
		c.results[fingerprint] = result
		c.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	result := v.(*types.ExtractedProfileData)
	// The in-flight run may have been invalidated by a newer upload
	// while it was executing; never hand out a stale result.
	c.mu.Lock()
	current, ok := c.results[fingerprint]
	c.mu.Unlock()
	if !ok || current != result {
		return nil, &StaleExtractionError{Fingerprint: fingerprint}
	}
	return result, nil
}

// Invalidate drops any cached or in-flight extraction for the
// fingerprint. Called when a new CV replaces the document the
// fingerprint identified.
func (c *Cache) Invalidate(fingerprint string) {
	c.group.Forget(fingerprint)
	c.mu.Lock()
	delete(c.results, fingerprint)
	c.mu.Unlock()
}
