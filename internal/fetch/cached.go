// Package fetch - cached.go provides an in-memory TTL cache around URL fetching.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh. Form pages change
// rarely, but we keep the window short so stale field layouts are unlikely.
const DefaultCacheTTL = 15 * time.Minute

// CachedFetcher wraps URL fetching with an in-memory cache so repeated
// scans of the same page within the TTL do not re-fetch.
type CachedFetcher struct {
	options  *Options
	cacheTTL time.Duration

	mu    sync.Mutex
	pages map[string]cachedPage
}

type cachedPage struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL time.Duration
	Options  *Options
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:  config.Options,
		cacheTTL: config.CacheTTL,
		pages:    make(map[string]cachedPage),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// Fetch retrieves a URL, returning the cached copy when it is still fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	if page, ok := f.pages[urlStr]; ok && time.Since(page.fetchedAt) < f.cacheTTL {
		f.mu.Unlock()
		return &CachedResult{Result: page.result, FromCache: true}, nil
	}
	f.mu.Unlock()

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.pages[urlStr] = cachedPage{result: result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops the cached copy of a URL, forcing a re-fetch on the
// next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}
