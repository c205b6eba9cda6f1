package cvparse

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint([]byte("same content"))
	b := Fingerprint([]byte("same content"))
	c := Fingerprint([]byte("different content"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCache_ReturnsCachedResult(t *testing.T) {
	cache := NewCache(newTestExtractor())
	fp := Fingerprint([]byte(minimalCV))

	first, err := cache.Extract(context.Background(), fp, minimalCV)
	require.NoError(t, err)
	assert.Equal(t, fp, first.Fingerprint)

	second, err := cache.Extract(context.Background(), fp, minimalCV)
	require.NoError(t, err)
	// Identical pointer: the pipeline did not re-run.
	assert.Same(t, first, second)
}

func TestCache_ConcurrentRequestsShareOneRun(t *testing.T) {
	cache := NewCache(newTestExtractor())
	fp := Fingerprint([]byte(minimalCV))

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := cache.Extract(context.Background(), fp, minimalCV)
			require.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestCache_InvalidateForcesFreshRun(t *testing.T) {
	cache := NewCache(newTestExtractor())
	fp := Fingerprint([]byte(minimalCV))

	first, err := cache.Extract(context.Background(), fp, minimalCV)
	require.NoError(t, err)

	cache.Invalidate(fp)

	second, err := cache.Extract(context.Background(), fp, minimalCV)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
}

func TestCache_DistinctFingerprintsDoNotCollide(t *testing.T) {
	cache := NewCache(newTestExtractor())

	otherCV := "John Smith\njohn@example.com\n\nSKILLS\nGo, Rust"
	a, err := cache.Extract(context.Background(), Fingerprint([]byte(minimalCV)), minimalCV)
	require.NoError(t, err)
	b, err := cache.Extract(context.Background(), Fingerprint([]byte(otherCV)), otherCV)
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", a.PersonalInfo.Email)
	assert.Equal(t, "john@example.com", b.PersonalInfo.Email)
}

func TestCache_CancelledRunIsNotCached(t *testing.T) {
	cache := NewCache(newTestExtractor())
	fp := Fingerprint([]byte(minimalCV))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Extract(ctx, fp, minimalCV)
	require.Error(t, err)

	// A fresh trigger starts over and succeeds.
	result, err := cache.Extract(context.Background(), fp, minimalCV)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", result.PersonalInfo.Email)
}
