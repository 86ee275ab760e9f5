package semantic

import (
	"context"
	"crypto/sha256"
	"sync"
)

// CachingOracle memoizes similarity results by content hash so each
// (job, candidate) text pair hits the inner oracle at most once per run.
// Safe for concurrent use.
type CachingOracle struct {
	inner Oracle

	mu      sync.RWMutex
	entries map[[sha256.Size]byte]float64
}

// NewCachingOracle wraps an oracle with a content-hash cache.
func NewCachingOracle(inner Oracle) *CachingOracle {
	return &CachingOracle{
		inner:   inner,
		entries: make(map[[sha256.Size]byte]float64),
	}
}

// Similarity returns the cached score for this text pair, or queries the
// inner oracle and caches the result. Errors are not cached.
func (c *CachingOracle) Similarity(ctx context.Context, a, b string) (float64, error) {
	key := pairKey(a, b)

	c.mu.RLock()
	score, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return score, nil
	}

	score, err := c.inner.Similarity(ctx, a, b)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.entries[key] = score
	c.mu.Unlock()
	return score, nil
}

// Len reports the number of cached pairs.
func (c *CachingOracle) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func pairKey(a, b string) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(a))
	h.Write([]byte{0})
	h.Write([]byte(b))
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}
