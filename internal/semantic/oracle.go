// Package semantic provides the text-similarity oracle used for the semantic
// relevance sub-score, with a lexical fallback and a content-hash cache.
package semantic

import (
	"context"
	"time"
)

// Oracle returns a similarity between two passages in [0,1].
type Oracle interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// FallbackOracle wraps a primary oracle with a per-call timeout and a local
// lexical substitute. It is total: a failing or slow primary never fails the
// match, the lexical estimate is returned instead.
type FallbackOracle struct {
	primary  Oracle
	fallback *LexicalOracle
	timeout  time.Duration
}

// NewFallbackOracle builds a total oracle. A nil primary degrades to pure
// lexical matching.
func NewFallbackOracle(primary Oracle, timeout time.Duration) *FallbackOracle {
	return &FallbackOracle{
		primary:  primary,
		fallback: NewLexicalOracle(),
		timeout:  timeout,
	}
}

// Similarity queries the primary oracle within the timeout, substituting the
// lexical heuristic on any failure.
func (o *FallbackOracle) Similarity(ctx context.Context, a, b string) (float64, error) {
	if o.primary == nil {
		return o.fallback.Similarity(ctx, a, b)
	}

	callCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	score, err := o.primary.Similarity(callCtx, a, b)
	if err != nil {
		return o.fallback.Similarity(ctx, a, b)
	}
	return clamp01(score), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
