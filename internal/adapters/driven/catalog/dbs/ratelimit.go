package dbs

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces out catalog requests with a token bucket.
// A non-positive rate disables pacing.
type Pacer struct {
	bucket *rate.Limiter
}

// NewPacer creates a pacer allowing perSecond requests per second with a
// burst of one.
func NewPacer(perSecond float64) *Pacer {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Pacer{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next request may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.bucket.Wait(ctx)
}

// Limited reports whether pacing is active.
func (p *Pacer) Limited() bool {
	return p.bucket.Limit() != rate.Inf
}
