// Package ratelimit paces outbound API requests so sequential page fetches
// stay under the upstream rate limit.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate blocks until the next request is allowed to proceed.
type Gate interface {
	Wait(ctx context.Context) error
}

// IntervalGate allows one request per fixed interval, first request
// immediately.
type IntervalGate struct {
	limiter *rate.Limiter
}

func NewIntervalGate(interval time.Duration) *IntervalGate {
	if interval <= 0 {
		return &IntervalGate{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &IntervalGate{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (g *IntervalGate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}

// NopGate never blocks. Used in tests.
type NopGate struct{}

func (NopGate) Wait(context.Context) error { return nil }
