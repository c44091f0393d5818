// ABOUTME: Retry helpers for embedding and oracle API calls
// ABOUTME: Exponential backoff with jitter, shared by all provider clients
package util

import (
	"context"
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: base doubled
// per attempt with random jitter up to 25% either way, capped at 30s.
// Attempt 0 (the first try) waits nothing.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap the shift to keep 1<<attempt from overflowing
	if attempt > 30 {
		attempt = 30
	}
	delay := base * time.Duration(1<<uint(attempt))
	if delay <= 0 {
		return 0
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2+1)) - delay/4
	return delay + jitter
}

// SleepBackoff waits out the backoff for attempt, returning early with
// the context's error if it is canceled first.
func SleepBackoff(ctx context.Context, base time.Duration, attempt int) error {
	d := Backoff(base, attempt)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
