package assets

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotReady is returned when assets are still loading after the last
// permitted attempt.
var ErrNotReady = errors.New("assets: not ready")

// Readiness is anything that finishes loading in the background.
type Readiness interface {
	Ready() bool
}

// WaitReady polls r every interval until it is ready. maxAttempts bounds the
// number of checks; zero means poll until ctx is done.
func WaitReady(ctx context.Context, r Readiness, interval time.Duration, maxAttempts int) error {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		if r.Ready() {
			return nil
		}
		if maxAttempts > 0 && attempt >= maxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrNotReady, attempt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
