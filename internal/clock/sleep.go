// Package clock provides context-aware pauses for the polling loops in the
// scanner, the local chain follower, and the analytics exporter.
package clock

import (
	"context"
	"time"
)

// SleepWithContext pauses for d, returning the context's error instead when
// the context is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
