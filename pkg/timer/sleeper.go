package timer

import (
	"context"
	"time"

	"github.com/Veraticus/break-timer/pkg/interfaces"
)

// ContextSleeper sleeps on the wall clock and wakes early on cancellation.
type ContextSleeper struct{}

// Ensure ContextSleeper implements Sleeper
var _ interfaces.Sleeper = ContextSleeper{}

// Sleep blocks for d or until ctx is done, whichever comes first
func (ContextSleeper) Sleep(ctx context.Context, d time.Duration) error {
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
