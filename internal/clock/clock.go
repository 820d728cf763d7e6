package clock

import (
	"context"
	"time"
)

// Clock paces the foreground code. Delay blocks for d, or until ctx is done.
type Clock interface {
	Delay(ctx context.Context, d time.Duration) error
}

// SpinLimit is the longest delay Real busy-waits for. Longer delays park the goroutine on a timer.
const SpinLimit = time.Millisecond

// Real waits on wall-clock time
type Real struct{}

var _ Clock = Real{}

// Delay waits for d. Short delays spin, like the microcontroller's delay loops; a timer's resolution is too coarse for them.
func (Real) Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	if d < SpinLimit {
		deadline := time.Now().Add(d)
		for time.Now().Before(deadline) {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return nil
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
