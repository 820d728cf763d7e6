package clock

import (
	"context"
	"sync"
	"time"
)

// Virtual is a Clock that never waits: each Delay advances a virtual time and calls OnDelay, if set.
// Tests use OnDelay to observe the LEDs at every hold, or to drive the timebase counters.
type Virtual struct {
	OnDelay func(d time.Duration)
	now     time.Duration
	delays  int
	lock    sync.Mutex
}

var _ Clock = &Virtual{}

// Delay advances the virtual time by d
func (v *Virtual) Delay(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.lock.Lock()
	v.now += d
	v.delays++
	v.lock.Unlock()

	if v.OnDelay != nil {
		v.OnDelay(d)
	}
	return nil
}

// Elapsed returns the total virtual time spent in Delay
func (v *Virtual) Elapsed() time.Duration {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.now
}

// Delays returns the number of calls to Delay
func (v *Virtual) Delays() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.delays
}
