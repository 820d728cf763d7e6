package timebase

import (
	"fmt"
	"time"
)

// ClockHz is the clock rate the timer settings are derived from
const ClockHz = 16_000_000

var (
	// Fast generates the ~1µs tick driving the PWM counter
	Fast = Timer{Name: "fast", ClockHz: ClockHz, Prescaler: 8, Delay: time.Microsecond}
	// Slow generates the ~10ms tick pacing the pulse ramp
	Slow = Timer{Name: "slow", ClockHz: ClockHz, Prescaler: 64, Delay: 10 * time.Millisecond}
)

// Timer describes a compare-match timer: a counter running at ClockHz/Prescaler that fires when it reaches Top.
type Timer struct {
	Name      string
	ClockHz   int
	Prescaler int
	Delay     time.Duration
}

// Top returns the compare value that comes closest to the timer's Delay
func (t Timer) Top() int {
	return int(0.5 + float64(t.ClockHz)/float64(t.Prescaler)*t.Delay.Seconds())
}

// Period returns the actual interval between two ticks. The counter runs from 0 up to and including Top, so a
// tick takes Top+1 counts.
func (t Timer) Period() time.Duration {
	counts := int64(t.Top()+1) * int64(t.Prescaler)
	return time.Duration(counts * int64(time.Second) / int64(t.ClockHz))
}

func (t Timer) validate() error {
	if t.ClockHz <= 0 || t.Prescaler <= 0 {
		return fmt.Errorf("timer %s: invalid clock %d/%d", t.Name, t.ClockHz, t.Prescaler)
	}
	if t.Period() <= 0 {
		return fmt.Errorf("timer %s: period too short", t.Name)
	}
	return nil
}
