package timebase

import "sync/atomic"

// SlowIncrement is added to the slow counter on every slow tick
const SlowIncrement = 5

// Counters holds the two counters shared between the tick handlers and the foreground code.
//
// Each operation has exactly one writer: the tick handlers only call TickFast and TickSlow,
// the foreground only calls ResetFast. Fast and Slow may be called from anywhere; their value
// can change between two reads.
type Counters struct {
	fast atomic.Int64
	slow atomic.Int64
}

// TickFast advances the fast counter by one
func (c *Counters) TickFast() {
	c.fast.Add(1)
}

// TickSlow advances the slow counter by SlowIncrement
func (c *Counters) TickSlow() {
	c.slow.Add(SlowIncrement)
}

// ResetFast sets the fast counter back to zero
func (c *Counters) ResetFast() {
	c.fast.Store(0)
}

// Fast returns the current fast counter
func (c *Counters) Fast() int64 {
	return c.fast.Load()
}

// Slow returns the current slow counter
func (c *Counters) Slow() int64 {
	return c.slow.Load()
}
