package pwm

import (
	"context"
	"fmt"
	"time"

	"github.com/clambin/ledglow/internal/clock"
	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// StepDelay is the time PulseGlow spends on each position of the PWM period
const StepDelay = time.Microsecond

// SlowCounter is the counter whose changes pace the pulse ramp
type SlowCounter interface {
	Slow() int64
}

// PulseGlow fades an LED in and out. The ramp moves one step each time the slow counter changes; in between,
// every Step scans one full PWM period at the current threshold.
type PulseGlow struct {
	driver  *led.Driver
	counter SlowCounter
	clock   clock.Clock
	metrics *metrics.Metrics
	index   int
	ramp    Ramp
	delay   time.Duration
	last    int64
	seen    bool
}

// NewPulseGlow creates a PulseGlow for the LED at index
func NewPulseGlow(driver *led.Driver, counter SlowCounter, c clock.Clock, index int, m *metrics.Metrics) (*PulseGlow, error) {
	if _, err := led.Bit(index); err != nil {
		return nil, fmt.Errorf("pulse glow: %w", err)
	}
	return &PulseGlow{
		driver:  driver,
		counter: counter,
		clock:   c,
		metrics: m,
		index:   index,
		ramp:    NewRamp(Period),
		delay:   StepDelay,
	}, nil
}

// Threshold returns the current ramp threshold
func (p *PulseGlow) Threshold() int {
	return p.ramp.Threshold
}

// Step advances the ramp if the slow counter changed since the last Step, then runs one PWM period
func (p *PulseGlow) Step(ctx context.Context) error {
	if slow := p.counter.Slow(); !p.seen || slow != p.last {
		p.seen = true
		p.last = slow
		if p.ramp.Tick() {
			log.WithFields(log.Fields{"led": p.index, "direction": p.ramp.Direction}).Debug("pulse reversed")
			p.metrics.RampFlip(p.ramp.Direction)
		}
		p.metrics.Threshold(p.index, p.ramp.Threshold)
	}

	for counter := 0; counter < p.ramp.Period; counter++ {
		if err := p.driver.Set(p.index, Commanded(int64(counter), p.ramp.Threshold)); err != nil {
			return err
		}
		if err := p.clock.Delay(ctx, p.delay); err != nil {
			return err
		}
	}
	return nil
}

// Run pulses the LED until ctx is done
func (p *PulseGlow) Run(ctx context.Context) error {
	log.WithField("led", p.index).Info("pulsing")
	for {
		if err := p.Step(ctx); err != nil {
			return err
		}
	}
}
