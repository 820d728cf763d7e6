package pwm

import (
	"context"
	"fmt"

	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// FastCounter is the free-running counter Glow derives its PWM period from.
// Glow is the only caller of ResetFast.
type FastCounter interface {
	Fast() int64
	ResetFast()
}

// Glow keeps one LED at a fixed brightness
type Glow struct {
	driver    *led.Driver
	counter   FastCounter
	index     int
	period    int
	threshold int
	on        bool
}

// NewGlow creates a Glow for the LED at index. The LED is switched off first.
func NewGlow(driver *led.Driver, counter FastCounter, index int, brightness float64, m *metrics.Metrics) (*Glow, error) {
	if err := driver.Set(index, false); err != nil {
		return nil, fmt.Errorf("glow: %w", err)
	}
	g := Glow{
		driver:    driver,
		counter:   counter,
		index:     index,
		period:    Period,
		threshold: Threshold(Period, brightness),
	}
	m.Threshold(index, g.threshold)
	return &g, nil
}

// Threshold returns the number of ticks per period the LED is on
func (g *Glow) Threshold() int {
	return g.threshold
}

// Step runs one iteration of the PWM loop: wrap the counter at the end of the period, then switch the LED
// if it's not in the state required at the current counter.
func (g *Glow) Step() error {
	counter := g.counter.Fast()
	if counter >= int64(g.period) {
		g.counter.ResetFast()
		counter = 0
	}
	if on := Commanded(counter, g.threshold); on != g.on {
		if err := g.driver.Set(g.index, on); err != nil {
			return err
		}
		g.on = on
	}
	return nil
}

// Run runs the PWM loop until ctx is done. There is no delay between iterations: the fast counter paces the loop.
func (g *Glow) Run(ctx context.Context) error {
	log.WithFields(log.Fields{"led": g.index, "threshold": g.threshold, "period": g.period}).Info("glowing")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
}
