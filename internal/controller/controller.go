package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/clambin/ledglow/internal/clock"
	"github.com/clambin/ledglow/internal/configuration"
	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/metrics"
	"github.com/clambin/ledglow/internal/pattern"
	"github.com/clambin/ledglow/internal/pattern/schedule"
	"github.com/clambin/ledglow/internal/pwm"
	"github.com/clambin/ledglow/internal/timebase"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownDemo = errors.New("unknown demo")

// Controller sets up the board and runs one demo on it
type Controller struct {
	LEDPort  led.Port
	AuxPort  led.Port
	Driver   *led.Driver
	Timebase *timebase.Timebase
	Clock    clock.Clock
	demo     configuration.DemoConfiguration
	metrics  *metrics.Metrics
}

// New creates a Controller for the provided configuration. The board's pins are configured, but nothing runs
// until Run is called.
func New(cfg configuration.Configuration, m *metrics.Metrics) (*Controller, error) {
	ledPort, err := makePort(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("led port: %w", err)
	}

	tb, err := timebase.New(timebase.Fast, timebase.Slow, m)
	if err != nil {
		return nil, fmt.Errorf("timebase: %w", err)
	}
	if cfg.Timebase.FastTick > 0 {
		tb.FastPeriod = cfg.Timebase.FastTick
	}
	if cfg.Timebase.SlowTick > 0 {
		tb.SlowPeriod = cfg.Timebase.SlowTick
	}

	var c clock.Clock = clock.Real{}
	if cfg.Timebase.VirtualClock {
		c = &clock.Virtual{}
	}

	ctrl := Controller{
		LEDPort:  ledPort,
		AuxPort:  &led.Register{},
		Driver:   &led.Driver{Port: ledPort, Metrics: m},
		Timebase: tb,
		Clock:    c,
		demo:     cfg.Demo,
		metrics:  m,
	}
	if err = ctrl.setup(); err != nil {
		return nil, err
	}
	return &ctrl, nil
}

func makePort(cfg configuration.OutputConfiguration) (led.Port, error) {
	switch cfg.Mode {
	case configuration.OutputSysfs:
		return led.NewSysfsPort(cfg.LEDPaths)
	case configuration.OutputMemory, "":
		return &led.Register{}, nil
	default:
		return nil, fmt.Errorf("invalid output: %s", cfg.Mode)
	}
}

// setup configures the output pins and switches all LEDs off
func (c *Controller) setup() error {
	if err := c.LEDPort.SetDirection(led.LEDDirection); err != nil {
		return fmt.Errorf("led port: %w", err)
	}
	if err := c.AuxPort.SetDirection(led.AuxDirection); err != nil {
		return fmt.Errorf("aux port: %w", err)
	}
	return c.Driver.AllOff()
}

// Run starts the timebase and runs the configured demo. Run returns when the demo completes, or when ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	demo, err := c.makeDemo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.WithFields(log.Fields{
		"demo":       c.demo.Name,
		"led":        c.demo.LED,
		"brightness": c.demo.Brightness,
		"repeat":     c.demo.Repeat,
		"rotation":   c.demo.Rotation,
	}).Info("starting demo")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Timebase.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		// glow demos only stop when ctx is done: that's not an error
		if err := demo(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("%s: %w", c.demo.Name, err)
		}
		return nil
	})
	err = g.Wait()

	log.WithField("demo", c.demo.Name).Info("demo stopped")
	if offErr := c.Driver.AllOff(); offErr != nil && err == nil {
		err = offErr
	}
	return err
}

func (c *Controller) makeDemo() (func(context.Context) error, error) {
	switch c.demo.Name {
	case configuration.DemoGlow:
		g, err := pwm.NewGlow(c.Driver, c.Timebase, c.demo.LED, c.demo.Brightness, c.metrics)
		if err != nil {
			return nil, err
		}
		return g.Run, nil
	case configuration.DemoPulseGlow:
		p, err := pwm.NewPulseGlow(c.Driver, c.Timebase, c.Clock, c.demo.LED, c.metrics)
		if err != nil {
			return nil, err
		}
		return p.Run, nil
	}

	table, ok := pattern.Tables[c.demo.Name]
	if !ok {
		s, err := schedule.New(c.demo.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, c.demo.Name)
		}
		table = pattern.Generate(c.demo.Name, s, c.demo.Rotation)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	p := pattern.Player{Driver: c.Driver, Clock: c.Clock, Metrics: c.metrics}
	return func(ctx context.Context) error {
		return p.PlayRepeat(ctx, table, c.demo.Repeat)
	}, nil
}
