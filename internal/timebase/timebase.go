package timebase

import (
	"context"
	"time"

	"github.com/clambin/ledglow/internal/clock"
	"github.com/clambin/ledglow/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Timebase runs the fast and slow tick handlers
type Timebase struct {
	Counters
	FastPeriod time.Duration
	SlowPeriod time.Duration
	Metrics    *metrics.Metrics
}

// New creates a Timebase ticking at the periods of the provided timers
func New(fast, slow Timer, m *metrics.Metrics) (*Timebase, error) {
	for _, t := range []Timer{fast, slow} {
		if err := t.validate(); err != nil {
			return nil, err
		}
	}
	return &Timebase{
		FastPeriod: fast.Period(),
		SlowPeriod: slow.Period(),
		Metrics:    m,
	}, nil
}

// Run starts both tick handlers and blocks until ctx is done
func (tb *Timebase) Run(ctx context.Context) error {
	log.WithFields(log.Fields{
		"fast": tb.FastPeriod,
		"slow": tb.SlowPeriod,
	}).Debug("timebase started")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tb.handle(ctx, tb.FastPeriod, Fast.Name, tb.TickFast)
		return nil
	})
	g.Go(func() error {
		tb.handle(ctx, tb.SlowPeriod, Slow.Name, tb.TickSlow)
		return nil
	})
	err := g.Wait()

	log.Debug("timebase stopped")
	return err
}

// handle calls tick once per period. Periods shorter than clock.SpinLimit are below a ticker's resolution, so they spin.
func (tb *Timebase) handle(ctx context.Context, period time.Duration, name string, tick func()) {
	ticks := tb.Metrics.Ticks(name)
	if period < clock.SpinLimit {
		tb.spin(ctx, period, tick, ticks)
		return
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
			ticks.Inc()
		}
	}
}

// spin busy-waits on the monotonic clock and ticks once for every period that has elapsed since it started.
// Periods missed while the goroutine was descheduled are caught up, so the tick count follows wall-clock time.
func (tb *Timebase) spin(ctx context.Context, period time.Duration, tick func(), ticks prometheus.Counter) {
	start := time.Now()
	var handled int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		for due := int64(time.Since(start) / period); handled < due; handled++ {
			tick()
			ticks.Inc()
		}
	}
}
