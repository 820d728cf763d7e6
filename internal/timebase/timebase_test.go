package timebase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/clambin/ledglow/internal/metrics"
	"github.com/clambin/ledglow/internal/timebase"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	tests := []struct {
		name   string
		timer  timebase.Timer
		top    int
		period time.Duration
	}{
		{name: "fast", timer: timebase.Fast, top: 2, period: 1500 * time.Nanosecond},
		{name: "slow", timer: timebase.Slow, top: 2500, period: 10_004 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.top, tt.timer.Top())
			assert.Equal(t, tt.period, tt.timer.Period())
		})
	}
}

func TestNew(t *testing.T) {
	tb, err := timebase.New(timebase.Fast, timebase.Slow, nil)
	require.NoError(t, err)
	assert.Equal(t, timebase.Fast.Period(), tb.FastPeriod)
	assert.Equal(t, timebase.Slow.Period(), tb.SlowPeriod)

	_, err = timebase.New(timebase.Timer{Name: "bad"}, timebase.Slow, nil)
	assert.Error(t, err)
}

func TestCounters(t *testing.T) {
	var c timebase.Counters

	c.TickFast()
	c.TickFast()
	c.TickSlow()
	assert.Equal(t, int64(2), c.Fast())
	assert.Equal(t, int64(timebase.SlowIncrement), c.Slow())

	c.ResetFast()
	assert.Zero(t, c.Fast())
	assert.Equal(t, int64(timebase.SlowIncrement), c.Slow())
}

func TestCounters_Concurrent(t *testing.T) {
	var c timebase.Counters
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 1000 {
			c.TickFast()
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			c.TickSlow()
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(1000), c.Fast())
	assert.Equal(t, int64(5000), c.Slow())
}

func TestTimebase_Run(t *testing.T) {
	tb := timebase.Timebase{FastPeriod: time.Millisecond, SlowPeriod: 5 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- tb.Run(ctx) }()

	require.Eventually(t, func() bool {
		return tb.Fast() > 5 && tb.Slow() >= 10
	}, time.Second, time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
	assert.Zero(t, tb.Slow()%timebase.SlowIncrement)
}

func TestTimebase_Run_FastRate(t *testing.T) {
	m := metrics.New("", 0)
	tb := timebase.Timebase{FastPeriod: timebase.Fast.Period(), SlowPeriod: time.Hour, Metrics: m}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	start := time.Now()
	go func() { errCh <- tb.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	require.NoError(t, <-errCh)
	elapsed := time.Since(start)

	// the fast timebase keeps pace with its period, not with the scheduler's timer resolution
	expected := int64(elapsed / tb.FastPeriod)
	assert.LessOrEqual(t, tb.Fast(), expected)
	assert.GreaterOrEqual(t, tb.Fast(), expected/2)
	assert.Equal(t, float64(tb.Fast()), testutil.ToFloat64(m.Ticks(timebase.Fast.Name)))
	assert.Zero(t, tb.Slow())
}
