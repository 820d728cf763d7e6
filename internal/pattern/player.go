package pattern

import (
	"context"
	"fmt"

	"github.com/clambin/ledglow/internal/clock"
	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Player plays Tables on a set of LEDs. Each step blocks for its duration.
type Player struct {
	Driver  *led.Driver
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

// Play plays the table once. It returns early only if ctx is cancelled.
func (p *Player) Play(ctx context.Context, t Table) error {
	for i, step := range t.Steps {
		if err := p.play(ctx, t.Policy, step); err != nil {
			return fmt.Errorf("%s: step %d: %w", t.Name, i, err)
		}
		p.Metrics.PatternStep(t.Name)
	}
	return nil
}

// PlayRepeat plays the table count times. A count of zero repeats forever.
func (p *Player) PlayRepeat(ctx context.Context, t Table, count int) error {
	for i := 0; count == 0 || i < count; i++ {
		log.WithFields(log.Fields{"pattern": t.Name, "run": i + 1}).Debug("playing")
		if err := p.Play(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) play(ctx context.Context, policy Policy, step Step) error {
	blank := step.Mask == 0

	if !blank || policy != SkipBlank {
		if err := p.Driver.Apply(step.Mask); err != nil {
			return err
		}
	}
	if err := p.Clock.Delay(ctx, step.Duration); err != nil {
		return err
	}
	if !blank && policy != Hold {
		return p.Driver.AllOff()
	}
	return nil
}
