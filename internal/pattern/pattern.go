package pattern

import (
	"errors"
	"fmt"
	"time"

	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/pattern/schedule"
)

// ErrInvalidTable is returned by Validate
var ErrInvalidTable = errors.New("invalid pattern table")

// Policy determines how a Player handles blank steps and what it does after holding a step
type Policy int

const (
	// SkipBlank leaves the LEDs alone for a blank step and switches all LEDs off after every other step
	SkipBlank Policy = iota
	// ApplyBlank applies every step, blank ones included, and switches all LEDs off after every non-blank step
	ApplyBlank
	// Hold applies every step and leaves the LEDs as they are afterwards
	Hold
)

func (p Policy) String() string {
	switch p {
	case SkipBlank:
		return "skip-blank"
	case ApplyBlank:
		return "apply-blank"
	case Hold:
		return "hold"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Step is one entry of a Table: bit n of Mask is the state of LED n, held for Duration
type Step struct {
	Mask     uint8
	Duration time.Duration
}

// Table is a fixed light sequence
type Table struct {
	Name   string
	Policy Policy
	Steps  []Step
}

// Duration returns how long one playback of the table takes
func (t Table) Duration() time.Duration {
	var total time.Duration
	for _, step := range t.Steps {
		total += step.Duration
	}
	return total
}

// Validate checks that the table can be played
func (t Table) Validate() error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w: %s: no steps", ErrInvalidTable, t.Name)
	}
	const ledMask = 1<<led.Count - 1
	for i, step := range t.Steps {
		if step.Mask&^ledMask != 0 {
			return fmt.Errorf("%w: %s: step %d: mask %#x", ErrInvalidTable, t.Name, i, step.Mask)
		}
		if step.Duration <= 0 {
			return fmt.Errorf("%w: %s: step %d: duration %s", ErrInvalidTable, t.Name, i, step.Duration)
		}
	}
	return nil
}

// steps builds the steps of a table from parallel mask and duration (in ms) lists
func steps(masks []uint8, durations []int) []Step {
	if len(masks) != len(durations) {
		panic(fmt.Sprintf("pattern: %d masks, %d durations", len(masks), len(durations)))
	}
	s := make([]Step, len(masks))
	for i := range masks {
		s[i] = Step{Mask: masks[i], Duration: time.Duration(durations[i]) * time.Millisecond}
	}
	return s
}

// Generate builds a table from one cycle of a schedule, holding each mask for d
func Generate(name string, s schedule.Schedule, d time.Duration) Table {
	t := Table{Name: name, Policy: Hold, Steps: make([]Step, s.Cycle())}
	for i := range t.Steps {
		t.Steps[i] = Step{Mask: s.Next(), Duration: d}
	}
	return t
}
