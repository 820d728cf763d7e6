// Package schedule generates LED masks step by step, instead of reading them from a fixed table.
// Bit n of each mask is the state of LED n.
package schedule

import (
	"fmt"
	"math/rand"

	"github.com/clambin/ledglow/internal/led"
)

// Schedule returns the next mask each time Next is called. Cycle is the number of steps after which the
// schedule repeats itself.
type Schedule interface {
	Next() uint8
	Cycle() int
}

// Modes lists the supported schedules
var Modes = []string{"linear", "alternating", "binary", "random"}

// New creates a new Schedule for the specified mode. rnd is only used by the random schedule.
func New(mode string, rnd *rand.Rand) (Schedule, error) {
	var s Schedule
	switch mode {
	case "linear":
		s = &LinearSchedule{}
	case "alternating":
		s = &AlternatingSchedule{}
	case "binary":
		s = &BinarySchedule{}
	case "random":
		s = &RandomSchedule{rnd: rnd}
	default:
		return nil, fmt.Errorf("invalid schedule: %s", mode)
	}
	return s, nil
}

const allLEDs = 1<<led.Count - 1

// LinearSchedule moves a single lit LED from the first to the last LED, then starts from the first one again
type LinearSchedule struct {
	current int
}

var _ Schedule = &LinearSchedule{}

func (s *LinearSchedule) Next() uint8 {
	mask := uint8(1) << s.current
	s.current = (s.current + 1) % led.Count
	return mask
}

func (s *LinearSchedule) Cycle() int {
	return led.Count
}

// AlternatingSchedule moves a single lit LED from the first to the last LED and back again
type AlternatingSchedule struct {
	current   int
	direction int
}

var _ Schedule = &AlternatingSchedule{}

func (s *AlternatingSchedule) Next() uint8 {
	mask := uint8(1) << s.current
	if s.current == 0 {
		s.direction = 1
	} else if s.current == led.Count-1 {
		s.direction = -1
	}
	s.current += s.direction
	return mask
}

func (s *AlternatingSchedule) Cycle() int {
	return 2*led.Count - 2
}

// BinarySchedule counts up in binary
type BinarySchedule struct {
	current uint8
}

var _ Schedule = &BinarySchedule{}

func (s *BinarySchedule) Next() uint8 {
	s.current = (s.current + 1) & allLEDs
	return s.current
}

func (s *BinarySchedule) Cycle() int {
	return allLEDs + 1
}

// RandomSchedule lights a random set of LEDs, different from the previous one
type RandomSchedule struct {
	rnd     *rand.Rand
	current uint8
}

var _ Schedule = &RandomSchedule{}

func (s *RandomSchedule) Next() uint8 {
	intn := rand.Intn
	if s.rnd != nil {
		intn = s.rnd.Intn
	}
	// pick from the other 15 masks, so the pattern always changes
	next := uint8(intn(allLEDs))
	if next >= s.current {
		next++
	}
	s.current = next
	return next
}

func (s *RandomSchedule) Cycle() int {
	return allLEDs + 1
}
