package led

import (
	"errors"
	"fmt"
)

// Count is the number of LEDs on the board
const Count = 4

// ErrInvalidLED is returned for an LED index outside [0, Count)
var ErrInvalidLED = errors.New("invalid LED")

// bits maps an LED index to its bit in the output port. Only the odd bits are wired: LED n sits on bit 7-2n.
var bits = [Count]uint8{7, 5, 3, 1}

const (
	// LEDDirection sets the pins of the LED port that drive an LED as outputs
	LEDDirection uint8 = 0b10101010
	// AuxDirection sets the two auxiliary output pins. They are configured but not driven.
	AuxDirection uint8 = 1<<1 | 1<<3
)

// Bit returns the output port bit for the LED at index
func Bit(index int) (uint8, error) {
	if index < 0 || index >= Count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLED, index)
	}
	return bits[index], nil
}

// Mask returns the output port mask for the LED at index
func Mask(index int) (uint8, error) {
	bit, err := Bit(index)
	if err != nil {
		return 0, err
	}
	return 1 << bit, nil
}
