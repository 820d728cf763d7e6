// Package pwm approximates LED brightness by switching an LED on for a fraction of a fixed period.
package pwm

import "math"

// Period is the length of one PWM cycle, in timebase ticks
const Period = 500

// Threshold returns the number of ticks per period the LED is on, for a brightness between 0 and 1.
// Brightness outside that range is clamped.
func Threshold(period int, brightness float64) int {
	brightness = math.Max(0, math.Min(1, brightness))
	return int(math.Round(float64(period) * brightness))
}

// Commanded reports whether the LED should be on at position counter of the period
func Commanded(counter int64, threshold int) bool {
	return counter < int64(threshold)
}
