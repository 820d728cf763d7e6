package led

import (
	"fmt"

	"github.com/clambin/ledglow/internal/metrics"
)

// Driver switches the LEDs wired to an output port
type Driver struct {
	Port    Port
	Metrics *metrics.Metrics
}

// Set switches the LED at index on or off. Only that LED's bit in the port changes.
func (d *Driver) Set(index int, on bool) error {
	mask, err := Mask(index)
	if err != nil {
		return err
	}
	value := d.Port.Load()
	if on {
		value |= mask
	} else {
		value &^= mask
	}
	if err = d.Port.Store(value); err != nil {
		return fmt.Errorf("led %d: %w", index, err)
	}
	d.Metrics.LEDWrite(index, on)
	return nil
}

// Get reports whether the LED at index is on
func (d *Driver) Get(index int) (bool, error) {
	mask, err := Mask(index)
	if err != nil {
		return false, err
	}
	return d.Port.Load()&mask != 0, nil
}

// States returns the state of every LED, in index order
func (d *Driver) States() [Count]bool {
	var states [Count]bool
	value := d.Port.Load()
	for index := range states {
		states[index] = value&(1<<bits[index]) != 0
	}
	return states
}

// Apply sets LED n to bit n of mask, for every LED
func (d *Driver) Apply(mask uint8) error {
	for index := range Count {
		if err := d.Set(index, (mask>>index)&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// AllOff switches off every LED
func (d *Driver) AllOff() error {
	return d.Apply(0)
}
