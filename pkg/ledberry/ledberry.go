// Package ledberry drives an LED exposed by the Linux LED class driver (/sys/class/leds/<name>).
package ledberry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DefaultMaxBrightness is used when the LED doesn't report its maximum brightness
const DefaultMaxBrightness = 255

// ErrInvalidMode is returned when setting a trigger the LED doesn't support
var ErrInvalidMode = errors.New("invalid mode")

// LED is one LED class device
type LED struct {
	path string
}

func New(path string) LED {
	return LED{path: path}
}

func (l LED) file(name string) string {
	return filepath.Join(l.path, name)
}

func (l LED) readInt(name string) (int, error) {
	content, err := os.ReadFile(l.file(name))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(content)))
}

// GetBrightness returns the current brightness
func (l LED) GetBrightness() (int, error) {
	return l.readInt("brightness")
}

// SetBrightness sets the brightness. Zero switches the LED off.
func (l LED) SetBrightness(value int) error {
	return os.WriteFile(l.file("brightness"), []byte(strconv.Itoa(value)), 0644)
}

// GetMaxBrightness returns the highest brightness the LED supports
func (l LED) GetMaxBrightness() int {
	value, err := l.readInt("max_brightness")
	if err != nil || value <= 0 {
		return DefaultMaxBrightness
	}
	return value
}

// Set switches the LED fully on or off
func (l LED) Set(on bool) error {
	var value int
	if on {
		value = l.GetMaxBrightness()
	}
	return l.SetBrightness(value)
}

// GetModes returns all triggers supported by the LED
func (l LED) GetModes() ([]string, error) {
	modes, _, err := l.readTrigger()
	return modes, err
}

// GetActiveMode returns the active trigger, or a blank string if none is marked active
func (l LED) GetActiveMode() (string, error) {
	_, active, err := l.readTrigger()
	return active, err
}

// SetActiveMode activates a trigger. "none" hands control of the LED to the caller.
func (l LED) SetActiveMode(mode string) error {
	modes, active, err := l.readTrigger()
	if err != nil {
		return err
	}
	if !slices.Contains(modes, mode) {
		return fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if mode == active {
		return nil
	}
	return os.WriteFile(l.file("trigger"), []byte(mode), 0644)
}

// readTrigger parses the trigger file: a space-separated list of modes, with the active one in brackets
func (l LED) readTrigger() ([]string, string, error) {
	content, err := os.ReadFile(l.file("trigger"))
	if err != nil {
		return nil, "", err
	}
	var active string
	modes := strings.Fields(string(content))
	for i, mode := range modes {
		if len(mode) > 2 && mode[0] == '[' && mode[len(mode)-1] == ']' {
			modes[i] = mode[1 : len(mode)-1]
			active = modes[i]
		}
	}
	return modes, active, nil
}
