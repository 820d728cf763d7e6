package led

import (
	"fmt"

	"github.com/clambin/ledglow/pkg/ledberry"
	log "github.com/sirupsen/logrus"
)

// SysfsPort is a Port whose LED bits are wired to Linux LED class devices. Bits without an LED are kept in memory only.
type SysfsPort struct {
	leds  map[uint8]ledberry.LED
	value uint8
}

var _ Port = &SysfsPort{}

// NewSysfsPort creates a SysfsPort. paths holds the sysfs directory of each LED, in LED index order.
func NewSysfsPort(paths []string) (*SysfsPort, error) {
	if len(paths) != Count {
		return nil, fmt.Errorf("need %d LED paths, got %d", Count, len(paths))
	}
	p := SysfsPort{leds: make(map[uint8]ledberry.LED, Count)}
	for index, path := range paths {
		bit, _ := Bit(index)
		p.leds[bit] = ledberry.New(path)
	}
	return &p, nil
}

// Load returns the last stored value
func (p *SysfsPort) Load() uint8 {
	return p.value
}

// Store writes the LEDs whose bit changed
func (p *SysfsPort) Store(value uint8) error {
	changed := p.value ^ value
	for bit, l := range p.leds {
		mask := uint8(1) << bit
		if changed&mask == 0 {
			continue
		}
		if err := l.Set(value&mask != 0); err != nil {
			return fmt.Errorf("bit %d: %w", bit, err)
		}
		p.value ^= mask
	}
	p.value = p.value&p.ledMask() | value&^p.ledMask()
	return nil
}

// SetDirection takes control of the LEDs for every output bit, by disabling their kernel trigger
func (p *SysfsPort) SetDirection(mask uint8) error {
	for bit, l := range p.leds {
		if mask&(1<<bit) == 0 {
			continue
		}
		if err := l.SetActiveMode("none"); err != nil {
			log.WithError(err).WithField("bit", bit).Warn("unable to disable LED trigger")
		}
	}
	return nil
}

func (p *SysfsPort) ledMask() uint8 {
	var mask uint8
	for bit := range p.leds {
		mask |= 1 << bit
	}
	return mask
}
