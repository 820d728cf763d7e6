package led_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBit(t *testing.T) {
	for index := range led.Count {
		bit, err := led.Bit(index)
		require.NoError(t, err)
		assert.Equal(t, uint8(7-2*index), bit)
	}

	for _, index := range []int{-1, 4, 100} {
		_, err := led.Bit(index)
		assert.ErrorIs(t, err, led.ErrInvalidLED)
	}
}

func TestDriver_Set(t *testing.T) {
	for _, initial := range []uint8{0x00, 0xFF, 0x55, 0xAA} {
		for index := range led.Count {
			for _, on := range []bool{true, false} {
				t.Run(fmt.Sprintf("%02x-%d-%v", initial, index, on), func(t *testing.T) {
					var r led.Register
					require.NoError(t, r.Store(initial))
					d := led.Driver{Port: &r}

					require.NoError(t, d.Set(index, on))

					mask := uint8(1) << (7 - 2*index)
					assert.Equal(t, initial&^mask, r.Load()&^mask, "other bits must not change")
					assert.Equal(t, on, r.Load()&mask != 0)

					got, err := d.Get(index)
					require.NoError(t, err)
					assert.Equal(t, on, got)
				})
			}
		}
	}
}

func TestDriver_Set_Invalid(t *testing.T) {
	var r led.Register
	require.NoError(t, r.Store(0x5A))
	d := led.Driver{Port: &r}

	assert.ErrorIs(t, d.Set(4, true), led.ErrInvalidLED)
	assert.ErrorIs(t, d.Set(-1, false), led.ErrInvalidLED)
	assert.Equal(t, uint8(0x5A), r.Load())

	_, err := d.Get(7)
	assert.ErrorIs(t, err, led.ErrInvalidLED)
}

func TestDriver_Apply(t *testing.T) {
	var r led.Register
	d := led.Driver{Port: &r}

	require.NoError(t, d.Apply(0x1))
	assert.Equal(t, [led.Count]bool{true, false, false, false}, d.States())
	assert.Equal(t, uint8(0x80), r.Load())

	require.NoError(t, d.Apply(0b0110))
	assert.Equal(t, [led.Count]bool{false, true, true, false}, d.States())
	assert.Equal(t, uint8(0x28), r.Load())

	require.NoError(t, d.Apply(0xF))
	assert.Equal(t, led.LEDDirection, r.Load())

	require.NoError(t, d.AllOff())
	assert.Equal(t, [led.Count]bool{}, d.States())
	assert.Zero(t, r.Load())
}

type mockPort struct {
	mock.Mock
}

func (m *mockPort) Load() uint8 {
	return m.Called().Get(0).(uint8)
}

func (m *mockPort) Store(value uint8) error {
	return m.Called(value).Error(0)
}

func (m *mockPort) SetDirection(mask uint8) error {
	return m.Called(mask).Error(0)
}

func TestDriver_Set_PortError(t *testing.T) {
	p := mockPort{}
	p.On("Load").Return(uint8(0x02))
	p.On("Store", uint8(0x22)).Return(errors.New("fail"))
	d := led.Driver{Port: &p}

	assert.Error(t, d.Set(1, true))
	p.AssertExpectations(t)
}

func TestRegister_Direction(t *testing.T) {
	var r led.Register
	require.NoError(t, r.SetDirection(led.LEDDirection))
	assert.Equal(t, uint8(0b10101010), r.Direction())
}

func TestSysfsPort(t *testing.T) {
	paths := testutils.MakeLEDs(t, led.Count, "none [mmc0]")
	p, err := led.NewSysfsPort(paths)
	require.NoError(t, err)

	require.NoError(t, p.SetDirection(led.LEDDirection))
	for _, path := range paths {
		assert.Equal(t, "none", testutils.ReadLED(t, path, "trigger"))
	}

	d := led.Driver{Port: p}
	require.NoError(t, d.Set(2, true))
	assert.Equal(t, "1", testutils.ReadLED(t, paths[2], "brightness"))
	assert.Empty(t, testutils.ReadLED(t, paths[0], "brightness"), "unchanged LEDs are not written")

	require.NoError(t, d.Apply(0b1001))
	assert.Equal(t, "1", testutils.ReadLED(t, paths[0], "brightness"))
	assert.Equal(t, "0", testutils.ReadLED(t, paths[2], "brightness"))
	assert.Equal(t, "1", testutils.ReadLED(t, paths[3], "brightness"))
	assert.Equal(t, [led.Count]bool{true, false, false, true}, d.States())

	require.NoError(t, p.Store(p.Load()|0x04))
	assert.Equal(t, uint8(0x86), p.Load())
}

func TestNewSysfsPort_Invalid(t *testing.T) {
	_, err := led.NewSysfsPort([]string{"/sys/class/leds/led0"})
	assert.Error(t, err)
}
