package led

import "sync/atomic"

// Port is an 8-bit output register
type Port interface {
	Load() uint8
	Store(value uint8) error
	SetDirection(mask uint8) error
}

// Register is an in-memory Port
type Register struct {
	value     atomic.Uint32
	direction atomic.Uint32
}

var _ Port = &Register{}

func (r *Register) Load() uint8 {
	return uint8(r.value.Load())
}

func (r *Register) Store(value uint8) error {
	r.value.Store(uint32(value))
	return nil
}

// SetDirection records which pins are outputs
func (r *Register) SetDirection(mask uint8) error {
	r.direction.Store(uint32(mask))
	return nil
}

// Direction returns the mask set by SetDirection
func (r *Register) Direction() uint8 {
	return uint8(r.direction.Load())
}
