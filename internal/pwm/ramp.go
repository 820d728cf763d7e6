package pwm

// Ramp moves a threshold one step at a time between 0 and Period and back
type Ramp struct {
	Period    int
	Threshold int
	Direction int
}

// NewRamp returns a Ramp starting at 0, going up
func NewRamp(period int) Ramp {
	return Ramp{Period: period, Direction: 1}
}

// Tick moves the threshold by one step in the current direction. At either bound, the direction reverses.
// Tick reports whether the direction changed.
func (r *Ramp) Tick() bool {
	r.Threshold += r.Direction
	direction := r.Direction
	switch {
	case r.Threshold >= r.Period:
		r.Threshold = r.Period
		r.Direction = -1
	case r.Threshold <= 0:
		r.Threshold = 0
		r.Direction = 1
	}
	return direction != r.Direction
}
