package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var _ prometheus.Collector = &Metrics{}

// Metrics records what the LED controllers do. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ticks     *prometheus.CounterVec
	ledWrites *prometheus.CounterVec
	steps     *prometheus.CounterVec
	rampFlips *prometheus.CounterVec
	threshold *prometheus.GaugeVec

	// ledWriteCounters holds the led_writes_total children of the first leds LEDs, indexed by [led][state].
	ledWriteCounters [][2]prometheus.Counter
}

// discard absorbs increments when Metrics is nil. It is never registered.
var discard = prometheus.NewCounter(prometheus.CounterOpts{Name: "discard"})

// New creates a new Metrics. namespace may be blank. The LED write series of LEDs 0 to leds-1 are created up front.
func New(namespace string, leds int) *Metrics {
	m := Metrics{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "timebase_ticks_total",
				Help:      "Number of timebase ticks handled, per timer.",
			},
			[]string{"timer"},
		),
		ledWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "led_writes_total",
				Help:      "Number of LED state writes, per LED and state.",
			},
			[]string{"led", "state"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pattern_steps_total",
				Help:      "Number of pattern steps played, per pattern.",
			},
			[]string{"pattern"},
		),
		rampFlips: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ramp_direction_changes_total",
				Help:      "Number of times the pulse ramp changed direction, per new direction.",
			},
			[]string{"direction"},
		),
		threshold: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "pwm_threshold",
				Help:      "Current PWM threshold, per LED.",
			},
			[]string{"led"},
		),
	}
	m.ledWriteCounters = make([][2]prometheus.Counter, leds)
	for index := range leds {
		label := strconv.Itoa(index)
		m.ledWriteCounters[index] = [2]prometheus.Counter{
			m.ledWrites.WithLabelValues(label, "off"),
			m.ledWrites.WithLabelValues(label, "on"),
		}
	}
	return &m
}

// Ticks returns the tick counter of a timer. Tick handlers look it up once, before they start ticking.
func (m *Metrics) Ticks(timer string) prometheus.Counter {
	if m == nil {
		return discard
	}
	return m.ticks.WithLabelValues(timer)
}

// LEDWrite records a state change request for an LED
func (m *Metrics) LEDWrite(index int, on bool) {
	if m == nil {
		return
	}
	state := 0
	if on {
		state = 1
	}
	if index >= 0 && index < len(m.ledWriteCounters) {
		m.ledWriteCounters[index][state].Inc()
		return
	}
	m.ledWrites.WithLabelValues(strconv.Itoa(index), [2]string{"off", "on"}[state]).Inc()
}

// PatternStep records one played pattern step
func (m *Metrics) PatternStep(pattern string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(pattern).Inc()
}

// RampFlip records a change of ramp direction
func (m *Metrics) RampFlip(direction int) {
	if m == nil {
		return
	}
	label := "up"
	if direction < 0 {
		label = "down"
	}
	m.rampFlips.WithLabelValues(label).Inc()
}

// Threshold records the current PWM threshold of an LED
func (m *Metrics) Threshold(index, threshold int) {
	if m == nil {
		return
	}
	m.threshold.WithLabelValues(strconv.Itoa(index)).Set(float64(threshold))
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.ticks.Describe(ch)
	m.ledWrites.Describe(ch)
	m.steps.Describe(ch)
	m.rampFlips.Describe(ch)
	m.threshold.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.ticks.Collect(ch)
	m.ledWrites.Collect(ch)
	m.steps.Collect(ch)
	m.rampFlips.Collect(ch)
	m.threshold.Collect(ch)
}
