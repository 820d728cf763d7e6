package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demos that can be selected with --demo
const (
	DemoWalk        = "walk"
	DemoSOS         = "sos"
	DemoGlow        = "glow"
	DemoPulseGlow   = "pulse-glow"
	DemoLightShow   = "light-show"
	DemoLinear      = "linear"
	DemoAlternating = "alternating"
	DemoBinary      = "binary"
	DemoRandom      = "random"
)

// Outputs that can be selected with --output
const (
	OutputMemory = "memory"
	OutputSysfs  = "sysfs"
)

var (
	demos   = []string{DemoWalk, DemoSOS, DemoGlow, DemoPulseGlow, DemoLightShow, DemoLinear, DemoAlternating, DemoBinary, DemoRandom}
	outputs = []string{OutputMemory, OutputSysfs}
)

type Configuration struct {
	Debug          bool
	PrometheusAddr string
	Demo           DemoConfiguration
	Output         OutputConfiguration
	Timebase       TimebaseConfiguration
}

// DemoConfiguration selects the demo to run, and its parameters
type DemoConfiguration struct {
	Name       string
	LED        int
	Brightness float64
	Repeat     int
	Rotation   time.Duration
}

// OutputConfiguration selects where the LED port is written to
type OutputConfiguration struct {
	Mode     string
	LEDPaths []string
}

// TimebaseConfiguration overrides the tick periods. Zero uses the period of the built-in timer.
type TimebaseConfiguration struct {
	FastTick     time.Duration
	SlowTick     time.Duration
	VirtualClock bool
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "ledglow")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("prometheus", "Prometheus metrics listener address (blank: disabled)").Default("").StringVar(&cfg.PrometheusAddr)
	a.Flag("demo", "Demo to run").Short('m').Default(DemoSOS).EnumVar(&cfg.Demo.Name, demos...)
	a.Flag("led", fmt.Sprintf("LED to use for glow and pulse-glow (0-%d)", led.Count-1)).Short('l').Default("2").IntVar(&cfg.Demo.LED)
	a.Flag("brightness", "Brightness for glow (0-1)").Short('b').Default("0.5").Float64Var(&cfg.Demo.Brightness)
	a.Flag("repeat", "Number of times to play a pattern (0: forever)").Short('r').Default("1").IntVar(&cfg.Demo.Repeat)
	a.Flag("rotation", "Delay between steps of the linear, alternating, binary and random demos").Default("250ms").DurationVar(&cfg.Demo.Rotation)
	a.Flag("output", "LED output").Short('o').Default(OutputMemory).EnumVar(&cfg.Output.Mode, outputs...)
	a.Flag("led-path", "sysfs directory of an LED, once per LED, in LED order").StringsVar(&cfg.Output.LEDPaths)
	a.Flag("fast-tick", "Fast timebase period (0: derived from the timer settings)").Default("0s").DurationVar(&cfg.Timebase.FastTick)
	a.Flag("slow-tick", "Slow timebase period (0: derived from the timer settings)").Default("0s").DurationVar(&cfg.Timebase.SlowTick)
	a.Flag("virtual-clock", "Don't wait for real time to pass").Default("false").BoolVar(&cfg.Timebase.VirtualClock)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Configuration) validate() error {
	if c.Demo.LED < 0 || c.Demo.LED >= led.Count {
		return fmt.Errorf("led must be between 0 and %d: %d", led.Count-1, c.Demo.LED)
	}
	if c.Demo.Brightness < 0 || c.Demo.Brightness > 1 {
		return fmt.Errorf("brightness must be between 0 and 1: %g", c.Demo.Brightness)
	}
	if c.Demo.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative: %d", c.Demo.Repeat)
	}
	if c.Demo.Rotation <= 0 {
		return fmt.Errorf("rotation must be positive: %s", c.Demo.Rotation)
	}
	if c.Output.Mode == OutputSysfs && len(c.Output.LEDPaths) != led.Count {
		return fmt.Errorf("sysfs output needs %d led paths, got %d", led.Count, len(c.Output.LEDPaths))
	}
	if c.Timebase.FastTick < 0 || c.Timebase.SlowTick < 0 {
		return errors.New("tick periods must not be negative")
	}
	return nil
}
