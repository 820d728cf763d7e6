package pattern

// SOS flashes LED0 for three short pulses, all four LEDs for three long pulses, then LED0 again
var SOS = Table{
	Name:   "sos",
	Policy: SkipBlank,
	Steps: steps(
		[]uint8{
			0x1, 0, 0x1, 0, 0x1, 0,
			0xf, 0, 0xf, 0, 0xf, 0,
			0x1, 0, 0x1, 0, 0x1, 0,
			0x0,
		},
		[]int{
			100, 250, 100, 250, 100, 500,
			250, 250, 250, 250, 250, 500,
			100, 250, 100, 250, 100, 250,
			250,
		},
	),
}

// LightShow flashes, sweeps and bounces the four LEDs
var LightShow = Table{
	Name:   "light-show",
	Policy: ApplyBlank,
	Steps: steps(
		[]uint8{
			0b1111, 0b0000, 0b1111, 0b0000, 0b1111, 0b0000,
			0b0110, 0b0000, 0b1001, 0b0000, 0b1111, 0b0000,
			0b1111, 0b0000, 0b1111, 0b0000, 0b1001, 0b0000,
			0b0110, 0b0000, 0b1000, 0b1100, 0b0110, 0b0011,
			0b0001, 0b0011, 0b0110, 0b1100, 0b1000, 0b1100,
			0b0110, 0b0011, 0b0001, 0b0011, 0b0110, 0b1111,
			0b0000, 0b1111, 0b0000, 0b0110, 0b0000, 0b0110,
			0b0000,
		},
		[]int{
			250, 250, 250, 250, 250, 250,
			100, 100, 100, 100, 250, 250,
			250, 250, 250, 250, 100, 100,
			100, 100, 100, 100, 100, 100,
			100, 100, 100, 100, 100, 100,
			100, 100, 100, 100, 100, 250,
			250, 250, 250, 250, 250, 250,
			250,
		},
	),
}

// Walk switches single LEDs on and off, one second apart, to check the wiring of each LED
var Walk = Table{
	Name:   "walk",
	Policy: Hold,
	Steps: steps(
		[]uint8{0b0001, 0b0101, 0b0111, 0b0011, 0b0010, 0b0000},
		[]int{1000, 1000, 1000, 1000, 1000, 1000},
	),
}

// Tables lists all built-in tables by name
var Tables = map[string]Table{
	SOS.Name:       SOS,
	LightShow.Name: LightShow,
	Walk.Name:      Walk,
}
