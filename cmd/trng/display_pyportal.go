//go:build tinygo && pyportal

package main

import (
	"machine"

	"github.com/merliot/trng"
	"github.com/merliot/trng/display"
	"tinygo.org/x/drivers/ili9341"
)

func attachDisplay(r *trng.Runner) {
	d := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)
	d.Configure(ili9341.Config{})

	machine.TFT_BACKLIGHT.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.TFT_BACKLIGHT.High()

	r.Mirror("display", display.New(d))
}
