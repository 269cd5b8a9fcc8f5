//go:build tinygo

package main

import (
	"io"

	"github.com/merliot/trng"
	"github.com/merliot/trng/entropy"
	"github.com/merliot/trng/otp"
	"github.com/merliot/trng/serial"
)

func main() {
	// the default UART may double as stdout
	trng.SetLogOutput(io.Discard)

	port, err := serial.Open(serial.Config{})
	if err != nil {
		panic(err.Error())
	}

	source, err := entropy.Open(entropy.NameMachine)
	if err != nil {
		panic(err.Error())
	}

	gen := otp.New("trng_01", "trng", "console", source)
	runner := trng.NewRunner(gen, port)
	attachDisplay(runner)

	if err := runner.Run(); err != nil {
		println("console:", err.Error())
	}
	select {}
}
