//go:build !tinygo

// Command trng serves one-time passwords from a hardware random number
// generator on a serial console.  Press Enter on the console for a new
// password.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/merliot/trng"
	"github.com/merliot/trng/entropy"
	"github.com/merliot/trng/otp"
	"github.com/merliot/trng/serial"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "trng: %s\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "trng: %s\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.List {
		ports, err := serial.List()
		if err != nil {
			return err
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return nil
	}

	source, err := entropy.Open(cfg.Source)
	if err != nil {
		return err
	}
	if c, ok := source.(io.Closer); ok {
		defer c.Close()
	}

	var port serial.Port
	if cfg.TTY {
		// the console owns the terminal now
		trng.SetLogOutput(io.Discard)
		port, err = serial.OpenTTY()
	} else {
		trng.SetLogOutput(os.Stderr)
		port, err = serial.Open(serial.Config{
			Name:    cfg.Port,
			Baud:    cfg.Baud,
			LockDir: cfg.LockDir,
		})
	}
	if err != nil {
		return err
	}

	gen := otp.New(cfg.Id, "trng", cfg.Name, source)
	if cfg.JSON {
		gen.SetFlag(trng.ThingFlagJSON)
	}

	runner := trng.NewRunner(gen, port)
	if cfg.Mirror && !cfg.TTY {
		runner.Mirror("stdout", os.Stdout)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		runner.Close()
	}()

	err = runner.Run()
	runner.Close()
	return err
}
