//go:build tinygo

package serial

import (
	"fmt"
	"machine"
	"time"
)

// uartPort makes a machine.UART read block until a byte arrives
type uartPort struct {
	*machine.UART
}

// Open configures a UART at cfg.Baud.  Name "0" or "1" selects UART0 or
// UART1; empty selects the board's default UART.
func Open(cfg Config) (Port, error) {
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}

	var uart *machine.UART
	switch cfg.Name {
	case "":
		uart = machine.DefaultUART
	case "0":
		uart = machine.UART0
	case "1":
		uart = machine.UART1
	default:
		return nil, fmt.Errorf("unknown UART %s", cfg.Name)
	}

	if err := uart.Configure(machine.UARTConfig{BaudRate: uint32(cfg.Baud)}); err != nil {
		return nil, fmt.Errorf("failed to configure UART %s: %w", cfg.Name, err)
	}

	return &uartPort{uart}, nil
}

func (p *uartPort) Read(b []byte) (int, error) {
	for p.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	return p.UART.Read(b)
}

func (p *uartPort) Close() error {
	return nil
}
