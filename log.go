package trng

import (
	"fmt"
	"io"
	"os"
)

var logOutput io.Writer = os.Stdout

// SetLogOutput redirects the package log lines.  Use io.Discard when the
// console and the log share a terminal.
func SetLogOutput(w io.Writer) {
	logOutput = w
}

// Logf writes one log line terminated with \r\n
func Logf(format string, a ...any) {
	fmt.Fprintf(logOutput, format+"\r\n", a...)
}
