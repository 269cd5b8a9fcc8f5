// Package otp turns TRNG samples into one-time passwords served on a console
package otp

const (
	// ClearScreen clears the terminal and homes the cursor
	ClearScreen = "\x1b[2J\x1b[;H"
	Rule        = "***********************************************************"
	Title       = "PMG1 MCU Cryptography: TRNG"
	Prompt      = "Press the Enter key to generate new One-Time Password (OTP):"
	LinePrefix  = "OTP is: 0x"
)

const hexDigits = "0123456789ABCDEF"

// Hex formats v as 8 uppercase hex digits, zero-padded
func Hex(v uint32) string {
	var b [8]byte
	for i := range b {
		shift := uint(28 - 4*i)
		b[i] = hexDigits[(v>>shift)&0xF]
	}
	return string(b[:])
}

// Line is the console line announcing v, always 18 bytes
func Line(v uint32) string {
	return LinePrefix + Hex(v)
}

// Banner is written when the console starts
func Banner() string {
	return ClearScreen +
		Rule + "\r\n" +
		Title + "\r\n" +
		Rule + "\r\n\n" +
		Prompt + "\r\n\n"
}

// Reply is written after each generated password
func Reply(v uint32) string {
	return Line(v) + "\r\n\n" +
		Rule + "\r\n" +
		"\r\n" + Prompt + "\r\n\n"
}
