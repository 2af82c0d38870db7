//go:build !unix

package terminal

import "io"

// EmergencyReset writes the escape sequences that leave the alternate screen and show the cursor
func EmergencyReset(w io.Writer) {
	io.WriteString(w, "\x1b[?1000l\x1b[?1002l\x1b[?1006l\x1b[?25h\x1b[0m\x1b[?1049l")
}
