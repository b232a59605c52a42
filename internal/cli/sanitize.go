package cli

import "strings"

// sanitizeText strips control characters from untrusted record text before
// it reaches the terminal. Printable text passes through unchanged.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
