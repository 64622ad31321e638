// Package logfmt holds helpers for keeping log fields readable.
package logfmt

const maxRunes = 180

// Short cuts s to at most 180 runes, never inside a multi-byte rune.
func Short(s string) string {
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
