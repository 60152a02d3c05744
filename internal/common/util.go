package common

// WipeByteArray zeroes b in place. Used for passwords read from the terminal
// so they do not linger in memory longer than necessary.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Truncate returns s shortened to at most n runes. Multi-byte characters are
// never split.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
