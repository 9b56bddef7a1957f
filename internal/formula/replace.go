package formula

import "strings"

// ReplaceIdent replaces every identifier token equal to name in s with repl.
// An identifier token is a letter followed by any run of digits, so with
// name "x" the text "x1" is left alone. Bound and free occurrences are
// replaced alike.
func ReplaceIdent(s, name, repl string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if !isLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if s[i:j] == name {
			b.WriteString(repl)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
