package config

import "strings"

const (
	commentStart = '#'
	quote        = '"'
	terminator   = ';'
)

// isSpace reports whether c is an ASCII whitespace byte.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Normalize removes comments from s and collapses every run of whitespace
// outside double quotes into a single space.
//
// A comment starts at '#' outside quotes and runs up to, but not including,
// the next newline. Quoted text is copied verbatim. An unterminated quote
// extends to the end of s.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	var inQuote, inComment, inSpace bool

	for i := range len(s) {
		c := s[i]

		switch {
		case inComment:
			if c != '\n' {
				continue
			}

			inComment = false

			fallthrough

		case !inQuote && isSpace(c):
			if !inSpace {
				b.WriteByte(' ')
			}

			inSpace = true

			continue

		case inQuote:
			if c == quote {
				inQuote = false
			}

		case c == commentStart:
			inComment = true

			continue

		case c == quote:
			inQuote = true
		}

		inSpace = false

		b.WriteByte(c)
	}

	return b.String()
}

// SplitDeclarations splits normalized text at each ';' outside double quotes.
// Pieces are trimmed and empty pieces dropped.
func SplitDeclarations(normalized string) []string {
	var (
		decls   []string
		inQuote bool
		start   int
	)

	add := func(piece string) {
		if piece = strings.TrimSpace(piece); piece != "" {
			decls = append(decls, piece)
		}
	}

	for i := range len(normalized) {
		switch normalized[i] {
		case quote:
			inQuote = !inQuote

		case terminator:
			if !inQuote {
				add(normalized[start:i])
				start = i + 1
			}
		}
	}

	add(normalized[start:])

	return decls
}
