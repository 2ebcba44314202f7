package config

// scanner is a cursor over a single declaration.
type scanner struct {
	src string
	pos int
}

func newScanner(decl string) *scanner {
	return &scanner{src: decl}
}

// next returns the text from the cursor up to, but not including, the first
// byte for which delim reports true, and advances past it. A nil delim stops
// at whitespace.
func (s *scanner) next(delim func(byte) bool) string {
	if delim == nil {
		delim = isSpace
	}

	start := s.pos
	for s.pos < len(s.src) && !delim(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// skipSpace advances the cursor past any whitespace.
func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// peek returns the byte at the cursor, or 0 at the end.
func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}

	return s.src[s.pos]
}

// rest returns everything from the cursor to the end and moves the cursor to
// the end.
func (s *scanner) rest() string {
	r := s.src[s.pos:]
	s.pos = len(s.src)

	return r
}

// last returns the final byte of the declaration, or 0 if it is empty.
func (s *scanner) last() byte {
	if len(s.src) == 0 {
		return 0
	}

	return s.src[len(s.src)-1]
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}
