package config

import (
	"strconv"
	"strings"
)

const (
	vectorOpen  = '['
	vectorClose = ']'
	separator   = ','
)

// ParseString returns the text between the enclosing double quotes of s.
// Escape sequences are not interpreted, so the text itself cannot contain a
// double quote.
func ParseString(s string) (string, error) {
	if len(s) < 2 || s[0] != quote || s[len(s)-1] != quote {
		return "", ErrLiteral.Errorf("string must be enclosed in \"\": %s", s)
	}

	body := s[1 : len(s)-1]
	if strings.IndexByte(body, quote) >= 0 {
		return "", ErrLiteral.Errorf("string contains a quote: %s", s)
	}

	return body, nil
}

// ParseInt parses a base-10 signed integer. The whole of s must be consumed.
func ParseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, ErrLiteral.Wrap(err)
	}

	return int(n), nil
}

// floatLiteral reports whether s is spelled as a decimal number or as one of
// "inf", "+inf", "-inf" and "nan". Other spellings strconv accepts, such as
// "Infinity", "NaN" or hexadecimal mantissas, are rejected.
func floatLiteral(s string) bool {
	switch s {
	case "inf", "+inf", "-inf", "nan":
		return true
	default:
		return s != "" && strings.Trim(s, "0123456789+-.eE") == ""
	}
}

// ParseFloat parses a single-precision floating-point number, including
// "inf", "-inf" and "nan".
func ParseFloat(s string) (float32, error) {
	if !floatLiteral(s) {
		return 0, ErrLiteral.Errorf("invalid float literal: %s", s)
	}

	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, ErrLiteral.Wrap(err)
	}

	return float32(f), nil
}

// ParseDouble parses a double-precision floating-point number, including
// "inf", "-inf" and "nan".
func ParseDouble(s string) (float64, error) {
	if !floatLiteral(s) {
		return 0, ErrLiteral.Errorf("invalid double literal: %s", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrLiteral.Wrap(err)
	}

	return f, nil
}

// ParseBool accepts exactly "true" or "false".
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrLiteral.Errorf("invalid boolean: %s", s)
	}
}

// vectorBody strips the enclosing brackets of a vector expression.
func vectorBody(s string) (string, error) {
	if len(s) < 2 || s[0] != vectorOpen || s[len(s)-1] != vectorClose {
		return "", ErrLiteral.Errorf("vector must be enclosed in []: %s", s)
	}

	return s[1 : len(s)-1], nil
}

// splitVector breaks a non-string vector expression into its elements.
// Elements are trimmed and must be non-empty without inner whitespace.
func splitVector(s string) ([]string, error) {
	body, err := vectorBody(s)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return []string{}, nil
	}

	elems := strings.Split(body, string(separator))
	for i, elem := range elems {
		elem = strings.TrimSpace(elem)

		if elem == "" {
			return nil, ErrLiteral.Errorf("empty vector element %d: %s", i, s)
		}

		if strings.IndexFunc(elem, func(r rune) bool {
			return r < 0x80 && isSpace(byte(r))
		}) >= 0 {
			return nil, ErrLiteral.Errorf("whitespace in vector element %q", elem)
		}

		elems[i] = elem
	}

	return elems, nil
}

// splitStringVector breaks a string vector expression into its quoted
// elements, quotes included. Between elements only whitespace and a single
// comma are allowed.
func splitStringVector(s string) ([]string, error) {
	body, err := vectorBody(s)
	if err != nil {
		return nil, err
	}

	const (
		expectValue = iota
		inValue
		expectComma
	)

	var (
		elems = []string{}
		state = expectValue
		start int
	)

	for i := range len(body) {
		c := body[i]

		switch state {
		case expectValue:
			switch {
			case c == quote:
				state, start = inValue, i
			case !isSpace(c):
				return nil, ErrLiteral.Errorf("expected string at %q", body[i:])
			}

		case inValue:
			if c == quote {
				elems = append(elems, body[start:i+1])
				state = expectComma
			}

		case expectComma:
			switch {
			case c == separator:
				state = expectValue
			case !isSpace(c):
				return nil, ErrLiteral.Errorf("expected %q at %q", separator, body[i:])
			}
		}
	}

	switch {
	case state == inValue:
		return nil, ErrLiteral.Errorf("unterminated string: %s", body[start:])
	case state == expectValue && len(elems) > 0:
		return nil, ErrLiteral.Errorf("trailing %q in %s", separator, s)
	}

	return elems, nil
}

// parseVector applies parse to every element of a vector expression.
// The first failing element fails the whole vector.
func parseVector[T any](
	s string,
	split func(string) ([]string, error),
	parse func(string) (T, error),
) ([]T, error) {
	elems, err := split(s)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(elems))

	for _, elem := range elems {
		v, err := parse(elem)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// ParseStringVector parses a vector of quoted strings such as ["a", "b"].
func ParseStringVector(s string) ([]string, error) {
	return parseVector(s, splitStringVector, ParseString)
}

// ParseIntVector parses a vector of integers such as [1, -2, 3].
func ParseIntVector(s string) ([]int, error) {
	return parseVector(s, splitVector, ParseInt)
}

// ParseFloatVector parses a vector of single-precision numbers.
func ParseFloatVector(s string) ([]float32, error) {
	return parseVector(s, splitVector, ParseFloat)
}

// ParseDoubleVector parses a vector of double-precision numbers.
func ParseDoubleVector(s string) ([]float64, error) {
	return parseVector(s, splitVector, ParseDouble)
}

// ParseBoolVector parses a vector of booleans such as [true, false].
func ParseBoolVector(s string) ([]bool, error) {
	return parseVector(s, splitVector, ParseBool)
}

// ParseValue parses expr as a value of type t, or a vector of t when vector is
// set. The dynamic type of the result is one of string, int, float32,
// float64, bool or a slice of one of these.
func ParseValue(t Type, vector bool, expr string) (any, error) {
	if vector {
		switch t {
		case TypeString:
			return ParseStringVector(expr)
		case TypeInt:
			return ParseIntVector(expr)
		case TypeFloat:
			return ParseFloatVector(expr)
		case TypeDouble:
			return ParseDoubleVector(expr)
		case TypeBool:
			return ParseBoolVector(expr)
		}
	} else {
		switch t {
		case TypeString:
			return ParseString(expr)
		case TypeInt:
			return ParseInt(expr)
		case TypeFloat:
			return ParseFloat(expr)
		case TypeDouble:
			return ParseDouble(expr)
		case TypeBool:
			return ParseBool(expr)
		}
	}

	return nil, ErrInvalidType.Errorf("invalid type: %s", t)
}

// Value decodes the expression of v. See [ParseValue].
func (v Variable) Value() (any, error) {
	return ParseValue(v.Type, v.Vector, v.Expr)
}
