package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Error kinds. Every error recorded by a [Parser] matches exactly one of
// these with [errors.Is]. [ErrEval] is only returned, never recorded.
var (
	ErrOpenFile     = NewError("cannot open file")
	ErrReadInput    = NewError("cannot read input")
	ErrInvalidType  = NewError("invalid type")
	ErrRedefinition = NewError("redefinition")
	ErrSyntax       = NewError("syntax error")
	ErrLiteral      = NewError("invalid literal")
	ErrLookup       = NewError("variable not found")
	ErrEval         = NewError("evaluation failed")
)

// Error is an error with an optional kind, wrapped cause and structured
// logging attributes. It implements both error and [slog.LogValuer].
type Error struct {
	msg   string
	kind  *Error
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
//
//	"<msg>: <err>" when both are set
//	"<msg>"        when there is no wrapped error
//	"<err>"        when the message is empty
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is e or the kind e was created from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || (e.kind != nil && t == e.kind)
}

// Kind returns the sentinel e was derived from, or e itself for a sentinel.
func (e *Error) Kind() *Error {
	if e.kind != nil {
		return e.kind
	}

	return e
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.kind != nil && e.kind != e && e.kind.msg != "" {
		attrs = append(attrs, slog.String("kind", e.kind.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Errorf creates a new Error of the same kind as e with a formatted message.
// Attributes of e are carried over.
func (e *Error) Errorf(format string, args ...any) *Error {
	return &Error{
		msg:   fmt.Sprintf(format, args...),
		kind:  e.Kind(),
		attrs: e.attrs,
	}
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		kind:  e.Kind(),
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		kind:  e.Kind(),
		err:   e.err,
		attrs: newAttrs,
	}
}
