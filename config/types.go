package config

import (
	"iter"
	"strings"
)

// Type identifies the element type of a declared variable.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
	TypeDouble
	TypeBool
)

// vectorSuffix marks a vector type in a type token, as in "int[]".
const vectorSuffix = "[]"

var typeName = [...]string{
	TypeString: "string",
	TypeInt:    "int",
	TypeFloat:  "float",
	TypeDouble: "double",
	TypeBool:   "bool",
}

var typeByName = map[string]Type{
	"string": TypeString,
	"int":    TypeInt,
	"float":  TypeFloat,
	"double": TypeDouble,
	"bool":   TypeBool,
}

// String returns the keyword used to declare t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeName) {
		return "unknown"
	}

	return typeName[t]
}

// Types returns an iterator over the declarable type keywords.
func Types() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range typeName {
			if !yield(name) {
				return
			}
		}
	}
}

// ParseType maps a type keyword to its [Type].
func ParseType(s string) (Type, bool) {
	t, ok := typeByName[s]

	return t, ok
}

// ParseTypeToken splits a type token such as "double[]" into its element type
// and arity.
func ParseTypeToken(tok string) (t Type, vector bool, ok bool) {
	name, vector := strings.CutSuffix(tok, vectorSuffix)
	t, ok = ParseType(name)

	return t, vector, ok
}

// typeString renders a type with its arity the way declarations spell it.
func typeString(t Type, vector bool) string {
	if vector {
		return t.String() + vectorSuffix
	}

	return t.String()
}

// Variable is one entry of the variable table.
// Expr is the raw expression text as written in the source, already validated
// against Type and Vector.
type Variable struct {
	Type   Type
	Vector bool
	Expr   string
}

// TypeString returns the declared type of v, including the vector suffix.
func (v Variable) TypeString() string {
	return typeString(v.Type, v.Vector)
}

// declaration renders v as it would be declared, without the terminator.
func (v Variable) declaration(name string) string {
	return v.TypeString() + " " + name + " = " + v.Expr
}
