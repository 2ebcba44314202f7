package config

import (
	"context"
	"log/slog"
)

// notFound records a lookup error for name declared as typ.
func (p *Parser) notFound(name, typ string) {
	p.record(context.TODO(), ErrLookup.
		Errorf("didn't find variable %s of type %s", name, typ).
		With(
			slog.String("file", p.name),
			slog.String("name", name),
			slog.String("type", typ)))
}

// get returns the decoded value of name when it was declared with type t and
// the given arity. Otherwise it records a lookup error and returns zero.
//
// Values are decoded from the stored expression on every call.
func get[T any](
	p *Parser,
	name string,
	t Type,
	vector bool,
	decode func(string) (T, error),
	zero T,
) T {
	v, ok := p.vars[name]
	if !ok || v.Type != t || v.Vector != vector {
		p.notFound(name, typeString(t, vector))

		return zero
	}

	val, err := decode(v.Expr)
	if err != nil {
		return zero
	}

	return val
}

// GetStringValue returns the string variable name, or "" if there is none.
func (p *Parser) GetStringValue(name string) string {
	return get(p, name, TypeString, false, ParseString, "")
}

// GetIntValue returns the int variable name, or 0 if there is none.
func (p *Parser) GetIntValue(name string) int {
	return get(p, name, TypeInt, false, ParseInt, 0)
}

// GetFloatValue returns the float variable name, or 0 if there is none.
func (p *Parser) GetFloatValue(name string) float32 {
	return get(p, name, TypeFloat, false, ParseFloat, 0)
}

// GetDoubleValue returns the double variable name, or 0 if there is none.
func (p *Parser) GetDoubleValue(name string) float64 {
	return get(p, name, TypeDouble, false, ParseDouble, 0)
}

// GetBoolValue returns the bool variable name, or false if there is none.
func (p *Parser) GetBoolValue(name string) bool {
	return get(p, name, TypeBool, false, ParseBool, false)
}

// GetStringVector returns the string[] variable name, or an empty slice.
func (p *Parser) GetStringVector(name string) []string {
	return get(p, name, TypeString, true, ParseStringVector, []string{})
}

// GetIntVector returns the int[] variable name, or an empty slice.
func (p *Parser) GetIntVector(name string) []int {
	return get(p, name, TypeInt, true, ParseIntVector, []int{})
}

// GetFloatVector returns the float[] variable name, or an empty slice.
func (p *Parser) GetFloatVector(name string) []float32 {
	return get(p, name, TypeFloat, true, ParseFloatVector, []float32{})
}

// GetDoubleVector returns the double[] variable name, or an empty slice.
func (p *Parser) GetDoubleVector(name string) []float64 {
	return get(p, name, TypeDouble, true, ParseDoubleVector, []float64{})
}

// GetBoolVector returns the bool[] variable name, or an empty slice.
func (p *Parser) GetBoolVector(name string) []bool {
	return get(p, name, TypeBool, true, ParseBoolVector, []bool{})
}

// Get returns the decoded value of name when it was declared as typ, a type
// token such as "int" or "string[]". An empty typ accepts whatever type name
// was declared with. A mismatch records the same lookup error as the typed
// accessors.
func (p *Parser) Get(name, typ string) (any, bool) {
	v, ok := p.vars[name]

	if typ == "" {
		if !ok {
			p.notFound(name, "any")

			return nil, false
		}

		typ = v.TypeString()
	}

	t, vector, valid := ParseTypeToken(typ)
	if !valid || !ok || v.Type != t || v.Vector != vector {
		p.notFound(name, typ)

		return nil, false
	}

	val, err := v.Value()

	return val, err == nil
}
