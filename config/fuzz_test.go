package config

import (
	"bytes"
	"context"
	"testing"
)

// FuzzNewFromString checks that arbitrary input never panics and that
// normalization is idempotent.
func FuzzNewFromString(f *testing.F) {
	f.Add(sample)
	f.Add(formatSample)
	f.Add(`string s = "a#b"; # c`)
	f.Add("int[] v = [1,\n2];")
	f.Add(`string[] s = ["a", "b"`)
	f.Add(`"`)
	f.Add("int")
	f.Add(";;;")

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panicked on input %q: %v", input, r)
			}
		}()

		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent: %q -> %q -> %q", input, once, twice)
		}

		p := NewFromString(context.Background(), "fuzz", input)
		if p.ErrorCount() > 1 {
			t.Errorf("parse recorded %d errors, want at most 1", p.ErrorCount())
		}

		// Every stored expression must decode.
		for _, name := range p.Names() {
			v, _ := p.Lookup(name)
			if _, err := v.Value(); err != nil {
				t.Errorf("stored %s = %q does not decode: %v", name, v.Expr, err)
			}
		}

		// Formatting must reproduce the same names.
		var buf bytes.Buffer
		if err := p.Format(context.Background(), &buf); err != nil {
			t.Fatal(err)
		}

		q := NewFromString(context.Background(), "fuzz", buf.String())
		if q.Len() != p.Len() || q.ErrorCount() != 0 {
			t.Errorf("reformatted input differs: %d/%d vars, errors %q\n%s",
				q.Len(), p.Len(), q.ErrorString(), buf.String())
		}
	})
}
