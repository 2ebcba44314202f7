package config

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
)

func TestAccessors_RoundTrip(t *testing.T) {
	p := parse(t, `
		string   s  = "hello world";
		int      i  = -42;
		float    f  = 1.25;
		double   d  = 2.5e-3;
		bool     b  = true;
		string[] sv = ["x", "y z"];
		int[]    iv = [1, 2, 3];
		float[]  fv = [0.5, inf];
		double[] dv = [-inf, 4];
		bool[]   bv = [false, true];
		int[]    e  = [];
	`)

	if p.ErrorCount() != 0 {
		t.Fatalf("unexpected errors:\n%s", p.ErrorString())
	}

	if got := p.GetStringValue("s"); got != "hello world" {
		t.Errorf("s = %q", got)
	}

	if got := p.GetIntValue("i"); got != -42 {
		t.Errorf("i = %d", got)
	}

	if got := p.GetFloatValue("f"); got != 1.25 {
		t.Errorf("f = %v", got)
	}

	if got := p.GetDoubleValue("d"); got != 2.5e-3 {
		t.Errorf("d = %v", got)
	}

	if got := p.GetBoolValue("b"); !got {
		t.Errorf("b = %v", got)
	}

	if got := p.GetStringVector("sv"); !slices.Equal(got, []string{"x", "y z"}) {
		t.Errorf("sv = %q", got)
	}

	if got := p.GetIntVector("iv"); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("iv = %v", got)
	}

	if got := p.GetFloatVector("fv"); len(got) != 2 || got[0] != 0.5 || !math.IsInf(float64(got[1]), 1) {
		t.Errorf("fv = %v", got)
	}

	if got := p.GetDoubleVector("dv"); len(got) != 2 || !math.IsInf(got[0], -1) || got[1] != 4 {
		t.Errorf("dv = %v", got)
	}

	if got := p.GetBoolVector("bv"); !slices.Equal(got, []bool{false, true}) {
		t.Errorf("bv = %v", got)
	}

	if got := p.GetIntVector("e"); got == nil || len(got) != 0 {
		t.Errorf("e = %#v, want empty non-nil", got)
	}

	if p.ErrorCount() != 0 {
		t.Errorf("accessors recorded errors:\n%s", p.ErrorString())
	}
}

func TestAccessors_Mismatch(t *testing.T) {
	p := parse(t, `int x = 3; string[] names = ["a"];`)

	tests := []struct {
		name    string
		call    func() any
		zero    any
		message string
	}{
		{"arity", func() any { return p.GetIntVector("x") }, "[]", "didn't find variable x of type int[]"},
		{"type", func() any { return p.GetDoubleValue("x") }, "0", "didn't find variable x of type double"},
		{"absent string", func() any { return p.GetStringValue("nope") }, `""`, "didn't find variable nope of type string"},
		{"absent bool", func() any { return p.GetBoolValue("nope") }, "false", "didn't find variable nope of type bool"},
		{"scalar of vector", func() any { return p.GetStringValue("names") }, `""`, "didn't find variable names of type string"},
		{"float", func() any { return p.GetFloatValue("x") }, "0", "didn't find variable x of type float"},
		{"string vector", func() any { return p.GetStringVector("x") }, "[]", "didn't find variable x of type string[]"},
		{"float vector", func() any { return p.GetFloatVector("x") }, "[]", "didn't find variable x of type float[]"},
		{"double vector", func() any { return p.GetDoubleVector("x") }, "[]", "didn't find variable x of type double[]"},
		{"bool vector", func() any { return p.GetBoolVector("x") }, "[]", "didn't find variable x of type bool[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := p.ErrorCount()

			got := tt.call()
			if FormatValue(got) != tt.zero {
				t.Errorf("returned %#v, want zero value %s", got, tt.zero)
			}

			if p.ErrorCount() != before+1 {
				t.Fatalf("ErrorCount() = %d, want %d", p.ErrorCount(), before+1)
			}

			errs := p.Errors()

			last := errs[len(errs)-1]
			if last.Error() != tt.message {
				t.Errorf("error = %q, want %q", last.Error(), tt.message)
			}

			if !errors.Is(last, ErrLookup) {
				t.Errorf("error %v is not ErrLookup", last)
			}
		})
	}

	// Lookup errors never abort: the table is intact.
	if got := p.GetIntValue("x"); got != 3 {
		t.Errorf("x = %d, want 3", got)
	}
}

func TestAccessors_VectorsNeverNil(t *testing.T) {
	p := parse(t, "")

	if p.GetStringVector("a") == nil || p.GetIntVector("a") == nil ||
		p.GetFloatVector("a") == nil || p.GetDoubleVector("a") == nil ||
		p.GetBoolVector("a") == nil {
		t.Error("a vector accessor returned nil")
	}
}

func TestAccessors_CorruptTable(t *testing.T) {
	p := parse(t, "")
	p.insert("bad", Variable{Type: TypeInt, Expr: "not a number"})
	p.insert("badv", Variable{Type: TypeBool, Vector: true, Expr: "[yes]"})

	if got := p.GetIntValue("bad"); got != 0 {
		t.Errorf("bad = %d, want 0", got)
	}

	if got := p.GetBoolVector("badv"); got == nil || len(got) != 0 {
		t.Errorf("badv = %#v, want empty", got)
	}

	if p.ErrorCount() != 0 {
		t.Errorf("decode failures must not be recorded: %s", p.ErrorString())
	}
}

func TestGet(t *testing.T) {
	p := parse(t, `double[] d = [1, 2]; bool b = true;`)

	if v, ok := p.Get("d", ""); !ok || FormatValue(v) != "[1, 2]" {
		t.Errorf(`Get("d", "") = %v, %v`, v, ok)
	}

	if v, ok := p.Get("b", "bool"); !ok || v != true {
		t.Errorf(`Get("b", "bool") = %v, %v`, v, ok)
	}

	if _, ok := p.Get("b", "int"); ok {
		t.Error(`Get("b", "int") succeeded`)
	}

	if _, ok := p.Get("b", "nonsense"); ok {
		t.Error(`Get("b", "nonsense") succeeded`)
	}

	if _, ok := p.Get("missing", ""); ok {
		t.Error(`Get("missing", "") succeeded`)
	}

	want := "didn't find variable b of type int\n" +
		"didn't find variable b of type nonsense\n" +
		"didn't find variable missing of type any"
	if got := p.ErrorString(); got != want {
		t.Errorf("ErrorString() =\n%s\nwant\n%s", got, want)
	}
}

func TestAccessors_Concurrent(t *testing.T) {
	p := parse(t, "int x = 1;")

	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_ = p.GetIntValue("x")
			_ = p.GetIntValue("missing")
			_ = p.ErrorString()
		}()
	}

	wg.Wait()

	if p.ErrorCount() != 32 {
		t.Errorf("ErrorCount() = %d, want 32", p.ErrorCount())
	}
}
