package config

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"collapse runs", "int  x\t=\n\n 1;", "int x = 1;"},
		{"comment to eol", "int x = 1; # trailing\nint y = 2;", "int x = 1; int y = 2;"},
		{"comment only", "# nothing here", ""},
		{"comment at eof", "int x = 1;#", "int x = 1;"},
		{"hash in quotes", `string s = "a#b"; # c`, `string s = "a#b"; `},
		{"space in quotes kept", "string s = \"a \t  b\";", "string s = \"a \t  b\";"},
		{"unterminated quote", `string s = "abc # def`, `string s = "abc # def`},
		{"quote in comment ignored", "# say \"hi\nint x = 1;", " int x = 1;"},
		{"crlf", "int x = 1;\r\nint y = 2;\r\n", "int x = 1; int y = 2; "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"int  x = 1; # c\n\n string s = \"a  # b\";",
		"   \t\n",
		`string s = "open ; quote`,
		"bool[] b = [ true,\n false ];",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSplitDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only separators", " ; ;; ", nil},
		{"single no terminator", "int x = 1", []string{"int x = 1"}},
		{"trims", " int x = 1 ; int y = 2 ;", []string{"int x = 1", "int y = 2"}},
		{"semicolon in quotes", `string s = "a;b"; int x = 1;`, []string{`string s = "a;b"`, "int x = 1"}},
		{"semicolon in string vector", `string[] v = ["a;", ";b"];`, []string{`string[] v = ["a;", ";b"]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitDeclarations(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("SplitDeclarations(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanner(t *testing.T) {
	s := newScanner(`int[] v = [1, 2]`)

	if tok := s.next(nil); tok != "int[]" {
		t.Fatalf("type token = %q", tok)
	}

	s.skipSpace()

	if tok := s.next(nil); tok != "v" {
		t.Fatalf("name token = %q", tok)
	}

	s.skipSpace()

	if tok := s.next(func(c byte) bool { return c == ' ' }); tok != "=" {
		t.Fatalf("equals token = %q", tok)
	}

	s.skipSpace()

	if c := s.peek(); c != '[' {
		t.Fatalf("peek = %q", c)
	}

	if c := s.last(); c != ']' {
		t.Fatalf("last = %q", c)
	}

	if r := s.rest(); r != "[1, 2]" {
		t.Fatalf("rest = %q", r)
	}

	if !s.done() || s.peek() != 0 || s.next(nil) != "" {
		t.Error("scanner not exhausted after rest")
	}

	if newScanner("").last() != 0 {
		t.Error("last of empty declaration should be 0")
	}
}
