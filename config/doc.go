// Package config reads typed configuration files.
//
// A configuration file is a sequence of declarations, each terminated by a
// semicolon:
//
//	# comments run to the end of the line
//	string   host    = "example.com";
//	int      port    = 8080;
//	double   ratio   = 0.75;
//	bool     verbose = false;
//	float[]  weights = [0.5, 1.5,
//	                    -inf];
//	string[] tags    = ["a", "b c"];
//
// The declarable types are string, int, float, double and bool. Appending
// "[]" to a type declares a vector of that type. Whitespace is insignificant
// outside string literals, so a vector may span several lines. String
// literals are taken verbatim and cannot contain a double quote. Floating
// point literals are decimal; the only special spellings are inf, -inf and
// nan.
//
// Construction never fails outright. [New], [NewFromReader] and
// [NewFromString] always return a [*Parser]; problems are recorded on it and
// reported by [Parser.ErrorCount], [Parser.ErrorString] and [Parser.Err].
// Parsing stops at the first malformed declaration, keeping everything
// declared before it.
//
// The typed accessors ([Parser.GetIntValue], [Parser.GetStringVector], ...)
// return the zero value and record an error when the variable is missing or
// was declared with a different type or arity:
//
//	p := config.New(ctx, "app.cfg")
//	port := p.GetIntValue("port")
//	tags := p.GetStringVector("tags")
//	if p.ErrorCount() > 0 {
//		return p.Err()
//	}
package config
