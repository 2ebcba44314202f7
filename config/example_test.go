package config_test

import (
	"context"
	"fmt"
	"os"

	"github.com/ardnew/typecfg/config"
)

func Example() {
	src := `
		string   host  = "localhost";
		int      port  = 8080;
		double[] gains = [0.5, -inf];   # vectors may span lines
	`

	p := config.NewFromString(context.Background(), "app.cfg", src)

	fmt.Println(p.GetStringValue("host"), p.GetIntValue("port"))
	fmt.Println(p.GetDoubleVector("gains"))
	fmt.Println(p.GetBoolValue("debug"))
	fmt.Println(p.ErrorString())
	// Output:
	// localhost 8080
	// [0.5 -Inf]
	// false
	// didn't find variable debug of type bool
}

func ExampleParser_PrintVariableMap() {
	p := config.NewFromString(context.Background(), "app.cfg",
		`int x = 1; string[] s = ["a", "b"];`)

	_ = p.PrintVariableMap(os.Stdout)
	// Output:
	// Variable Map:
	// 	x --> <int> : 1
	// 	s --> <string[]> : ["a", "b"]
}

func ExampleNewFromString_errors() {
	p := config.NewFromString(context.Background(), "app.cfg",
		"int a = 1;\nint b = two;\nint c = 3;")

	fmt.Println(p.Names())
	fmt.Println(p.ErrorString())
	// Output:
	// [a]
	// Parsing error in file app.cfg, declaration 2: could not parse `two` as type int
}
