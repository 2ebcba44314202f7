package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/typecfg/config"
	"github.com/ardnew/typecfg/log"
)

func TestFlagValue(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{"debug", "debug"},
		{true, true},
		{8080, "8080"},
		{float32(0.5), "0.5"},
		{2.25, "2.25"},
		{[]string{"a", "b c"}, "a,b c"},
		{[]int{1, 2, 3}, "1,2,3"},
		{[]float64{0.5, 1}, "0.5,1"},
		{[]bool{true}, "true"},
		{[]int{}, ""},
	}

	for _, tt := range tests {
		if got := flagValue(tt.in); got != tt.want {
			t.Errorf("flagValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

type testFlags struct {
	LogLevel string   `default:"info"`
	Port     int      `default:"1"`
	Ratio    float64  `default:"0"`
	Verbose  bool     `default:"false"`
	Tags     []string `default:"x"`
	Ports    []int
	Name     string `default:"unset"`
}

func parseWithConfig(t *testing.T, src string, args ...string) testFlags {
	t.Helper()

	path := filepath.Join(t.TempDir(), baseConfig)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var flags testFlags

	parser, err := kong.New(&flags,
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Configuration(resolve(context.Background()), path),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse(args); err != nil {
		t.Fatal(err)
	}

	return flags
}

func TestResolve(t *testing.T) {
	flags := parseWithConfig(t, `
# flag defaults
string   log_level = "debug";
int      port      = 8080;
double   ratio     = 0.25;
bool     verbose   = true;
string[] tags      = ["a", "b"];
int[]    ports     = [80, 443];
`)

	if flags.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", flags.LogLevel)
	}

	if flags.Port != 8080 {
		t.Errorf("Port = %d, want 8080", flags.Port)
	}

	if flags.Ratio != 0.25 {
		t.Errorf("Ratio = %v, want 0.25", flags.Ratio)
	}

	if !flags.Verbose {
		t.Error("Verbose = false, want true")
	}

	if !slices.Equal(flags.Tags, []string{"a", "b"}) {
		t.Errorf("Tags = %v, want [a b]", flags.Tags)
	}

	if !slices.Equal(flags.Ports, []int{80, 443}) {
		t.Errorf("Ports = %v, want [80 443]", flags.Ports)
	}

	if flags.Name != "unset" {
		t.Errorf("Name = %q, want the flag default", flags.Name)
	}
}

func TestResolve_CommandLineWins(t *testing.T) {
	flags := parseWithConfig(t, `int port = 8080;`, "--port=9090")

	if flags.Port != 9090 {
		t.Errorf("Port = %d, want 9090", flags.Port)
	}
}

func TestResolve_PartialOnError(t *testing.T) {
	flags := parseWithConfig(t, `int port = 8080; long bad = 1; string name = "late";`)

	if flags.Port != 8080 {
		t.Errorf("Port = %d, want 8080 from before the error", flags.Port)
	}

	if flags.Name != "unset" {
		t.Errorf("Name = %q, want declarations after the error ignored", flags.Name)
	}
}

func TestFlagValues_SkipsUndecodable(t *testing.T) {
	p := config.NewFromString(context.Background(), "t", `int a = 1; string b = "x";`)

	r := flagValues(p)
	if len(r) != 2 || r["a"] != "1" || r["b"] != "x" {
		t.Errorf("flagValues = %v", r)
	}

	v, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "a"}})
	if err != nil || v != "1" {
		t.Errorf("Resolve(a) = %v, %v", v, err)
	}

	v, err = r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "missing"}})
	if err != nil || v != nil {
		t.Errorf("Resolve(missing) = %v, %v", v, err)
	}
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		args   []string
		level  string
		format string
		pretty bool
		caller bool
	}{
		{[]string{"check", "--log-level", "debug"}, "debug", "", true, false},
		{[]string{"--log-level=warn", "--log-format=json"}, "warn", "json", true, false},
		{[]string{"--no-log-pretty", "--log-caller"}, "", "", false, true},
		{[]string{"--log-pretty=false", "--no-log-caller=false"}, "", "", false, true},
		{[]string{"--", "--log-level=error"}, "", "", true, false},
	}

	original := log.Default()
	t.Cleanup(func() { log.SetDefault(original) })

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if string(f.Level) != tt.level || string(f.Format) != tt.format ||
				f.Pretty != tt.pretty || f.Caller != tt.caller {
				t.Errorf("scan(%v) = %+v", tt.args, f)
			}
		})
	}
}
