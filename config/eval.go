package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// envFuncName is bound to [os.Getenv] in every expression environment
// unless a variable of the same name is declared.
const envFuncName = "env"

// Env returns the expression environment: every decoded variable bound by
// its name, plus the env function for reading the process environment.
func (p *Parser) Env() map[string]any {
	env := p.ToMap()
	if _, ok := env[envFuncName]; !ok {
		env[envFuncName] = os.Getenv
	}

	return env
}

// Compile compiles an expr-lang expression against the names declared in
// the table. The program can be run repeatedly with [expr.Run] and the
// result of [Parser.Env].
func (p *Parser) Compile(src string) (*vm.Program, error) {
	return compile(src, p.Env())
}

// Eval compiles and runs an expr-lang expression with every decoded
// variable in scope:
//
//	p := config.NewFromString(ctx, "inline", `int[] ports = [80, 443];`)
//	v, err := p.Eval(`len(ports) > 1 ? ports[1] : 0`) // 443
func (p *Parser) Eval(src string) (any, error) {
	env := p.Env()

	program, err := compile(src, env)
	if err != nil {
		return nil, err
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrEval.Wrap(err).With(slog.String("expr", src))
	}

	return out, nil
}

func compile(src string, env map[string]any) (*vm.Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEval.Errorf("empty expression")
	}

	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, ErrEval.Wrap(err).With(slog.String("expr", src))
	}

	return program, nil
}
