package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/lkcmdline/cmdline"
)

// filterEnv is the environment a --where expression is evaluated in.
type filterEnv struct {
	Index    int               `expr:"index"`
	Name     string            `expr:"name"`
	Value    string            `expr:"value"`
	HasValue bool              `expr:"has_value"`
	Raw      string            `expr:"raw"`
	Match    func(string) bool `expr:"match"`
}

// filter selects arguments with a compiled boolean expression.
// A nil filter selects everything.
type filter struct {
	src  string
	prog *vm.Program
}

func compileFilter(src string) (*filter, error) {
	if src == "" {
		return nil, nil
	}

	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrCompileFilter.
			With(slog.String("where", src)).
			Wrap(err)
	}

	return &filter{src: src, prog: prog}, nil
}

func (f *filter) match(index int, arg cmdline.Arg) (bool, error) {
	if f == nil {
		return true, nil
	}

	env := filterEnv{
		Index: index,
		Name:  arg.Name().String(),
		Raw:   arg.String(),
		Match: arg.MatchesString,
	}

	if v, ok := arg.Value(); ok {
		env.Value = v.String()
		env.HasValue = true
	}

	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, ErrEvalFilter.
			With(slog.String("where", f.src), slog.Any("arg", arg)).
			Wrap(err)
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, ErrFilterResult.With(slog.String("where", f.src))
	}

	return ok, nil
}
