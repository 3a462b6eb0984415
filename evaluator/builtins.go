package evaluator

import (
	"math"

	"github.com/fieldbook/intrusive/soak"
)

// install defines the globals: error constructors and the runtime the
// transforms reference (global._getUnderscore, __soakNoop and _).
func (in *Interpreter) install() {
	g := in.global
	g.declare("undefined", Undefined{})
	g.declare("NaN", math.NaN())
	g.declare("Infinity", math.Inf(1))

	in.ctors = make(map[string]*Function)
	for _, name := range []string{"Error", "TypeError", "ReferenceError"} {
		in.ctors[name] = in.errorConstructor(name)
		g.declare(name, in.ctors[name])
	}

	global := NewObject()
	global.Set("_getUnderscore", Native("_getUnderscore", func(_ any, args []any) (any, error) {
		return fromGo(soak.GetUnderscore(arg(args, 0))), nil
	}))
	g.declare("global", global)
	g.declare("__soakNoop", Native("__soakNoop", soak.Noop.Call))
	g.declare("_", underscore())
}

func (in *Interpreter) errorConstructor(name string) *Function {
	f := &Function{Name: name}
	create := func(args []any) (any, error) {
		message := ""
		if m := arg(args, 0); !soak.IsAbsent(m) {
			message = toString(m)
		}
		return newError(f, name, message), nil
	}
	f.native = func(_ any, args []any) (any, error) { return create(args) }
	f.construct = create
	return f
}

// underscore is the `_` global: called with a value it wraps it; its
// soak, soakApply, soakCall, pluckSoak and filterSoak members take the
// target as their first argument.
func underscore() *Function {
	f := Native("_", func(_ any, args []any) (any, error) {
		return soak.Wrap(arg(args, 0)), nil
	})
	static := func(name string, fn func(obj any, path any, args []any) (any, error)) {
		f.Set(name, Native(name, func(_ any, args []any) (any, error) {
			v, err := fn(arg(args, 0), arg(args, 1), rest(args, 2))
			return fromGo(v), err
		}))
	}
	static("soak", func(obj, path any, args []any) (any, error) {
		return soak.Soak(obj, path, args...)
	})
	static("soakApply", func(obj, path any, args []any) (any, error) {
		list, _ := arg(args, 0).(soak.Lister)
		if list == nil {
			return soak.Apply(obj, path, nil)
		}
		return soak.Apply(obj, path, list.List())
	})
	static("soakCall", func(obj, path any, args []any) (any, error) {
		return soak.Call(obj, path, args...)
	})
	static("pluckSoak", func(list, path any, args []any) (any, error) {
		return soak.Pluck(list, path, args...)
	})
	static("filterSoak", func(list, path any, args []any) (any, error) {
		return soak.Filter(list, path, args...)
	})
	return f
}
