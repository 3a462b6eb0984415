package evaluator

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/soak"
)

// Function is a script function: a closure over a function literal, or a
// native implementation.
type Function struct {
	Name string

	native func(this any, args []any) (any, error)
	// construct, when set, is used by new instead of calling with a fresh
	// object as this.
	construct func(args []any) (any, error)

	lit   *ast.FunctionLiteral
	scope *env
	in    *Interpreter

	props *Object
}

// Native wraps fn as a script function.
func Native(name string, fn func(this any, args []any) (any, error)) *Function {
	return &Function{Name: name, native: fn}
}

func (f *Function) Call(this any, args []any) (any, error) {
	if f.native != nil {
		v, err := f.native(this, args)
		return fromGo(v), err
	}
	converted := make([]any, len(args))
	for i, a := range args {
		converted[i] = fromGo(a)
	}
	args = converted

	scope := newEnv(f.scope, fromGo(this))
	if f.lit.Name != nil {
		scope.declare(f.lit.Name.Name, f)
	}
	scope.declare("arguments", &Array{Values: args})
	for i, p := range f.lit.ParameterList.List {
		scope.declare(p.Name, arg(args, i))
	}
	f.in.hoist(f.lit.Body.List, scope)

	c, err := f.in.execList(f.lit.Body.List, scope)
	if err != nil {
		return nil, err
	}
	if c.kind == completeReturn && c.value != nil {
		return c.value, nil
	}
	return Undefined{}, nil
}

func (f *Function) Member(name string) any {
	if f.props != nil && f.props.Has(name) {
		return f.props.Member(name)
	}
	switch name {
	case "name":
		return f.Name
	case "call":
		return Native("call", func(_ any, args []any) (any, error) {
			return f.Call(arg(args, 0), rest(args, 1))
		})
	case "apply":
		return Native("apply", func(_ any, args []any) (any, error) {
			var list []any
			if l, ok := arg(args, 1).(soak.Lister); ok {
				list = l.List()
			}
			return f.Call(arg(args, 0), list)
		})
	case "bind":
		return Native("bound "+f.Name, func(_ any, args []any) (any, error) {
			this, bound := arg(args, 0), rest(args, 1)
			return f.bound(this, bound), nil
		})
	}
	return Undefined{}
}

func (f *Function) Has(name string) bool {
	return f.props != nil && f.props.Has(name)
}

func (f *Function) Set(name string, v any) {
	if f.props == nil {
		f.props = NewObject()
	}
	f.props.Set(name, v)
}

func (f *Function) bound(this any, bound []any) *Function {
	return Native("bound "+f.Name, func(_ any, args []any) (any, error) {
		return f.Call(this, append(append([]any(nil), bound...), args...))
	})
}

// toFunction adapts host callables so call, apply and bind work on them.
func toFunction(v any) (*Function, bool) {
	switch v := v.(type) {
	case *Function:
		return v, true
	case soak.Callable:
		return Native("", func(this any, args []any) (any, error) {
			r, err := v.Call(this, args)
			return fromGo(r), err
		}), true
	}
	if !soak.IsCallable(v) {
		return nil, false
	}
	return Native("", func(this any, args []any) (any, error) {
		r, err := soak.Invoke(v, this, args...)
		return fromGo(r), err
	}), true
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return Undefined{}
}

func rest(args []any, i int) []any {
	if i < len(args) {
		return args[i:]
	}
	return nil
}
