package soak

import (
	"errors"
	"fmt"
	"reflect"
)

// Callable is implemented by host functions.
type Callable interface {
	Call(this any, args []any) (any, error)
}

// Func adapts a Go function to Callable.
type Func func(this any, args []any) (any, error)

func (f Func) Call(this any, args []any) (any, error) { return f(this, args) }

// Noop is the shared function substituted for absent callees. It ignores
// its arguments and returns nil.
var Noop Callable = Func(func(any, []any) (any, error) { return nil, nil })

var ErrNotCallable = errors.New("not a function")

// NotCallableError is returned when a path that must be called resolves
// to a present value that is not a function.
type NotCallableError struct {
	Path  string
	Value any
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("soak: %s is not a function (%T)", e.Path, e.Value)
}

func (e *NotCallableError) Is(target error) bool { return target == ErrNotCallable }

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// IsCallable reports whether v can be invoked: a Callable or a non-nil Go
// function.
func IsCallable(v any) bool {
	if _, ok := v.(Callable); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Invoke calls fn bound to this with args.
func Invoke(fn, this any, args ...any) (any, error) {
	return invoke(fn, this, args, "")
}

// invoke calls fn bound to this. Go functions are called through
// reflection: missing arguments are zero, extra ones are dropped, and a
// trailing error result is returned as the error.
func invoke(fn, this any, args []any, path string) (any, error) {
	if c, ok := fn.(Callable); ok {
		return c.Call(this, args)
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, &NotCallableError{Path: path, Value: fn}
	}

	t := v.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		a, err := argument(arg, t.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, a)
	}
	if t.IsVariadic() && len(args) > fixed {
		elem := t.In(fixed).Elem()
		for _, arg := range args[fixed:] {
			a, err := argument(arg, elem)
			if err != nil {
				return nil, err
			}
			in = append(in, a)
		}
	}

	out := v.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func argument(arg any, t reflect.Type) (reflect.Value, error) {
	if IsAbsent(arg) {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case isNumber(v.Kind()) && isNumber(t.Kind()):
		return v.Convert(t), nil
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("soak: cannot use %T as %v argument", arg, t)
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
