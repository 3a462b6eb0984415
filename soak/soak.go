package soak

import (
	"fmt"
	"reflect"
)

// Soak resolves path against obj. Trailing args, when given, are passed
// to the resolved function.
func Soak(obj, path any, args ...any) (any, error) {
	if IsAbsent(obj) {
		return obj, nil
	}
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Run(obj, args, false)
}

// Apply resolves path against obj and calls the result with args, unless
// resolution stopped at an absent value.
func Apply(obj, path any, args []any) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Run(obj, args, true)
}

// Call is Apply with the arguments listed inline.
func Call(obj, path any, args ...any) (any, error) {
	return Apply(obj, path, args)
}

// Soaker returns a function soaking path on its argument.
//
//	area, _ := soak.Soaker("size.area()")
//	v, err := area(shape)
func Soaker(path any, args ...any) (func(obj any) (any, error), error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return func(obj any) (any, error) {
		return p.Run(obj, args, false)
	}, nil
}

// Pluck soaks path on every element of list.
func Pluck(list, path any, args ...any) ([]any, error) {
	items, err := elements(list)
	if err != nil {
		return nil, err
	}
	fn, err := Soaker(path, args...)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i, item := range items {
		if out[i], err = fn(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Filter returns the elements of list for which soaking path gives a
// truthy value.
func Filter(list, path any, args ...any) ([]any, error) {
	items, err := elements(list)
	if err != nil {
		return nil, err
	}
	fn, err := Soaker(path, args...)
	if err != nil {
		return nil, err
	}
	var out []any
	for _, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			out = append(out, item)
		}
	}
	return out, nil
}

func elements(list any) ([]any, error) {
	switch x := list.(type) {
	case []any:
		return x, nil
	case Lister:
		return x.List(), nil
	}
	if IsAbsent(list) {
		return nil, nil
	}
	v := reflect.ValueOf(list)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("soak: %T is not a list", list)
}

// Wrapper exposes the path resolver as methods of a wrapped value. Its
// members are also reachable by name through the Object interface, so
// hosts can hand it to scripts as is.
type Wrapper struct {
	value any
}

func Wrap(obj any) *Wrapper { return &Wrapper{value: obj} }

func (w *Wrapper) Value() any { return w.value }

func (w *Wrapper) Soak(path any, args ...any) (any, error) { return Soak(w.value, path, args...) }

func (w *Wrapper) Apply(path any, args []any) (any, error) { return Apply(w.value, path, args) }

func (w *Wrapper) Call(path any, args ...any) (any, error) { return Apply(w.value, path, args) }

func (w *Wrapper) Pluck(path any, args ...any) ([]any, error) { return Pluck(w.value, path, args...) }

func (w *Wrapper) Filter(path any, args ...any) ([]any, error) {
	return Filter(w.value, path, args...)
}

// Member returns the wrapper methods under their script names: soak,
// soakApply, soakCall, pluckSoak (or pluck), filterSoak (or filter) and
// value.
func (w *Wrapper) Member(name string) any {
	switch name {
	case "soak":
		return Func(func(_ any, args []any) (any, error) {
			path, rest := pathArg(args)
			return w.Soak(path, rest...)
		})
	case "soakApply":
		return Func(func(_ any, args []any) (any, error) {
			path, rest := pathArg(args)
			var list []any
			if len(rest) > 0 {
				var err error
				if list, err = elements(rest[0]); err != nil {
					return nil, err
				}
			}
			return w.Apply(path, list)
		})
	case "soakCall":
		return Func(func(_ any, args []any) (any, error) {
			path, rest := pathArg(args)
			return w.Apply(path, rest)
		})
	case "pluckSoak", "pluck":
		return Func(func(_ any, args []any) (any, error) {
			path, rest := pathArg(args)
			return w.Pluck(path, rest...)
		})
	case "filterSoak", "filter":
		return Func(func(_ any, args []any) (any, error) {
			path, rest := pathArg(args)
			return w.Filter(path, rest...)
		})
	case "value":
		return Func(func(any, []any) (any, error) { return w.value, nil })
	}
	return nil
}

func pathArg(args []any) (any, []any) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

// Underscore is the reserved member name GetUnderscore dispatches on.
const Underscore = "_"

// GetUnderscore returns obj's own `_` member when it has one, and a
// Wrapper around obj otherwise.
func GetUnderscore(obj any) any {
	if !IsAbsent(obj) && has(obj, Underscore) {
		return Lookup(obj, Underscore)
	}
	return Wrap(obj)
}
