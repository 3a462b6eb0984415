package evaluator

import (
	"errors"
	"fmt"
)

// Exception is a value thrown by a script and not caught.
type Exception struct {
	Value any
}

func (e *Exception) Error() string {
	if o, ok := e.Value.(*Object); ok && isError(o) {
		return toString(o)
	}
	return "uncaught " + toString(e.Value)
}

// TypeError is raised for operations on values of the wrong type, such as
// calling a non-function or reading a property of undefined.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return "TypeError: " + e.Message }

func typeErrorf(format string, args ...any) error {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// ReferenceError is raised when reading an undeclared binding.
type ReferenceError struct {
	Name string
}

func (e *ReferenceError) Error() string { return "ReferenceError: " + e.Name + " is not defined" }

func isError(o *Object) bool {
	return o.Has("name") && o.Has("message")
}

func newError(ctor *Function, name, message string) *Object {
	o := NewObject()
	o.ctor = ctor
	o.Set("name", name)
	o.Set("message", message)
	return o
}

// thrown converts err into the value a catch clause binds.
func (in *Interpreter) thrown(err error) any {
	var (
		ex *Exception
		te *TypeError
		re *ReferenceError
	)
	switch {
	case errors.As(err, &ex):
		return ex.Value
	case errors.As(err, &te):
		return newError(in.ctors["TypeError"], "TypeError", te.Message)
	case errors.As(err, &re):
		return newError(in.ctors["ReferenceError"], "ReferenceError", re.Name+" is not defined")
	}
	return newError(in.ctors["Error"], "Error", err.Error())
}
