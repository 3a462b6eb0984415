// Package intrusive compiles JavaScript written with the intrusive syntax
// extensions (soak markers, postfix If/Unless, the IfUnset macro and the
// dot-underscore member) into plain JavaScript.
//
//	out, err := intrusive.Compile(src)
//
// Compiled code expects the runtime globals __soakNoop and
// global._getUnderscore; package soak implements them for Go hosts and
// package evaluator installs them for scripts it runs.
package intrusive

import (
	"errors"
	"fmt"

	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/transform"
	"github.com/fieldbook/intrusive/transform/dotunderscore"
	"github.com/fieldbook/intrusive/transform/ifunset"
	"github.com/fieldbook/intrusive/transform/postfixif"
	soakpass "github.com/fieldbook/intrusive/transform/soak"
)

// Pass names accepted by Compile.
const (
	Soak          = soakpass.Name
	PostfixIf     = postfixif.Name
	IfUnset       = ifunset.Name
	DotUnderscore = dotunderscore.Name
)

// Passes holds every pass, in the order Compile runs them by default.
var Passes = transform.NewRegistry(
	soakpass.Pass(),
	postfixif.Pass(),
	ifunset.Pass(),
	dotunderscore.Pass(),
)

// Error is a syntax or construction error with its source position.
type Error struct {
	Position parser.Position
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Position, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Compile transforms src with the named passes, or with all passes when
// none are named, and returns the generated source.
func Compile(src string, names ...string) (string, error) {
	return CompileWith(Passes, src, names...)
}

// CompileWith is Compile with passes looked up in r.
func CompileWith(r *transform.Registry, src string, names ...string) (string, error) {
	passes, err := r.Select(names...)
	if err != nil {
		return "", err
	}

	file := parser.NewFile(src)
	program, err := parser.ParseFile(src)
	if err != nil {
		var list []error
		for _, pe := range parser.Errors(err) {
			list = append(list, &Error{Position: file.Position(pe.Idx), Err: pe})
		}
		if len(list) == 0 {
			return "", err
		}
		return "", errors.Join(list...)
	}

	if err := transform.Run(program, passes...); err != nil {
		var te *transform.Error
		if errors.As(err, &te) {
			return "", &Error{Position: file.Position(te.Idx0), Err: te}
		}
		return "", err
	}
	return generator.Generate(program), nil
}
