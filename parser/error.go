package parser

import (
	"errors"
	"fmt"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// Error is a syntax error at a source index.
type Error struct {
	Idx     ast.Idx
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errors returns the individual syntax errors held by err, as returned by
// ParseFile.
func Errors(err error) []*Error {
	var list []*Error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			list = append(list, Errors(e)...)
		}
		return list
	}
	var pe *Error
	if errors.As(err, &pe) {
		list = append(list, pe)
	}
	return list
}

func (p *parser) errorf(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorAt(idx ast.Idx, msg string, msgValues ...any) error {
	err := &Error{
		Idx:     idx,
		Message: fmt.Sprintf(msg, msgValues...),
	}
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Keyword:
		return p.errorf("Unexpected reserved word")
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	case token.Illegal:
		// Already reported by the scanner.
		return nil
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}
