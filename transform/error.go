package transform

import (
	"errors"

	"github.com/fieldbook/intrusive/ast"
)

// Error is raised by a pass that cannot rewrite a construct. It aborts
// the whole compilation unit.
type Error struct {
	Pass    string
	Message string

	// Idx0 and Idx1 delimit the offending construct.
	Idx0, Idx1 ast.Idx
}

func (e *Error) Error() string {
	if e.Pass == "" {
		return e.Message
	}
	return e.Pass + ": " + e.Message
}

// withPass attributes err to the named pass. Errors that are not
// construction errors are wrapped so their position stays unknown but the
// pass is still reported.
func withPass(err error, pass string) error {
	var e *Error
	if errors.As(err, &e) {
		if e.Pass == "" {
			e.Pass = pass
		}
		return e
	}
	return &Error{Pass: pass, Message: err.Error()}
}
