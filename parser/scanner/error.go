package scanner

import (
	"fmt"

	"github.com/fieldbook/intrusive/ast"
)

type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d *Error) Error() string {
	return d.Message
}

func invalidCharacter(c rune, start, end ast.Idx) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid character `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) *Error {
	return &Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedComment(start, end ast.Idx) *Error {
	return &Error{
		Message: "Unterminated multi-line comment",
		Start:   start,
		End:     end,
	}
}

func invalidEscape(start, end ast.Idx) *Error {
	return &Error{
		Message: "Invalid escape sequence",
		Start:   start,
		End:     end,
	}
}
