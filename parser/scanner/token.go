package scanner

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

type Token struct {
	Kind token.Token

	OnNewLine bool

	// Value is the identifier name, the decoded string value or the
	// number spelling.
	Value string

	Idx0, Idx1 ast.Idx
}

// Raw returns the source text of the token.
func (t Token) Raw(s *Scanner) string {
	return s.Slice(t.Idx0, t.Idx1)
}
