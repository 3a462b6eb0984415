package generator

import (
	"strings"

	"github.com/fieldbook/intrusive/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int

	// lead is the expression that begins the current expression
	// statement. It is parenthesized when it would otherwise be read as a
	// declaration or a block.
	lead ast.Expr

	// noIn is set inside the head of a for statement.
	noIn bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		lead:   s.lead,
		noIn:   s.noIn,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

// expr writes e, parenthesized when its precedence is below min.
func (s *state) expr(e *ast.Expression, min int) {
	if e == nil || e.Expr == nil {
		return
	}
	if precedence(e.Expr) < min {
		s.out.WriteString("(")
		inner := s.wrap(e.Expr)
		inner.noIn = false
		gen(inner)
		s.out.WriteString(")")
		return
	}
	gen(s.wrap(e.Expr))
}

// list writes a comma separated list of assignment expressions.
func (s *state) list(list ast.Expressions) {
	for i := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.expr(&list[i], precAssign)
	}
}

// body writes a statement nested under if/else/while, bracing it unless it
// already is a block.
func (s *state) body(st *ast.Statement) {
	if _, ok := st.Stmt.(*ast.BlockStatement); ok {
		gen(s.wrap(st.Stmt))
		return
	}
	s.out.WriteString("{")
	s.indent++
	s.lineAndPad()
	gen(s.wrap(st.Stmt))
	s.indent--
	s.lineAndPad()
	s.out.WriteString("}")
}
