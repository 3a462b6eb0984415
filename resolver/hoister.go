package resolver

import (
	"github.com/fieldbook/intrusive/ast"
)

// Declarations lists the bindings a function body creates before any of
// its statements run.
type Declarations struct {
	// Vars holds `var` (and `let`/`const`) names in source order, without
	// duplicates.
	Vars []string
	// Functions holds function declarations in source order. A later
	// declaration of the same name wins when they are bound.
	Functions []*ast.FunctionDeclaration
}

type Hoister struct {
	ast.NoopVisitor

	decls *Declarations
	seen  map[string]struct{}
}

// Hoist collects the declarations of body without descending into nested
// functions.
func Hoist(body ast.Statements) *Declarations {
	h := &Hoister{
		decls: &Declarations{},
		seen:  make(map[string]struct{}),
	}
	h.V = h
	body.VisitWith(h)
	return h.decls
}

func (h *Hoister) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	if _, ok := h.seen[n.Target.Name]; ok {
		return
	}
	h.seen[n.Target.Name] = struct{}{}
	h.decls.Vars = append(h.decls.Vars, n.Target.Name)
}

func (h *Hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	h.decls.Functions = append(h.decls.Functions, n)
}

func (h *Hoister) VisitExpression(n *ast.Expression)           {}
func (h *Hoister) VisitFunctionLiteral(n *ast.FunctionLiteral) {}
