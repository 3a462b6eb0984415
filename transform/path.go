package transform

import (
	"fmt"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/resolver"
)

// Path is a cursor on one node of the tree being transformed. It points
// at the slot holding the node, so replacing through the path rewrites
// the tree in place.
type Path struct {
	Parent *Path

	expr *ast.Expression
	stmt *ast.Statement

	scope *resolver.Scope
	depth int
	w     *walker
}

// Node returns the node currently held by the path.
func (p *Path) Node() ast.Node {
	if p.expr != nil {
		return p.expr.Expr
	}
	return p.stmt.Stmt
}

// ParentNode returns the node of the parent path, or nil at the top level.
func (p *Path) ParentNode() ast.Node {
	if p.Parent == nil {
		return nil
	}
	return p.Parent.Node()
}

// Scope returns the innermost function (or program) scope enclosing the
// node.
func (p *Path) Scope() *resolver.Scope { return p.scope }

// ReplaceWith swaps the node held by the path for node. A statement slot
// given an expression wraps it in an expression statement; an expression
// slot cannot hold a statement and panics.
//
// Replacing the path being visited re-dispatches the new node to every
// handler. Replacing an ancestor abandons the rest of the current subtree
// and resumes the walk at that ancestor.
func (p *Path) ReplaceWith(node ast.Node) {
	if p.expr != nil {
		e, ok := node.(ast.Expr)
		if !ok {
			panic(fmt.Sprintf("transform: cannot replace expression with %T", node))
		}
		p.expr.Expr = e
	} else {
		switch n := node.(type) {
		case ast.Stmt:
			p.stmt.Stmt = n
		case ast.Expr:
			p.stmt.Stmt = &ast.ExpressionStatement{Expression: ast.E(n)}
		default:
			panic(fmt.Sprintf("transform: cannot replace statement with %T", node))
		}
	}
	if p.w != nil {
		p.w.replaced(p)
	}
}

// Errorf returns a construction error positioned at the path's node.
func (p *Path) Errorf(format string, args ...any) error {
	n := p.Node()
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Idx0:    n.Idx0(),
		Idx1:    n.Idx1(),
	}
}

func (p *Path) isAncestorOf(q *Path) bool {
	for ; q != nil; q = q.Parent {
		if q == p {
			return true
		}
	}
	return false
}
