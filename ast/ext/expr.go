// Package ext holds node classification predicates shared by the
// transforms.
package ext

import (
	"golang.org/x/exp/slices"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

// IsIdentifierNamed returns true if the expression is a bare identifier
// with one of the given names.
func IsIdentifierNamed(expr *ast.Expression, names ...string) bool {
	if expr == nil {
		return false
	}
	id, ok := expr.Expr.(*ast.Identifier)
	return ok && slices.Contains(names, id.Name)
}

// CalleeName returns the callee name of a call whose callee is a bare
// identifier.
func CalleeName(call *ast.CallExpression) (string, bool) {
	id, ok := call.Callee.Expr.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// IsCallTo returns true if the expression calls a bare identifier with
// one of the given names, e.g. `If(x)`.
func IsCallTo(expr *ast.Expression, names ...string) bool {
	if expr == nil {
		return false
	}
	call, ok := expr.Expr.(*ast.CallExpression)
	if !ok {
		return false
	}
	name, ok := CalleeName(call)
	return ok && slices.Contains(names, name)
}

// AsUnary returns the unary expression when expr applies op.
func AsUnary(expr *ast.Expression, op token.Token) (*ast.UnaryExpression, bool) {
	if expr == nil {
		return nil, false
	}
	u, ok := expr.Expr.(*ast.UnaryExpression)
	if !ok || u.Operator != op {
		return nil, false
	}
	return u, true
}

// PropertyName returns the name of a non-computed member access.
func PropertyName(m *ast.MemberExpression) (string, bool) {
	if m.Computed {
		return "", false
	}
	id, ok := m.Property.Expr.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// IsMemberNamed returns true if the node is a non-computed member access
// of the given property name. `foo['_']` does not match `_`.
func IsMemberNamed(n ast.Node, name string) bool {
	m, ok := n.(*ast.MemberExpression)
	if !ok {
		return false
	}
	prop, ok := PropertyName(m)
	return ok && prop == name
}
