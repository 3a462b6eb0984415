// Package dotunderscore replaces reads of the reserved `_` member with a
// call to the runtime dispatcher: `obj._` becomes
// `global._getUnderscore(obj)`. Assignments to `obj._` and the computed
// form `obj['_']` are left alone.
package dotunderscore

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/ast/ext"
	"github.com/fieldbook/intrusive/transform"
)

const Name = "dotunderscore"

const (
	// Member is the reserved property name.
	Member = "_"
	// Dispatcher is the property of `global` holding the runtime
	// dispatcher.
	Dispatcher = "_getUnderscore"
)

func Pass() transform.Pass {
	return transform.Pass{
		Name: Name,
		Handlers: map[ast.Kind]transform.Handler{
			ast.KindMemberExpression: rewrite,
		},
	}
}

func rewrite(p *transform.Path) error {
	m := p.Node().(*ast.MemberExpression)
	if !ext.IsMemberNamed(m, Member) || isWriteTarget(p) {
		return nil
	}
	p.ReplaceWith(ast.Call(ast.Member(ast.Ident("global"), Dispatcher), m.Object.Expr))
	return nil
}

// isWriteTarget reports whether the member is assigned to. Update
// operands count too: `obj._++` has no call form.
func isWriteTarget(p *transform.Path) bool {
	switch parent := p.ParentNode().(type) {
	case *ast.AssignExpression:
		return parent.Left.Expr == p.Node()
	case *ast.UpdateExpression:
		return true
	}
	return false
}
