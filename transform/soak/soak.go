// Package soak rewrites the `+~` safe navigation marker.
//
//	+~a.b.c()
//
// evaluates the chain left to right and short-circuits to undefined at
// the first null or undefined link. Calls on an absent callee resolve to
// the shared `__soakNoop` function instead of throwing.
package soak

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/ast/ext"
	"github.com/fieldbook/intrusive/token"
	"github.com/fieldbook/intrusive/transform"
)

const Name = "soak"

// Noop is the runtime global substituted for absent callees.
const Noop = "__soakNoop"

func Pass() transform.Pass {
	return transform.Pass{
		Name: Name,
		Handlers: map[ast.Kind]transform.Handler{
			ast.KindUnaryExpression: rewrite,
		},
	}
}

func rewrite(p *transform.Path) error {
	plus := p.Node().(*ast.UnaryExpression)
	if plus.Operator != token.Plus {
		return nil
	}
	tilde, ok := ext.AsUnary(plus.Operand, token.BitwiseNot)
	if !ok {
		return nil
	}

	scope := p.Scope()
	obj := scope.GenerateUid("obj")
	prop := scope.GenerateUid("prop")
	scope.Push(obj)
	scope.Push(prop)

	s := &soaker{obj: obj.Name, fn: prop.Name}
	p.ReplaceWith(s.soak(tilde.Operand.Expr))
	return nil
}

// soaker holds the two temporaries shared by every link of one chain:
// the current object and the current resolved function.
type soaker struct {
	obj, fn string
}

func (s *soaker) soak(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.MemberExpression:
		return s.member(n)
	case *ast.CallExpression:
		return s.call(n)
	}
	return e
}

// (_obj = E, _obj == null ? undefined : _obj[name])
func (s *soaker) member(n *ast.MemberExpression) ast.Expr {
	return ast.Seq(
		ast.Assign(ast.Ident(s.obj), s.soak(n.Object.Expr)),
		ast.Cond(
			ast.IsNull(ast.Ident(s.obj)),
			ast.Undefined(),
			ast.Index(ast.Ident(s.obj), memberName(n)),
		),
	)
}

// (_prop = C, _prop == null ? __soakNoop : _prop)(args)
func (s *soaker) call(n *ast.CallExpression) ast.Expr {
	var callee ast.Expr
	if m, ok := n.Callee.Expr.(*ast.MemberExpression); ok {
		callee = s.method(m)
	} else {
		callee = s.soak(n.Callee.Expr)
	}
	guarded := ast.Seq(
		ast.Assign(ast.Ident(s.fn), callee),
		ast.Cond(ast.IsNull(ast.Ident(s.fn)), ast.Ident(Noop), ast.Ident(s.fn)),
	)
	return ast.CallWith(guarded, n.ArgumentList)
}

// A method is bound to its soaked receiver so that both the real method
// and the no-op fallback see the right `this`.
//
//	(_obj = E,
//	 _prop = _obj == null ? __soakNoop : _obj[name],
//	 _prop == null ? __soakNoop : _prop.bind(_obj))
func (s *soaker) method(m *ast.MemberExpression) ast.Expr {
	return ast.Seq(
		ast.Assign(ast.Ident(s.obj), s.soak(m.Object.Expr)),
		ast.Assign(ast.Ident(s.fn), ast.Cond(
			ast.IsNull(ast.Ident(s.obj)),
			ast.Ident(Noop),
			ast.Index(ast.Ident(s.obj), memberName(m)),
		)),
		ast.Cond(
			ast.IsNull(ast.Ident(s.fn)),
			ast.Ident(Noop),
			ast.Call(ast.Member(ast.Ident(s.fn), "bind"), ast.Ident(s.obj)),
		),
	)
}

// memberName returns the key of a member access as an expression usable
// in a computed access: `a.b` gives "b", `a[k]` gives k.
func memberName(m *ast.MemberExpression) ast.Expr {
	if name, ok := ext.PropertyName(m); ok {
		return ast.Str(name)
	}
	return m.Property.Expr
}
