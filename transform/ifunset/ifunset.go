// Package ifunset expands the IfUnset default-assignment macro.
//
//	IfUnset, a = 1, obj.b = 2, obj[key()] = 3;
//
// assigns each target only when it is null or undefined. Member targets
// evaluate their object, and a computed key, exactly once. The macro is
// an expression and always evaluates to undefined.
package ifunset

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/ast/ext"
	"github.com/fieldbook/intrusive/token"
	"github.com/fieldbook/intrusive/transform"
)

const Name = "ifunset"

// Sentinel is the identifier that opens the macro sequence.
const Sentinel = "IfUnset"

func Pass() transform.Pass {
	return transform.Pass{
		Name: Name,
		Handlers: map[ast.Kind]transform.Handler{
			ast.KindSequenceExpression: rewrite,
		},
	}
}

func rewrite(p *transform.Path) error {
	seq := p.Node().(*ast.SequenceExpression)
	if !ext.IsIdentifierNamed(&seq.Sequence[0], Sentinel) {
		return nil
	}

	body := &ast.BlockStatement{}
	for i := 1; i < len(seq.Sequence); i++ {
		stmt, err := guard(p, &seq.Sequence[i])
		if err != nil {
			return err
		}
		body.List = append(body.List, ast.Statement{Stmt: stmt})
	}

	// (function () { ... }).call(this)
	fn := ast.Func(nil, body)
	p.ReplaceWith(ast.Call(ast.Member(fn, "call"), ast.This()))
	return nil
}

func guard(p *transform.Path, e *ast.Expression) (ast.Stmt, error) {
	assign, ok := e.Expr.(*ast.AssignExpression)
	if !ok {
		return nil, errorAt(e, "IfUnset with non-assignment")
	}
	if assign.Operator != token.Assign {
		return nil, errorAt(e, "IfUnset with operator other than =")
	}

	switch left := assign.Left.Expr.(type) {
	case *ast.Identifier:
		return ifNull(ast.Ident(left.Name), assign.Right.Expr), nil
	case *ast.MemberExpression:
		return member(p, left, assign.Right.Expr), nil
	}
	return nil, errorAt(assign.Left, "IfUnset with invalid assignment target")
}

// member stores the object, and a computed key, in temporaries declared
// inside the block:
//
//	{ var _memberObject = obj, _memberProperty = key;
//	  if (_memberObject[_memberProperty] == null) _memberObject[_memberProperty] = value; }
func member(p *transform.Path, m *ast.MemberExpression, value ast.Expr) ast.Stmt {
	scope := p.Scope()
	obj := scope.GenerateUid("memberObject")
	decl := ast.Var(ast.Declarator(obj, m.Object.Expr))

	target := func() ast.Expr {
		return ast.Member(ast.Ident(obj.Name), m.Property.Expr.(*ast.Identifier).Name)
	}
	if m.Computed {
		prop := scope.GenerateUid("memberProperty")
		decl.List = append(decl.List, ast.Declarator(prop, m.Property.Expr))
		target = func() ast.Expr {
			return ast.Index(ast.Ident(obj.Name), ast.Ident(prop.Name))
		}
	}
	return ast.Block(decl, ast.If(ast.IsNull(target()), ast.ExprStmt(ast.Assign(target(), value))))
}

// if (x == null) x = value;
func ifNull(target *ast.Identifier, value ast.Expr) ast.Stmt {
	return ast.If(ast.IsNull(target), ast.ExprStmt(ast.Assign(ast.Ident(target.Name), value)))
}

func errorAt(e *ast.Expression, msg string) error {
	return &transform.Error{Message: msg, Idx0: e.Idx0(), Idx1: e.Idx1()}
}
