// Package postfixif rewrites postfix conditionals written with the If and
// Unless pseudo-functions:
//
//	view.render(), If(view.dirty);
//	throw new Error('out of bounds'), If(i > n);
//	return false, Unless(enabled);
//	return If(done);
//
// Each becomes an if statement guarding the leading expression (or the
// bare return) and replaces the enclosing statement.
package postfixif

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/ast/ext"
	"github.com/fieldbook/intrusive/transform"
)

const Name = "postfixif"

const (
	If     = "If"
	Unless = "Unless"
)

func Pass() transform.Pass {
	return transform.Pass{
		Name: Name,
		Handlers: map[ast.Kind]transform.Handler{
			ast.KindCallExpression: rewrite,
		},
	}
}

// inspector recognizes one syntactic position of a postfix conditional.
// It returns the statement to replace and the consequent to guard, or a
// nil path when p is not in that position.
type inspector func(p *transform.Path) (outer *transform.Path, consequent ast.Stmt, err error)

// Tried in order; the first match wins.
var inspectors = []inspector{
	bareReturn,
	unaryCompletion,
	bareExpression,
}

func rewrite(p *transform.Path) error {
	call := p.Node().(*ast.CallExpression)
	name, ok := ext.CalleeName(call)
	if !ok || (name != If && name != Unless) {
		return nil
	}
	if len(call.ArgumentList) != 1 {
		return p.Errorf("If/Unless must have single argument for condition")
	}
	condition := call.ArgumentList[0].Expr
	if name == Unless {
		condition = ast.Not(condition)
	}

	for _, inspect := range inspectors {
		outer, consequent, err := inspect(p)
		if err != nil {
			return err
		}
		if outer != nil {
			outer.ReplaceWith(ast.If(condition, consequent))
			return nil
		}
	}
	return p.Errorf("No inspector matched the node")
}

// return If(cond);
func bareReturn(p *transform.Path) (*transform.Path, ast.Stmt, error) {
	if _, ok := p.ParentNode().(*ast.ReturnStatement); !ok {
		return nil, nil, nil
	}
	return p.Parent, ast.Return(nil), nil
}

// return value, If(cond);
// throw value, If(cond);
func unaryCompletion(p *transform.Path) (*transform.Path, ast.Stmt, error) {
	seq, err := sequence(p)
	if seq == nil || err != nil {
		return nil, nil, err
	}
	outer := p.Parent.Parent
	if outer == nil {
		return nil, nil, nil
	}
	value := seq.Sequence[0].Expr
	switch outer.Node().Kind() {
	case ast.KindReturnStatement:
		return outer, ast.Return(value), nil
	case ast.KindThrowStatement:
		return outer, ast.Throw(value), nil
	}
	return nil, nil, nil
}

// expr, If(cond);
func bareExpression(p *transform.Path) (*transform.Path, ast.Stmt, error) {
	seq, err := sequence(p)
	if seq == nil || err != nil {
		return nil, nil, err
	}
	outer := p.Parent.Parent
	if outer == nil || outer.Node().Kind() != ast.KindExpressionStatement {
		return nil, nil, nil
	}
	return outer, ast.ExprStmt(seq.Sequence[0].Expr), nil
}

// sequence returns the sequence holding the conditional, rejecting any
// sequence that is not `expr, If(cond)`.
func sequence(p *transform.Path) (*ast.SequenceExpression, error) {
	seq, ok := p.ParentNode().(*ast.SequenceExpression)
	if !ok {
		return nil, nil
	}
	if len(seq.Sequence) != 2 || ext.IsCallTo(&seq.Sequence[0], If, Unless) {
		return nil, p.Parent.Errorf("Postfix if/unless must be last expression in a two-expression sequence")
	}
	return seq, nil
}
