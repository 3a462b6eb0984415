package generator

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

const (
	precSequence = iota
	precAssign
	precConditional
	// Binary operators occupy precBinary+token.Precedence.
	precBinary
)

const (
	precUnary = precBinary + 13 + iota
	precPostfix
	precCall
	precPrimary
)

func precedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return precBinary + n.Operator.Precedence(true)
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.CallExpression, *ast.MemberExpression, *ast.NewExpression:
		return precCall
	case *ast.NumberLiteral:
		if n.Raw == "" && n.Value < 0 {
			return precUnary
		}
	}
	return precPrimary
}

// leftmost returns the expression printed first when e is generated.
func leftmost(e ast.Expr) ast.Expr {
	for {
		var next *ast.Expression
		switch n := e.(type) {
		case *ast.SequenceExpression:
			next = &n.Sequence[0]
		case *ast.AssignExpression:
			next = n.Left
		case *ast.ConditionalExpression:
			next = n.Test
		case *ast.BinaryExpression:
			next = n.Left
		case *ast.CallExpression:
			next = n.Callee
		case *ast.MemberExpression:
			next = n.Object
		case *ast.UpdateExpression:
			if !n.Postfix {
				return e
			}
			next = n.Operand
		default:
			return e
		}
		if _, ok := next.Expr.(*ast.FunctionLiteral); ok {
			switch e.(type) {
			case *ast.CallExpression, *ast.MemberExpression:
				// Function literals are always parenthesized there.
				return e
			}
		}
		if precedence(next.Expr) < precedence(e) {
			// Already parenthesized by its parent.
			return e
		}
		e = next.Expr
	}
}

// containsCall reports whether a member chain bottoms out in a call, which
// must be parenthesized as the callee of new.
func containsCall(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.MemberExpression:
			e = n.Object.Expr
		default:
			return false
		}
	}
}

func needsSpace(op token.Token, operand ast.Expr) bool {
	switch op {
	case token.Plus, token.Minus:
	default:
		return false
	}
	switch n := operand.(type) {
	case *ast.UnaryExpression:
		return n.Operator == op
	case *ast.UpdateExpression:
		return !n.Postfix && (n.Operator == token.Increment) == (op == token.Plus)
	case *ast.NumberLiteral:
		return op == token.Minus && n.Raw == "" && n.Value < 0
	}
	return false
}
