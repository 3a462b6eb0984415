package ast

import "github.com/fieldbook/intrusive/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it. It is the
	// replaceable slot that holds one expression node.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression is `Object.Property` or `Object[Property]`. When
	// Computed is false, Property always holds an *Identifier.
	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}
)

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*ThisExpression) _expr()        {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
