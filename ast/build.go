package ast

import "github.com/fieldbook/intrusive/token"

// Builders for synthesized nodes. Synthesized nodes carry no source
// position (Idx 0).

// E wraps an expression node in a fresh slot.
func E(x Expr) *Expression { return &Expression{Expr: x} }

// S wraps a statement node in a fresh slot.
func S(x Stmt) *Statement { return &Statement{Stmt: x} }

func Ident(name string) *Identifier { return &Identifier{Name: name} }

// Undefined returns a reference to the global `undefined`.
func Undefined() *Identifier { return Ident("undefined") }

func Str(s string) *StringLiteral { return &StringLiteral{Value: s} }

func Null() *NullLiteral { return &NullLiteral{} }

func This() *ThisExpression { return &ThisExpression{} }

// Member builds the non-computed access obj.name.
func Member(obj Expr, name string) *MemberExpression {
	return &MemberExpression{Object: E(obj), Property: E(Ident(name))}
}

// Index builds the computed access obj[prop].
func Index(obj Expr, prop Expr) *MemberExpression {
	return &MemberExpression{Object: E(obj), Property: E(prop), Computed: true}
}

func Call(callee Expr, args ...Expr) *CallExpression {
	return &CallExpression{Callee: E(callee), ArgumentList: exprs(args)}
}

// CallWith builds a call that reuses an existing argument list.
func CallWith(callee Expr, args Expressions) *CallExpression {
	return &CallExpression{Callee: E(callee), ArgumentList: args}
}

func Seq(list ...Expr) *SequenceExpression {
	return &SequenceExpression{Sequence: exprs(list)}
}

func Cond(test, consequent, alternate Expr) *ConditionalExpression {
	return &ConditionalExpression{Test: E(test), Consequent: E(consequent), Alternate: E(alternate)}
}

func Assign(left, right Expr) *AssignExpression {
	return &AssignExpression{Operator: token.Assign, Left: E(left), Right: E(right)}
}

func Binary(op token.Token, left, right Expr) *BinaryExpression {
	return &BinaryExpression{Operator: op, Left: E(left), Right: E(right)}
}

// IsNull builds the loose null test `x == null`.
func IsNull(x Expr) *BinaryExpression {
	return Binary(token.Equal, x, Null())
}

func Not(x Expr) *UnaryExpression {
	return &UnaryExpression{Operator: token.Not, Operand: E(x)}
}

// Return builds a return statement; a nil argument gives a bare return.
func Return(arg Expr) *ReturnStatement {
	if arg == nil {
		return &ReturnStatement{}
	}
	return &ReturnStatement{Argument: E(arg)}
}

func Throw(arg Expr) *ThrowStatement { return &ThrowStatement{Argument: E(arg)} }

func If(test Expr, consequent Stmt) *IfStatement {
	return &IfStatement{Test: E(test), Consequent: S(consequent)}
}

func ExprStmt(x Expr) *ExpressionStatement { return &ExpressionStatement{Expression: E(x)} }

func Block(list ...Stmt) *BlockStatement {
	stmts := make(Statements, len(list))
	for i, s := range list {
		stmts[i].Stmt = s
	}
	return &BlockStatement{List: stmts}
}

// Declarator builds `id = init`; init may be nil.
func Declarator(id *Identifier, init Expr) VariableDeclarator {
	if init == nil {
		return VariableDeclarator{Target: id}
	}
	return VariableDeclarator{Target: id, Initializer: E(init)}
}

func Var(list ...VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Token: token.Var, List: list}
}

func Func(params []*Identifier, body *BlockStatement) *FunctionLiteral {
	return &FunctionLiteral{ParameterList: ParameterList{List: params}, Body: body}
}

func exprs(list []Expr) Expressions {
	out := make(Expressions, len(list))
	for i, x := range list {
		out[i].Expr = x
	}
	return out
}
