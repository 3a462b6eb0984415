package ast

// Idx is a compact encoding of a source position within JS code: the
// 1-based byte offset of a character. Zero means the node was synthesized
// and has no position of its own.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
	// Kind returns the node-kind tag.
	Kind() Kind
}

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Program struct {
	Body Statements
}

func (a *ArrayLiteral) Idx0() Idx          { return a.LeftBracket }
func (a *AssignExpression) Idx0() Idx      { return a.Left.Idx0() }
func (b *BinaryExpression) Idx0() Idx      { return b.Left.Idx0() }
func (b *BooleanLiteral) Idx0() Idx        { return b.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (f *FunctionLiteral) Idx0() Idx       { return f.Function }
func (i *Identifier) Idx0() Idx            { return i.Idx }
func (m *MemberExpression) Idx0() Idx      { return m.Object.Idx0() }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}
func (n *PropertyKeyed) Idx0() Idx { return n.Key.Idx0() }
func (n *PropertyShort) Idx0() Idx { return n.Name.Idx }

func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *BreakStatement) Idx0() Idx      { return n.Idx }
func (n *ContinueStatement) Idx0() Idx   { return n.Idx }
func (n *CatchStatement) Idx0() Idx      { return n.Catch }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx      { return n.For }
func (n *ForStatement) Idx0() Idx        { return n.For }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *TryStatement) Idx0() Idx        { return n.Try }
func (n *WhileStatement) Idx0() Idx      { return n.While }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (b *VariableDeclarator) Idx0() Idx  { return b.Target.Idx0() }

func (a *ArrayLiteral) Idx1() Idx     { return a.RightBracket + 1 }
func (a *AssignExpression) Idx1() Idx { return a.Right.Idx1() }
func (b *BinaryExpression) Idx1() Idx { return b.Right.Idx1() }
func (b *BooleanLiteral) Idx1() Idx {
	if b.Value {
		return b.Idx + 4
	}
	return b.Idx + 5
}
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (f *FunctionLiteral) Idx1() Idx       { return f.Body.Idx1() }
func (i *Identifier) Idx1() Idx            { return Idx(int(i.Idx) + len(i.Name)) }
func (m *MemberExpression) Idx1() Idx {
	if m.Computed && m.RightBracket != 0 {
		return m.RightBracket + 1
	}
	return m.Property.Idx1()
}
func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis != 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx        { return n.Idx + 4 } // "null"
func (n *NumberLiteral) Idx1() Idx      { return Idx(int(n.Idx) + len(n.Raw)) }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *StringLiteral) Idx1() Idx      { return Idx(int(n.Idx) + len(n.Raw)) }
func (n *ThisExpression) Idx1() Idx     { return n.Idx + 4 }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Operand.Idx1() + 2 // x++ x--
	}
	return n.Operand.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }
func (n *PropertyShort) Idx1() Idx { return n.Name.Idx1() }

func (n *BlockStatement) Idx1() Idx    { return n.RightBrace + 1 }
func (n *BreakStatement) Idx1() Idx    { return n.Idx + 5 }
func (n *ContinueStatement) Idx1() Idx { return n.Idx + 8 }
func (n *CatchStatement) Idx1() Idx    { return n.Body.Idx1() }
func (n *EmptyStatement) Idx1() Idx    { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx {
	return n.Expression.Idx1()
}
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *ThrowStatement) Idx1() Idx { return n.Argument.Idx1() }
func (n *TryStatement) Idx1() Idx {
	if n.Finally != nil {
		return n.Finally.Idx1()
	}
	if n.Catch != nil {
		return n.Catch.Idx1()
	}
	return n.Body.Idx1()
}
func (n *WhileStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx   { return n.Body.Idx1() }
func (n *ForInStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *VariableDeclaration) Idx1() Idx {
	return n.List[len(n.List)-1].Idx1()
}
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (b *VariableDeclarator) Idx1() Idx {
	if b.Initializer != nil {
		return b.Initializer.Idx1()
	}
	return b.Target.Idx1()
}

// Idx0 and Idx1 on the slot wrappers forward to the wrapped node and
// tolerate empty slots.
func (e *Expression) Idx0() Idx {
	if e == nil || e.Expr == nil {
		return 0
	}
	return e.Expr.Idx0()
}

func (e *Expression) Idx1() Idx {
	if e == nil || e.Expr == nil {
		return 0
	}
	return e.Expr.Idx1()
}

func (s *Statement) Idx0() Idx {
	if s == nil || s.Stmt == nil {
		return 0
	}
	return s.Stmt.Idx0()
}

func (s *Statement) Idx1() Idx {
	if s == nil || s.Stmt == nil {
		return 0
	}
	return s.Stmt.Idx1()
}
