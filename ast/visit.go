package ast

type Visitor interface {
	VisitProgram(n *Program)

	VisitExpression(n *Expression)
	VisitExpressions(n *Expressions)
	VisitStatement(n *Statement)
	VisitStatements(n *Statements)

	VisitArrayLiteral(n *ArrayLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitIdentifier(n *Identifier)
	VisitMemberExpression(n *MemberExpression)
	VisitNewExpression(n *NewExpression)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitPropertyShort(n *PropertyShort)
	VisitSequenceExpression(n *SequenceExpression)
	VisitStringLiteral(n *StringLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)

	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForStatement(n *ForStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitIfStatement(n *IfStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitWhileStatement(n *WhileStatement)
}

// NoopVisitor visits every node without doing anything. Embed it and set
// V to the embedding visitor so that overridden methods are reached from
// the default traversal:
//
//	v := &myVisitor{}
//	v.V = v
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) {}
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier)           {}
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral)         {}
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral)     {}
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral)     {}
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression)   {}
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement)       {}
func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) {}
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement)       {}
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(n *ForStatement)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(n *TryStatement)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) {
	n.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor)         { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) { v.VisitStatements(&n.Body) }

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n != nil && n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n != nil && n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

// visitOptional visits an optional expression slot.
func visitOptional(v Visitor, e *Expression) {
	if e != nil {
		v.VisitExpression(e)
	}
}

func (n *ArrayLiteral) VisitWith(v Visitor)         { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) { v.VisitExpressions(&n.Value) }

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Left)
	v.VisitExpression(n.Right)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Left)
	v.VisitExpression(n.Right)
}

func (n *BooleanLiteral) VisitWith(v Visitor)       { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(Visitor) {}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Callee)
	v.VisitExpressions(&n.ArgumentList)
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Test)
	v.VisitExpression(n.Consequent)
	v.VisitExpression(n.Alternate)
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		v.VisitIdentifier(n.Name)
	}
	for _, param := range n.ParameterList.List {
		v.VisitIdentifier(param)
	}
	v.VisitBlockStatement(n.Body)
}

func (n *Identifier) VisitWith(v Visitor)       { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(Visitor) {}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Object)
	v.VisitExpression(n.Property)
}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *NewExpression) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Callee)
	v.VisitExpressions(&n.ArgumentList)
}

func (n *NullLiteral) VisitWith(v Visitor)       { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor)       { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(Visitor) {}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for _, prop := range n.Value {
		prop.Prop.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Key)
	v.VisitExpression(n.Value)
}

func (n *PropertyShort) VisitWith(v Visitor)         { v.VisitPropertyShort(n) }
func (n *PropertyShort) VisitChildrenWith(v Visitor) { v.VisitIdentifier(n.Name) }

func (n *SequenceExpression) VisitWith(v Visitor)         { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) { v.VisitExpressions(&n.Sequence) }

func (n *StringLiteral) VisitWith(v Visitor)       { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(Visitor) {}

func (n *ThisExpression) VisitWith(v Visitor)       { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(Visitor) {}

func (n *UnaryExpression) VisitWith(v Visitor)         { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) { v.VisitExpression(n.Operand) }

func (n *UpdateExpression) VisitWith(v Visitor)         { v.VisitUpdateExpression(n) }
func (n *UpdateExpression) VisitChildrenWith(v Visitor) { v.VisitExpression(n.Operand) }

func (n *BlockStatement) VisitWith(v Visitor)         { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) { v.VisitStatements(&n.List) }

func (n *BreakStatement) VisitWith(v Visitor)       { v.VisitBreakStatement(n) }
func (n *BreakStatement) VisitChildrenWith(Visitor) {}

func (n *CatchStatement) VisitWith(v Visitor) { v.VisitCatchStatement(n) }
func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		v.VisitIdentifier(n.Parameter)
	}
	v.VisitBlockStatement(n.Body)
}

func (n *ContinueStatement) VisitWith(v Visitor)       { v.VisitContinueStatement(n) }
func (n *ContinueStatement) VisitChildrenWith(Visitor) {}

func (n *EmptyStatement) VisitWith(v Visitor)       { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor)         { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) { v.VisitExpression(n.Expression) }

func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }
func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.visit(v)
	}
	visitOptional(v, n.Test)
	visitOptional(v, n.Update)
	v.VisitStatement(n.Body)
}

func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }
func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.visit(v)
	v.VisitExpression(n.Source)
	v.VisitStatement(n.Body)
}

func (n *ForInit) visit(v Visitor) {
	if n.Declaration != nil {
		v.VisitVariableDeclaration(n.Declaration)
		return
	}
	v.VisitExpression(n.Expression)
}

func (n *FunctionDeclaration) VisitWith(v Visitor)         { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) { v.VisitFunctionLiteral(n.Function) }

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Test)
	v.VisitStatement(n.Consequent)
	if n.Alternate != nil {
		v.VisitStatement(n.Alternate)
	}
}

func (n *ReturnStatement) VisitWith(v Visitor)         { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) { visitOptional(v, n.Argument) }

func (n *ThrowStatement) VisitWith(v Visitor)         { v.VisitThrowStatement(n) }
func (n *ThrowStatement) VisitChildrenWith(v Visitor) { v.VisitExpression(n.Argument) }

func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }
func (n *TryStatement) VisitChildrenWith(v Visitor) {
	v.VisitBlockStatement(n.Body)
	if n.Catch != nil {
		v.VisitCatchStatement(n.Catch)
	}
	if n.Finally != nil {
		v.VisitBlockStatement(n.Finally)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		v.VisitVariableDeclarator(&n.List[i])
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	v.VisitIdentifier(n.Target)
	visitOptional(v, n.Initializer)
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }
func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	v.VisitExpression(n.Test)
	v.VisitStatement(n.Body)
}
