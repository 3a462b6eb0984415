package ast

// Kind is the node-kind tag used to route nodes to transform handlers.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindArrayLiteral
	KindAssignExpression
	KindBinaryExpression
	KindBooleanLiteral
	KindCallExpression
	KindConditionalExpression
	KindFunctionLiteral
	KindIdentifier
	KindMemberExpression
	KindNewExpression
	KindNullLiteral
	KindNumberLiteral
	KindObjectLiteral
	KindSequenceExpression
	KindStringLiteral
	KindThisExpression
	KindUnaryExpression
	KindUpdateExpression

	KindPropertyKeyed
	KindPropertyShort

	KindBlockStatement
	KindBreakStatement
	KindCatchStatement
	KindContinueStatement
	KindEmptyStatement
	KindExpressionStatement
	KindForInStatement
	KindForStatement
	KindFunctionDeclaration
	KindIfStatement
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindWhileStatement

	KindProgram
)

var kindNames = [...]string{
	KindInvalid:               "Invalid",
	KindArrayLiteral:          "ArrayLiteral",
	KindAssignExpression:      "AssignExpression",
	KindBinaryExpression:      "BinaryExpression",
	KindBooleanLiteral:        "BooleanLiteral",
	KindCallExpression:        "CallExpression",
	KindConditionalExpression: "ConditionalExpression",
	KindFunctionLiteral:       "FunctionLiteral",
	KindIdentifier:            "Identifier",
	KindMemberExpression:      "MemberExpression",
	KindNewExpression:         "NewExpression",
	KindNullLiteral:           "NullLiteral",
	KindNumberLiteral:         "NumberLiteral",
	KindObjectLiteral:         "ObjectLiteral",
	KindSequenceExpression:    "SequenceExpression",
	KindStringLiteral:         "StringLiteral",
	KindThisExpression:        "ThisExpression",
	KindUnaryExpression:       "UnaryExpression",
	KindUpdateExpression:      "UpdateExpression",
	KindPropertyKeyed:         "PropertyKeyed",
	KindPropertyShort:         "PropertyShort",
	KindBlockStatement:        "BlockStatement",
	KindBreakStatement:        "BreakStatement",
	KindCatchStatement:        "CatchStatement",
	KindContinueStatement:     "ContinueStatement",
	KindEmptyStatement:        "EmptyStatement",
	KindExpressionStatement:   "ExpressionStatement",
	KindForInStatement:        "ForInStatement",
	KindForStatement:          "ForStatement",
	KindFunctionDeclaration:   "FunctionDeclaration",
	KindIfStatement:           "IfStatement",
	KindReturnStatement:       "ReturnStatement",
	KindThrowStatement:        "ThrowStatement",
	KindTryStatement:          "TryStatement",
	KindVariableDeclaration:   "VariableDeclaration",
	KindVariableDeclarator:    "VariableDeclarator",
	KindWhileStatement:        "WhileStatement",
	KindProgram:               "Program",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

func (*ArrayLiteral) Kind() Kind          { return KindArrayLiteral }
func (*AssignExpression) Kind() Kind      { return KindAssignExpression }
func (*BinaryExpression) Kind() Kind      { return KindBinaryExpression }
func (*BooleanLiteral) Kind() Kind        { return KindBooleanLiteral }
func (*CallExpression) Kind() Kind        { return KindCallExpression }
func (*ConditionalExpression) Kind() Kind { return KindConditionalExpression }
func (*FunctionLiteral) Kind() Kind       { return KindFunctionLiteral }
func (*Identifier) Kind() Kind            { return KindIdentifier }
func (*MemberExpression) Kind() Kind      { return KindMemberExpression }
func (*NewExpression) Kind() Kind         { return KindNewExpression }
func (*NullLiteral) Kind() Kind           { return KindNullLiteral }
func (*NumberLiteral) Kind() Kind         { return KindNumberLiteral }
func (*ObjectLiteral) Kind() Kind         { return KindObjectLiteral }
func (*SequenceExpression) Kind() Kind    { return KindSequenceExpression }
func (*StringLiteral) Kind() Kind         { return KindStringLiteral }
func (*ThisExpression) Kind() Kind        { return KindThisExpression }
func (*UnaryExpression) Kind() Kind       { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind      { return KindUpdateExpression }
func (*PropertyKeyed) Kind() Kind         { return KindPropertyKeyed }
func (*PropertyShort) Kind() Kind         { return KindPropertyShort }
func (*BlockStatement) Kind() Kind        { return KindBlockStatement }
func (*BreakStatement) Kind() Kind        { return KindBreakStatement }
func (*CatchStatement) Kind() Kind        { return KindCatchStatement }
func (*ContinueStatement) Kind() Kind     { return KindContinueStatement }
func (*EmptyStatement) Kind() Kind        { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind   { return KindExpressionStatement }
func (*ForInStatement) Kind() Kind        { return KindForInStatement }
func (*ForStatement) Kind() Kind          { return KindForStatement }
func (*FunctionDeclaration) Kind() Kind   { return KindFunctionDeclaration }
func (*IfStatement) Kind() Kind           { return KindIfStatement }
func (*ReturnStatement) Kind() Kind       { return KindReturnStatement }
func (*ThrowStatement) Kind() Kind        { return KindThrowStatement }
func (*TryStatement) Kind() Kind          { return KindTryStatement }
func (*VariableDeclaration) Kind() Kind   { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind    { return KindVariableDeclarator }
func (*WhileStatement) Kind() Kind        { return KindWhileStatement }
func (*Program) Kind() Kind               { return KindProgram }

// Kind on the slot wrappers reports the kind of the wrapped node.
func (e *Expression) Kind() Kind {
	if e == nil || e.Expr == nil {
		return KindInvalid
	}
	return e.Expr.Kind()
}

func (s *Statement) Kind() Kind {
	if s == nil || s.Stmt == nil {
		return KindInvalid
	}
	return s.Stmt.Kind()
}
