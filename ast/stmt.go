package ast

type (
	Statements []Statement

	// Statement is the replaceable slot that holds one statement node.
	Statement struct {
		Stmt `optional:"true"`
	}

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		VisitableNode
		_stmt()
	}

	BlockStatement struct {
		LeftBrace  Idx
		List       Statements
		RightBrace Idx
	}

	BreakStatement struct {
		Idx Idx
	}

	ContinueStatement struct {
		Idx Idx
	}

	CatchStatement struct {
		Catch     Idx
		Parameter *Identifier `optional:"true"`
		Body      *BlockStatement
	}

	EmptyStatement struct {
		Semicolon Idx
	}

	ExpressionStatement struct {
		Expression *Expression
	}

	IfStatement struct {
		If         Idx
		Test       *Expression
		Consequent *Statement
		Alternate  *Statement `optional:"true"`
	}

	ReturnStatement struct {
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	ThrowStatement struct {
		Throw    Idx
		Argument *Expression
	}

	ForStatement struct {
		For         Idx
		Initializer *ForInit    `optional:"true"`
		Test        *Expression `optional:"true"`
		Update      *Expression `optional:"true"`
		Body        *Statement
	}

	ForInStatement struct {
		For    Idx
		Into   *ForInit
		Source *Expression
		Body   *Statement
	}

	// ForInit is the head clause of a for or for-in statement. Exactly one
	// of its fields is set. In a for-in head the declaration has a single
	// declarator without initializer and the expression is an assignment
	// target.
	ForInit struct {
		Declaration *VariableDeclaration
		Expression  *Expression
	}

	TryStatement struct {
		Try     Idx
		Body    *BlockStatement
		Catch   *CatchStatement `optional:"true"`
		Finally *BlockStatement `optional:"true"`
	}

	WhileStatement struct {
		While Idx
		Test  *Expression
		Body  *Statement
	}
)

func (*BlockStatement) _stmt()      {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*IfStatement) _stmt()         {}
func (*ReturnStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WhileStatement) _stmt()      {}
func (*VariableDeclaration) _stmt() {}
func (*FunctionDeclaration) _stmt() {}
