package parser

import (
	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)

	return node
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, ast.Statement{Stmt: p.parseStatement()})
	}

	return list
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Var, token.Let, token.Const:
		return p.parseLexicalDeclaration(p.currentKind())
	case token.Function:
		return &ast.FunctionDeclaration{
			Function: p.parseFunction(true),
		}
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.For:
		return p.parseForStatement()
	}

	expression := p.parseExpression()
	p.semicolon()
	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func (p *parser) parseTryStatement() ast.Stmt {
	node := &ast.TryStatement{
		Try:  p.expect(token.Try),
		Body: p.parseBlockStatement(),
	}

	if p.currentKind() == token.Catch {
		catch := p.currentOffset()
		p.next()
		var parameter *ast.Identifier
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			parameter = p.parseIdentifier()
			p.expect(token.RightParenthesis)
		}
		node.Catch = &ast.CatchStatement{
			Catch:     catch,
			Parameter: parameter,
			Body:      p.parseBlockStatement(),
		}
	}

	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	if node.Catch == nil && node.Finally == nil {
		p.errorAt(node.Try, "Missing catch or finally after try")
	}

	return node
}

func (p *parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.expect(token.LeftParenthesis)
	var list []*ast.Identifier
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		list = append(list, p.parseIdentifier())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	closing := p.expect(token.RightParenthesis)

	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Closing: closing,
	}
}

func (p *parser) parseFunction(declaration bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: p.expect(token.Function),
	}

	if p.currentKind() == token.Identifier {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorUnexpectedToken(p.currentKind())
	}

	p.parseFunctionRest(node)
	return node
}

func (p *parser) parseFunctionRest(node *ast.FunctionLiteral) {
	node.ParameterList = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBlock()
}

func (p *parser) parseFunctionBlock() *ast.BlockStatement {
	p.openScope()
	p.scope.inFunction = true
	noIn := p.noIn
	p.noIn = false
	defer func() {
		p.noIn = noIn
		p.closeScope()
	}()
	return p.parseBlockStatement()
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.expect(token.Return)

	if !p.scope.inFunction {
		p.errorAt(idx, "Illegal return statement")
	}

	node := &ast.ReturnStatement{
		Return: idx,
	}

	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}

	p.semicolon()

	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	idx := p.expect(token.Throw)

	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
		p.nextStatement()
		return &ast.EmptyStatement{Semicolon: idx}
	}

	node := &ast.ThrowStatement{
		Throw:    idx,
		Argument: p.parseExpression(),
	}

	p.semicolon()

	return node
}

func (p *parser) parseLexicalDeclaration(tok token.Token) *ast.VariableDeclaration {
	node := p.parseDeclarators(tok)
	p.semicolon()
	return node
}

// parseDeclarators parses a declaration up to, but not including, its
// terminator. In a for head (noIn set) const may omit its initializer,
// since a for-in binding has none.
func (p *parser) parseDeclarators(tok token.Token) *ast.VariableDeclaration {
	node := &ast.VariableDeclaration{
		Idx:   p.expect(tok),
		Token: tok,
	}
	for {
		declarator := ast.VariableDeclarator{
			Target: p.parseIdentifier(),
		}
		if p.currentKind() == token.Assign {
			p.next()
			declarator.Initializer = p.parseAssignmentExpression()
		} else if tok == token.Const && !p.noIn {
			p.errorf("Missing initializer in const declaration")
		}
		node.List = append(node.List, declarator)
		if p.currentKind() != token.Comma {
			return node
		}
		p.next()
	}
}

func (p *parser) parseWhileStatement() ast.Stmt {
	idx := p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node := &ast.WhileStatement{
		While: idx,
		Test:  p.parseExpression(),
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return node
}

func (p *parser) parseIterationBody() *ast.Statement {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	defer func() { p.scope.inIteration = inIteration }()
	return &ast.Statement{Stmt: p.parseStatement()}
}

func (p *parser) parseForStatement() ast.Stmt {
	idx := p.expect(token.For)
	p.expect(token.LeftParenthesis)

	var init *ast.ForInit
	if p.currentKind() != token.Semicolon {
		p.noIn = true
		switch tok := p.currentKind(); tok {
		case token.Var, token.Let, token.Const:
			init = &ast.ForInit{Declaration: p.parseDeclarators(tok)}
		default:
			init = &ast.ForInit{Expression: p.parseExpression()}
		}
		p.noIn = false
	}

	if init != nil && p.currentKind() == token.In {
		if !isForInBinding(init) {
			p.errorAt(idx, "Invalid left-hand side in for-in loop")
		}
		p.next()
		node := &ast.ForInStatement{
			For:    idx,
			Into:   init,
			Source: p.parseExpression(),
		}
		p.expect(token.RightParenthesis)
		node.Body = p.parseIterationBody()
		return node
	}

	node := &ast.ForStatement{For: idx, Initializer: init}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	return node
}

func isForInBinding(init *ast.ForInit) bool {
	if d := init.Declaration; d != nil {
		return len(d.List) == 1 && d.List[0].Initializer == nil
	}
	return isAssignmentTarget(init.Expression)
}

func (p *parser) parseIfStatement() ast.Stmt {
	idx := p.expect(token.If)
	p.expect(token.LeftParenthesis)
	node := &ast.IfStatement{
		If:   idx,
		Test: p.parseExpression(),
	}
	p.expect(token.RightParenthesis)

	node.Consequent = &ast.Statement{Stmt: p.parseStatement()}

	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = &ast.Statement{Stmt: p.parseStatement()}
	}

	return node
}

func (p *parser) parseProgram() *ast.Program {
	var body ast.Statements
	for p.currentKind() != token.Eof {
		body = append(body, ast.Statement{Stmt: p.parseStatement()})
	}
	return &ast.Program{Body: body}
}

func (p *parser) parseBreakStatement() ast.Stmt {
	idx := p.expect(token.Break)
	if !p.scope.inIteration {
		p.errorAt(idx, "Illegal break statement")
	}
	p.semicolon()
	return &ast.BreakStatement{Idx: idx}
}

func (p *parser) parseContinueStatement() ast.Stmt {
	idx := p.expect(token.Continue)
	if !p.scope.inIteration {
		p.errorAt(idx, "Illegal continue statement")
	}
	p.semicolon()
	return &ast.ContinueStatement{Idx: idx}
}

// Find the next statement after an error (recover)
func (p *parser) nextStatement() {
	for {
		switch p.currentKind() {
		case token.Break, token.Continue,
			token.For, token.If, token.Return,
			token.Var, token.Try,
			token.While, token.Throw, token.Catch, token.Finally:
			// Return only if parser made some progress since last
			// sync or if it has not reached 10 next calls without
			// progress. Otherwise consume at least one token to
			// avoid an endless parser loop
			if p.currentOffset() == p.recover.idx && p.recover.count < 10 {
				p.recover.count++
				return
			}
			if p.currentOffset() > p.recover.idx {
				p.recover.idx = p.currentOffset()
				p.recover.count = 0
				return
			}
		case token.Eof:
			return
		}
		p.next()
	}
}
