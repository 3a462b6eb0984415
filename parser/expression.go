package parser

import (
	"strconv"
	"strings"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	literal := p.currentString()
	idx := p.currentOffset()
	p.expect(token.Identifier)
	return &ast.Identifier{Idx: idx, Name: literal}
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier:
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.String:
		parsedLiteral := p.currentString()
		raw := p.token.Raw(p.scanner)
		p.next()
		return &ast.Expression{Expr: &ast.StringLiteral{Idx: idx, Value: parsedLiteral, Raw: raw}}
	case token.Number:
		raw := p.token.Raw(p.scanner)
		value, err := parseNumberLiteral(raw)
		if err != nil {
			p.errorf("%s", err.Error())
		}
		p.next()
		return &ast.Expression{Expr: &ast.NumberLiteral{Idx: idx, Value: value, Raw: raw}}
	case token.LeftBrace:
		return &ast.Expression{Expr: p.parseObjectLiteral()}
	case token.LeftBracket:
		return &ast.Expression{Expr: p.parseArrayLiteral()}
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.This:
		p.next()
		return &ast.Expression{Expr: &ast.ThisExpression{Idx: idx}}
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false)}
	}

	p.errorUnexpectedToken(p.currentKind())
	p.nextStatement()
	return p.invalidExpression(idx)
}

// invalidExpression stands in for an expression that failed to parse so the
// tree stays well formed while errors are collected.
func (p *parser) invalidExpression(idx ast.Idx) *ast.Expression {
	return &ast.Expression{Expr: &ast.Identifier{Idx: idx}}
}

func parseNumberLiteral(literal string) (float64, error) {
	literal = strings.ReplaceAll(literal, "_", "")
	if len(literal) > 2 && literal[0] == '0' {
		base := 0
		switch literal[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			value, err := strconv.ParseUint(literal[2:], base, 64)
			if err != nil {
				return 0, &strconv.NumError{Func: "parseNumberLiteral", Num: literal, Err: strconv.ErrSyntax}
			}
			return float64(value), nil
		}
	}
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}

func (p *parser) parseParenthesisedExpression() *ast.Expression {
	p.expect(token.LeftParenthesis)
	noIn := p.noIn
	p.noIn = false
	expr := p.parseExpression()
	p.noIn = noIn
	p.expect(token.RightParenthesis)
	return expr
}

func (p *parser) parseObjectPropertyKey() (*ast.Expression, bool) {
	idx := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftBracket:
		p.next()
		key := p.parseAssignmentExpression()
		p.expect(token.RightBracket)
		return key, true
	case kind == token.String, kind == token.Number:
		return p.parsePrimaryExpression(), false
	case token.ID(kind):
		name := p.currentString()
		p.next()
		return &ast.Expression{Expr: &ast.Identifier{Idx: idx, Name: name}}, false
	}
	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return p.invalidExpression(idx), false
}

func (p *parser) parseObjectProperty() ast.Property {
	if p.currentKind() == token.Identifier {
		switch p.peek().Kind {
		case token.Comma, token.RightBrace:
			return ast.Property{Prop: &ast.PropertyShort{Name: p.parseIdentifier()}}
		}
	}

	key, computed := p.parseObjectPropertyKey()
	if p.currentKind() == token.LeftParenthesis {
		fn := &ast.FunctionLiteral{Function: key.Idx0()}
		p.parseFunctionRest(fn)
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Type:     ast.PropertyKindMethod,
			Value:    &ast.Expression{Expr: fn},
			Computed: computed,
		}}
	}

	p.expect(token.Colon)
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:      key,
		Type:     ast.PropertyKindValue,
		Value:    p.parseAssignmentExpression(),
		Computed: computed,
	}}
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	var value ast.Properties
	idx0 := p.expect(token.LeftBrace)
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		value = append(value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	idx1 := p.expect(token.RightBrace)

	return &ast.ObjectLiteral{
		LeftBrace:  idx0,
		RightBrace: idx1,
		Value:      value,
	}
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	idx0 := p.expect(token.LeftBracket)
	var value ast.Expressions
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		value = append(value, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	idx1 := p.expect(token.RightBracket)

	return &ast.ArrayLiteral{
		LeftBracket:  idx0,
		RightBracket: idx1,
		Value:        value,
	}
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	idx0 = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		argumentList = append(argumentList, *p.parseAssignmentExpression())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left *ast.Expression) *ast.Expression {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	p.expect(token.Period)

	idx := p.currentOffset()
	if !token.ID(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		return p.invalidExpression(idx)
	}
	name := p.currentString()
	p.next()

	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.Expression{Expr: &ast.Identifier{Idx: idx, Name: name}},
	}}
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	p.expect(token.LeftBracket)
	member := p.parseExpression()
	idx1 := p.expect(token.RightBracket)
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:       left,
		Property:     member,
		Computed:     true,
		RightBracket: idx1,
	}}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)

	var callee *ast.Expression
	if p.currentKind() == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
L:
	for {
		switch p.currentKind() {
		case token.Period:
			callee = p.parseDotMember(callee)
		case token.LeftBracket:
			callee = p.parseBracketMember(callee)
		default:
			break L
		}
	}

	node := &ast.NewExpression{New: idx, Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		argumentList, idx0, idx1 := p.parseArgumentList()
		node.ArgumentList = argumentList
		node.LeftParenthesis = idx0
		node.RightParenthesis = idx1
	}
	return &ast.Expression{Expr: node}
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

L:
	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		default:
			break L
		}
	}

	return left
}

func isAssignmentTarget(expr *ast.Expression) bool {
	switch expr.Kind() {
	case ast.KindIdentifier, ast.KindMemberExpression:
		return true
	}
	return false
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !isAssignmentTarget(operand) {
			p.errorf("Invalid left-hand side in assignment")
			p.nextStatement()
			return p.invalidExpression(idx)
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand}}
	default:
		operand := p.parseLeftHandSideExpressionAllowCall()
		if p.currentKind() == token.Increment || p.currentKind() == token.Decrement {
			if p.token.OnNewLine {
				return operand
			}
			tkn := p.currentKind()
			idx := p.currentOffset()
			p.next()
			if !isAssignmentTarget(operand) {
				p.errorf("Invalid left-hand side in assignment")
				p.nextStatement()
				return p.invalidExpression(idx)
			}
			return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand, Postfix: true}}
		}
		return operand
	}
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot,
		token.Delete, token.Void, token.Typeof:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{Operator: tkn, Idx: idx, Operand: p.parseUnaryExpression()}}
	}

	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	lhs := p.parseUnaryExpression()
	for {
		kind := p.currentKind()
		lbp := kindToPrecedence(kind)
		if lbp <= minPrecedence || kind == token.In && p.noIn {
			break
		}
		p.next()

		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		lhs = &ast.Expression{Expr: &ast.BinaryExpression{Operator: kind, Left: lhs, Right: rhs}}
	}
	return lhs
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	left := p.parseBinaryExpressionOrHigher(PrecedenceLowest)

	if p.currentKind() == token.QuestionMark {
		p.next()
		consequent := p.parseAssignmentExpression()
		p.expect(token.Colon)
		return &ast.Expression{Expr: &ast.ConditionalExpression{
			Test:       left,
			Consequent: consequent,
			Alternate:  p.parseAssignmentExpression(),
		}}
	}

	return left
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	start := p.currentOffset()
	left := p.parseConditionalExpression()

	operator := p.currentKind()
	if !operator.IsAssign() {
		return left
	}
	if !isAssignmentTarget(left) {
		p.errorf("Invalid left-hand side in assignment")
		p.nextStatement()
		return p.invalidExpression(start)
	}
	p.next()

	return &ast.Expression{Expr: &ast.AssignExpression{
		Operator: operator,
		Left:     left,
		Right:    p.parseAssignmentExpression(),
	}}
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()

	if p.currentKind() == token.Comma {
		sequence := ast.Expressions{*left}
		for p.currentKind() == token.Comma {
			p.next()
			sequence = append(sequence, *p.parseAssignmentExpression())
		}
		return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: sequence}}
	}

	return left
}
