package parser

import (
	"errors"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/parser/scanner"
	"github.com/fieldbook/intrusive/token"
)

type parser struct {
	token scanner.Token
	str   string

	scanner *scanner.Scanner

	scope *scope
	// noIn stops `in` from being read as an operator in a for head.
	noIn bool

	errors error

	recover struct {
		// Scratch when trying to seek to the next statement, etc.
		idx   ast.Idx
		count int
	}
}

func newParser(src string) *parser {
	p := &parser{
		str: src,
	}
	p.scanner = scanner.NewScanner(src, &p.errors)
	return p
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node. Every syntax error found is
// returned joined; each one is a *Error carrying its source index.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.next()
	program := p.parseProgram()
	p.closeScope()
	if p.errors != nil {
		return nil, positioned(p.errors)
	}
	return program, nil
}

func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:      p.scanner.Checkpoint(),
		tok:    p.token,
		errors: p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.scanner.Next()
	tok := p.scanner.Token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.Value
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

func (p *parser) semicolon() {
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		return
	}
	if p.currentKind() == token.Semicolon {
		p.next()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}

// positioned flattens the joined parse errors, turning lexical errors into
// *Error values.
func positioned(err error) error {
	var list []error
	var walk func(err error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var se *scanner.Error
		if errors.As(err, &se) {
			err = &Error{Idx: se.Start, Message: se.Message}
		}
		list = append(list, err)
	}
	walk(err)
	return errors.Join(list...)
}
