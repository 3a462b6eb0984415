package parser

type scope struct {
	outer       *scope
	inIteration bool
	inFunction  bool
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer: p.scope,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}
