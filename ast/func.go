package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement
	}

	ParameterList struct {
		Opening Idx
		List    []*Identifier
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}
