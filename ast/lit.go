package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Value float64

		// Raw is the source spelling; empty for synthesized literals.
		Raw string

		Idx Idx
	}

	StringLiteral struct {
		Value string

		// Raw is the source spelling including quotes; empty for
		// synthesized literals.
		Raw string

		Idx Idx
	}
)

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
