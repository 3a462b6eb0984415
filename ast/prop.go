package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindMethod PropertyKind = "method"
)

type (
	Properties []Property

	Property struct {
		Prop Prop
	}

	Prop interface {
		VisitableNode
		_property()
	}

	// PropertyShort is the `{ name }` shorthand.
	PropertyShort struct {
		Name *Identifier
	}

	PropertyKeyed struct {
		Key      *Expression
		Type     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
