package resolver

import (
	"github.com/fieldbook/intrusive/ast"
)

// Names is the set of identifier names used anywhere in a program,
// including the temporaries generated so far.
type Names struct {
	set map[string]struct{}
}

func NewNames() *Names {
	return &Names{set: make(map[string]struct{})}
}

func (n *Names) Has(name string) bool {
	_, ok := n.set[name]
	return ok
}

func (n *Names) Add(name string) {
	n.set[name] = struct{}{}
}

type collector struct {
	ast.NoopVisitor
	names *Names
}

// Collect returns every identifier name appearing in node: bindings,
// references and non-computed property names alike.
func Collect(node ast.VisitableNode) *Names {
	c := &collector{names: NewNames()}
	c.V = c
	node.VisitWith(c)
	return c.names
}

func (c *collector) VisitIdentifier(n *ast.Identifier) {
	c.names.Add(n.Name)
}
