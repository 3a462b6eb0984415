package transform

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/resolver"
)

// Handler inspects the node held by p and may rewrite it.
type Handler func(p *Path) error

// Pass is a named set of handlers keyed by the kind of node they
// inspect.
type Pass struct {
	Name     string
	Handlers map[ast.Kind]Handler
}

var ErrUnknownPass = errors.New("unknown pass")

// Registry maps pass names to passes. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	passes map[string]Pass
	order  []string
}

// NewRegistry registers passes in order. Registering two passes with the
// same name panics.
func NewRegistry(passes ...Pass) *Registry {
	r := &Registry{passes: make(map[string]Pass, len(passes))}
	for _, pass := range passes {
		if _, dup := r.passes[pass.Name]; dup {
			panic(fmt.Sprintf("transform: pass %q registered twice", pass.Name))
		}
		r.passes[pass.Name] = pass
		r.order = append(r.order, pass.Name)
	}
	return r
}

func (r *Registry) Lookup(name string) (Pass, bool) {
	pass, ok := r.passes[name]
	return pass, ok
}

// Names returns the registered pass names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.passes)
	slices.Sort(names)
	return names
}

// Select returns the named passes, or every pass in registration order
// when no name is given.
func (r *Registry) Select(names ...string) ([]Pass, error) {
	if len(names) == 0 {
		names = r.order
	}
	passes := make([]Pass, 0, len(names))
	for _, name := range names {
		pass, ok := r.passes[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownPass, name)
		}
		passes = append(passes, pass)
	}
	return passes, nil
}

// Run applies passes to program in a single walk. Handlers of different
// passes registered for the same kind run in the order the passes are
// given. Temporaries requested through Path.Scope are declared at the top
// of their function body, or of the program. The first error aborts the
// walk and is returned.
func Run(program *ast.Program, passes ...Pass) error {
	names := resolver.Collect(program)
	w := newWalker(names, passes)
	w.scope = resolver.NewScope(nil, resolver.ScopeKindProgram, names)
	w.VisitStatements(&program.Body)
	if w.err != nil {
		return w.err
	}
	w.scope.Flush(&program.Body)
	return nil
}
