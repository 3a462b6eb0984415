package transform

import (
	"fmt"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/resolver"
)

// MaxRequeue bounds how many times one slot is re-dispatched after its
// node is replaced.
const MaxRequeue = 10000

type handler struct {
	pass string
	fn   Handler
}

type walker struct {
	ast.NoopVisitor

	handlers map[ast.Kind][]handler

	names   *resolver.Names
	scope   *resolver.Scope
	current *Path
	restart *Path

	err error
}

func newWalker(names *resolver.Names, passes []Pass) *walker {
	w := &walker{
		handlers: make(map[ast.Kind][]handler),
		names:    names,
	}
	w.V = w
	for _, pass := range passes {
		for kind, fn := range pass.Handlers {
			w.handlers[kind] = append(w.handlers[kind], handler{pass: pass.Name, fn: fn})
		}
	}
	return w
}

func (w *walker) halted() bool { return w.err != nil || w.restart != nil }

func (w *walker) enter(p *Path) *Path {
	p.Parent = w.current
	if p.Parent != nil {
		p.depth = p.Parent.depth + 1
	}
	p.scope = w.scope
	p.w = w
	w.current = p
	return p
}

func (w *walker) leave(p *Path) { w.current = p.Parent }

// replaced records that p was rewritten while visiting w.current. The
// outermost replaced ancestor is where the walk resumes.
func (w *walker) replaced(p *Path) {
	if p == w.current || !p.isAncestorOf(w.current) {
		return
	}
	if w.restart == nil || p.depth < w.restart.depth {
		w.restart = p
	}
}

// dispatch runs every handler registered for the kind of the node held by
// p, starting over whenever a handler replaces it.
func (w *walker) dispatch(p *Path) {
	for count := 0; ; count++ {
		node := p.Node()
		if count > MaxRequeue {
			w.err = requeueError(node)
			return
		}
		again := false
		for _, h := range w.handlers[node.Kind()] {
			if err := h.fn(p); err != nil {
				w.err = withPass(err, h.pass)
				return
			}
			if w.restart != nil {
				return
			}
			if p.Node() != node {
				again = true
				break
			}
		}
		if !again {
			return
		}
	}
}

// visit dispatches p and walks the children of its node, resuming at p
// whenever a descendant replaces it.
func (w *walker) visit(p *Path, children func()) {
	w.enter(p)
	defer w.leave(p)
	for count := 0; ; count++ {
		if count > MaxRequeue {
			w.err = requeueError(p.Node())
			return
		}
		w.dispatch(p)
		if w.halted() {
			return
		}
		children()
		if w.err != nil {
			return
		}
		if w.restart != p {
			return
		}
		w.restart = nil
	}
}

func (w *walker) VisitExpression(n *ast.Expression) {
	if w.halted() || n == nil || n.Expr == nil {
		return
	}
	w.visit(&Path{expr: n}, func() { n.Expr.VisitWith(w) })
}

func (w *walker) VisitStatement(n *ast.Statement) {
	if w.halted() || n == nil || n.Stmt == nil {
		return
	}
	w.visit(&Path{stmt: n}, func() { n.Stmt.VisitWith(w) })
}

// VisitFunctionLiteral gives the function body its own scope. Temporaries
// pushed while walking the body are declared at its top, also when the
// walk unwinds to an ancestor, since the rewritten body nodes survive.
func (w *walker) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	if w.halted() {
		return
	}
	outer := w.scope
	w.scope = resolver.NewScope(outer, resolver.ScopeKindFunction, w.names)
	defer func() {
		w.scope.Flush(&n.Body.List)
		w.scope = outer
	}()
	w.VisitStatements(&n.Body.List)
}

func requeueError(node ast.Node) *Error {
	return &Error{
		Message: fmt.Sprintf("%v rewritten more than %d times", node.Kind(), MaxRequeue),
		Idx0:    node.Idx0(),
		Idx1:    node.Idx1(),
	}
}
