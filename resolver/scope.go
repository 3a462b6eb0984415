package resolver

import (
	"strconv"
	"strings"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

type ScopeKind int

const (
	ScopeKindProgram ScopeKind = iota
	ScopeKindFunction
)

// Scope is a function or program scope that hands out collision-free
// temporaries and declares them at the top of its body.
type Scope struct {
	parent *Scope

	kind ScopeKind

	names   *Names
	pending []*ast.Identifier
}

func NewScope(parent *Scope, kind ScopeKind, names *Names) *Scope {
	return &Scope{
		parent: parent,
		kind:   kind,
		names:  names,
	}
}

func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) Kind() ScopeKind { return s.kind }

// GenerateUid returns an identifier named after hint that collides with no
// name in the program: `_hint`, then `_hint2`, `_hint3`, ...
func (s *Scope) GenerateUid(hint string) *ast.Identifier {
	base := "_" + uidBase(hint)
	name := base
	for i := 2; s.names.Has(name); i++ {
		name = base + strconv.Itoa(i)
	}
	s.names.Add(name)
	return ast.Ident(name)
}

// uidBase strips leading underscores and trailing digits so that hints
// derived from earlier temporaries do not pile up prefixes.
func uidBase(hint string) string {
	hint = strings.TrimLeft(hint, "_")
	hint = strings.TrimRight(hint, "0123456789")
	if hint == "" {
		return "ref"
	}
	return hint
}

// Push schedules id to be declared with `var` in this scope.
func (s *Scope) Push(id *ast.Identifier) {
	s.pending = append(s.pending, id)
}

// Flush prepends a single `var` declaration of every pushed identifier to
// body and forgets them.
func (s *Scope) Flush(body *ast.Statements) {
	if len(s.pending) == 0 {
		return
	}
	decl := &ast.VariableDeclaration{Token: token.Var}
	for _, id := range s.pending {
		decl.List = append(decl.List, ast.Declarator(id, nil))
	}
	s.pending = nil
	*body = append(ast.Statements{{Stmt: decl}}, *body...)
}
