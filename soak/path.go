package soak

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Kind classifies a path component.
type Kind int

const (
	// Plain reads a member: `name`.
	Plain Kind = iota
	// Invoked reads a member and calls it without arguments when it is
	// truthy: `name()`.
	Invoked
	// Accessor asks the object's getter for the member: `@name`.
	Accessor
)

type Component struct {
	Name string
	Kind Kind
}

// Path is a parsed property path. Paths are immutable and shared through
// a process-wide cache.
type Path struct {
	key        string
	Components []Component
}

var ErrInvalidPath = errors.New("soak: invalid path")

// cache holds every path parsed so far, keyed by the path string or by
// the JSON encoding of an array path so the two forms never collide. It
// is never pruned: keys come from path literals in source code, a small
// and fixed set.
var cache sync.Map

// Parse returns the parsed form of path, a dot separated string or a
// list of component strings ([]string, []any or a Lister). A *Path is
// returned unchanged.
func Parse(path any) (*Path, error) {
	if p, ok := path.(*Path); ok {
		return p, nil
	}
	key, names, err := split(path)
	if err != nil {
		return nil, err
	}
	if p, ok := cache.Load(key); ok {
		return p.(*Path), nil
	}
	p := &Path{key: key, Components: make([]Component, len(names))}
	for i, name := range names {
		p.Components[i] = component(name)
	}
	actual, _ := cache.LoadOrStore(key, p)
	return actual.(*Path), nil
}

func (p *Path) String() string { return p.key }

func split(path any) (key string, names []string, err error) {
	switch x := path.(type) {
	case string:
		return x, strings.Split(x, "."), nil
	case []string:
		names = x
	case Lister:
		return split(x.List())
	case []any:
		names = make([]string, len(x))
		for i, v := range x {
			s, ok := v.(string)
			if !ok {
				return "", nil, fmt.Errorf("%w: component %d is %T, not a string", ErrInvalidPath, i, v)
			}
			names[i] = s
		}
	default:
		return "", nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidPath, path)
	}
	b, err := json.Marshal(names)
	if err != nil {
		return "", nil, err
	}
	return string(b), names, nil
}

func component(s string) Component {
	if name, ok := strings.CutSuffix(s, "()"); ok {
		return Component{Name: name, Kind: Invoked}
	}
	if name, ok := strings.CutPrefix(s, "@"); ok {
		return Component{Name: name, Kind: Accessor}
	}
	return Component{Name: s, Kind: Plain}
}

// Run resolves the path against obj. Resolution stops at the first absent
// value, which is returned as is. When args are given or force is set a
// truthy final value is called with args, bound to the object it was read
// from.
func (p *Path) Run(obj any, args []any, force bool) (any, error) {
	cur := obj
	var receiver any
	for _, c := range p.Components {
		if IsAbsent(cur) {
			break
		}
		receiver = cur
		next, err := p.step(c, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if !(force || len(args) > 0) || !Truthy(cur) {
		return cur, nil
	}
	return invoke(cur, receiver, args, p.key)
}

func (p *Path) step(c Component, obj any) (any, error) {
	switch c.Kind {
	case Invoked:
		fn := Lookup(obj, c.Name)
		if !Truthy(fn) {
			return nil, nil
		}
		return invoke(fn, obj, nil, p.key)
	case Accessor:
		if g, ok := obj.(Getter); ok {
			return g.Get(c.Name), nil
		}
		return invoke(Lookup(obj, "get"), obj, []any{c.Name}, p.key)
	}
	return Lookup(obj, c.Name), nil
}
