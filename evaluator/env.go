package evaluator

// env is a function scope. Blocks do not introduce scopes; a catch clause
// gets one holding only its parameter.
type env struct {
	vars  map[string]any
	outer *env
	this  any
}

func newEnv(outer *env, this any) *env {
	return &env{vars: make(map[string]any), outer: outer, this: this}
}

func (e *env) declare(name string, v any) {
	e.vars[name] = v
}

func (e *env) has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

func (e *env) lookup(name string) (any, bool) {
	for s := e; s != nil; s = s.outer {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// assign sets the nearest binding of name, creating a global when there is
// none.
func (e *env) assign(name string, v any) {
	s := e
	for ; s.outer != nil; s = s.outer {
		if _, ok := s.vars[name]; ok {
			break
		}
	}
	s.vars[name] = v
}
