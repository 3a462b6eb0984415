// Package evaluator interprets programs in the subset of JavaScript the
// parser accepts. It hosts the runtime the transforms call into, so rewritten
// programs can be run and checked.
package evaluator

import (
	"math"
	"strings"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/ast/ext"
	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/resolver"
	"github.com/fieldbook/intrusive/soak"
	"github.com/fieldbook/intrusive/token"
)

type completionKind int

const (
	completeNormal completionKind = iota
	completeReturn
	completeBreak
	completeContinue
)

// completion is the outcome of a statement. A nil value is an empty
// completion.
type completion struct {
	kind  completionKind
	value any
}

// Interpreter runs programs against a shared global scope.
type Interpreter struct {
	global *env
	ctors  map[string]*Function
}

// New returns an interpreter with the runtime globals installed.
func New() *Interpreter {
	in := &Interpreter{global: newEnv(nil, Undefined{})}
	in.install()
	return in
}

// Set defines a global binding. Host values are converted the same way
// values returned from host functions are.
func (in *Interpreter) Set(name string, v any) {
	in.global.declare(name, fromGo(v))
}

// Get returns a global binding, or Undefined.
func (in *Interpreter) Get(name string) any {
	if v, ok := in.global.lookup(name); ok {
		return v
	}
	return Undefined{}
}

// Run parses and runs src.
func (in *Interpreter) Run(src string) (any, error) {
	program, err := parser.ParseFile(src)
	if err != nil {
		return nil, err
	}
	return in.RunProgram(program)
}

// RunProgram runs program and returns the value of the last expression
// statement evaluated, or Undefined.
func (in *Interpreter) RunProgram(program *ast.Program) (any, error) {
	in.hoist(program.Body, in.global)
	c, err := in.execList(program.Body, in.global)
	if err != nil {
		return nil, err
	}
	if c.value == nil {
		return Undefined{}, nil
	}
	return c.value, nil
}

// Run runs src in a fresh interpreter.
func Run(src string) (any, error) {
	return New().Run(src)
}

func (in *Interpreter) hoist(body ast.Statements, scope *env) {
	decls := resolver.Hoist(body)
	for _, name := range decls.Vars {
		if !scope.has(name) {
			scope.declare(name, Undefined{})
		}
	}
	for _, fn := range decls.Functions {
		scope.declare(fn.Function.Name.Name, in.closure(fn.Function, scope))
	}
}

func (in *Interpreter) closure(lit *ast.FunctionLiteral, scope *env) *Function {
	f := &Function{lit: lit, scope: scope, in: in}
	if lit.Name != nil {
		f.Name = lit.Name.Name
	}
	return f
}

func (in *Interpreter) execList(list ast.Statements, scope *env) (completion, error) {
	var last any
	for i := range list {
		c, err := in.exec(list[i].Stmt, scope)
		if err != nil {
			return completion{}, err
		}
		if c.value != nil {
			last = c.value
		}
		if c.kind != completeNormal {
			return c, nil
		}
	}
	return completion{value: last}, nil
}

func (in *Interpreter) exec(s ast.Stmt, scope *env) (completion, error) {
	switch s := s.(type) {
	case nil, *ast.EmptyStatement, *ast.FunctionDeclaration:
		return completion{}, nil
	case *ast.ExpressionStatement:
		v, err := in.eval(s.Expression, scope)
		return completion{value: v}, err
	case *ast.VariableDeclaration:
		for _, d := range s.List {
			if d.Initializer == nil {
				continue
			}
			v, err := in.eval(d.Initializer, scope)
			if err != nil {
				return completion{}, err
			}
			scope.assign(d.Target.Name, v)
		}
		return completion{}, nil
	case *ast.BlockStatement:
		return in.execList(s.List, scope)
	case *ast.IfStatement:
		test, err := in.eval(s.Test, scope)
		if err != nil {
			return completion{}, err
		}
		if toBoolean(test) {
			return in.exec(s.Consequent.Stmt, scope)
		}
		if s.Alternate != nil {
			return in.exec(s.Alternate.Stmt, scope)
		}
		return completion{}, nil
	case *ast.WhileStatement:
		return in.loop(s.Test, nil, s.Body, scope)
	case *ast.ForStatement:
		if init := s.Initializer; init != nil {
			var err error
			if init.Declaration != nil {
				_, err = in.exec(init.Declaration, scope)
			} else {
				_, err = in.eval(init.Expression, scope)
			}
			if err != nil {
				return completion{}, err
			}
		}
		return in.loop(s.Test, s.Update, s.Body, scope)
	case *ast.ForInStatement:
		return in.execForIn(s, scope)
	case *ast.ReturnStatement:
		var v any = Undefined{}
		if s.Argument != nil {
			var err error
			if v, err = in.eval(s.Argument, scope); err != nil {
				return completion{}, err
			}
		}
		return completion{kind: completeReturn, value: v}, nil
	case *ast.ThrowStatement:
		v, err := in.eval(s.Argument, scope)
		if err != nil {
			return completion{}, err
		}
		return completion{}, &Exception{Value: v}
	case *ast.BreakStatement:
		return completion{kind: completeBreak}, nil
	case *ast.ContinueStatement:
		return completion{kind: completeContinue}, nil
	case *ast.TryStatement:
		return in.execTry(s, scope)
	}
	return completion{}, typeErrorf("unsupported statement %T", s)
}

// loop runs body while test holds, evaluating update after each pass. A nil
// test always holds.
func (in *Interpreter) loop(test, update *ast.Expression, body *ast.Statement, scope *env) (completion, error) {
	var last any
	for {
		if test != nil {
			v, err := in.eval(test, scope)
			if err != nil {
				return completion{}, err
			}
			if !toBoolean(v) {
				break
			}
		}
		c, err := in.exec(body.Stmt, scope)
		if err != nil {
			return completion{}, err
		}
		if c.value != nil {
			last = c.value
		}
		if c.kind == completeBreak {
			break
		}
		if c.kind == completeReturn {
			return c, nil
		}
		if update != nil {
			if _, err := in.eval(update, scope); err != nil {
				return completion{}, err
			}
		}
	}
	return completion{value: last}, nil
}

// execForIn visits the keys of the source as they are when the loop
// starts. Keys deleted during the loop are skipped.
func (in *Interpreter) execForIn(s *ast.ForInStatement, scope *env) (completion, error) {
	src, err := in.eval(s.Source, scope)
	if err != nil {
		return completion{}, err
	}
	var last any
	for _, key := range enumerate(src) {
		if o, ok := src.(*Object); ok && !o.Has(key) {
			continue
		}
		if d := s.Into.Declaration; d != nil {
			scope.assign(d.List[0].Target.Name, key)
		} else if err := in.store(s.Into.Expression, key, scope); err != nil {
			return completion{}, err
		}
		c, err := in.exec(s.Body.Stmt, scope)
		if err != nil {
			return completion{}, err
		}
		if c.value != nil {
			last = c.value
		}
		if c.kind == completeBreak {
			break
		}
		if c.kind == completeReturn {
			return c, nil
		}
	}
	return completion{value: last}, nil
}

func (in *Interpreter) execTry(s *ast.TryStatement, scope *env) (completion, error) {
	c, err := in.execList(s.Body.List, scope)
	if err != nil && s.Catch != nil {
		catchScope := scope
		if s.Catch.Parameter != nil {
			catchScope = newEnv(scope, scope.this)
			catchScope.declare(s.Catch.Parameter.Name, in.thrown(err))
		}
		c, err = in.execList(s.Catch.Body.List, catchScope)
	}
	if s.Finally != nil {
		f, ferr := in.execList(s.Finally.List, scope)
		if ferr != nil {
			return completion{}, ferr
		}
		if f.kind != completeNormal {
			return f, nil
		}
	}
	return c, err
}

func (in *Interpreter) eval(e *ast.Expression, scope *env) (any, error) {
	switch n := e.Expr.(type) {
	case *ast.Identifier:
		if v, ok := scope.lookup(n.Name); ok {
			return v, nil
		}
		return nil, &ReferenceError{Name: n.Name}
	case *ast.NumberLiteral:
		return n.Value, nil
	case *ast.StringLiteral:
		return n.Value, nil
	case *ast.BooleanLiteral:
		return n.Value, nil
	case *ast.NullLiteral:
		return Null{}, nil
	case *ast.ThisExpression:
		return scope.this, nil
	case *ast.FunctionLiteral:
		return in.closure(n, scope), nil
	case *ast.ArrayLiteral:
		values, err := in.evalList(n.Value, scope)
		return &Array{Values: values}, err
	case *ast.ObjectLiteral:
		return in.evalObject(n, scope)
	case *ast.SequenceExpression:
		var v any = Undefined{}
		for i := range n.Sequence {
			var err error
			if v, err = in.eval(&n.Sequence[i], scope); err != nil {
				return nil, err
			}
		}
		return v, nil
	case *ast.ConditionalExpression:
		test, err := in.eval(n.Test, scope)
		if err != nil {
			return nil, err
		}
		if toBoolean(test) {
			return in.eval(n.Consequent, scope)
		}
		return in.eval(n.Alternate, scope)
	case *ast.MemberExpression:
		obj, key, err := in.reference(n, scope)
		if err != nil {
			return nil, err
		}
		return in.member(obj, key)
	case *ast.CallExpression:
		return in.evalCall(n, scope)
	case *ast.NewExpression:
		return in.evalNew(n, scope)
	case *ast.UnaryExpression:
		return in.evalUnary(n, scope)
	case *ast.UpdateExpression:
		return in.evalUpdate(n, scope)
	case *ast.BinaryExpression:
		return in.evalBinary(n, scope)
	case *ast.AssignExpression:
		return in.evalAssign(n, scope)
	}
	return nil, typeErrorf("unsupported expression %T", e.Expr)
}

func (in *Interpreter) evalList(list ast.Expressions, scope *env) ([]any, error) {
	values := make([]any, len(list))
	for i := range list {
		v, err := in.eval(&list[i], scope)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (in *Interpreter) evalObject(n *ast.ObjectLiteral, scope *env) (any, error) {
	o := NewObject()
	for _, p := range n.Value {
		switch p := p.Prop.(type) {
		case *ast.PropertyShort:
			v, ok := scope.lookup(p.Name.Name)
			if !ok {
				return nil, &ReferenceError{Name: p.Name.Name}
			}
			o.Set(p.Name.Name, v)
		case *ast.PropertyKeyed:
			key, err := in.propertyName(p.Key, p.Computed, scope)
			if err != nil {
				return nil, err
			}
			v, err := in.eval(p.Value, scope)
			if err != nil {
				return nil, err
			}
			o.Set(key, v)
		}
	}
	return o, nil
}

func (in *Interpreter) propertyName(key *ast.Expression, computed bool, scope *env) (string, error) {
	if !computed {
		switch k := key.Expr.(type) {
		case *ast.Identifier:
			return k.Name, nil
		case *ast.StringLiteral:
			return k.Value, nil
		case *ast.NumberLiteral:
			return propertyKey(k.Value), nil
		}
	}
	v, err := in.eval(key, scope)
	if err != nil {
		return "", err
	}
	return propertyKey(v), nil
}

// reference evaluates the object and key of a member expression.
func (in *Interpreter) reference(n *ast.MemberExpression, scope *env) (any, string, error) {
	obj, err := in.eval(n.Object, scope)
	if err != nil {
		return nil, "", err
	}
	if name, ok := ext.PropertyName(n); ok {
		return obj, name, nil
	}
	key, err := in.propertyName(n.Property, true, scope)
	return obj, key, err
}

func (in *Interpreter) member(obj any, key string) (any, error) {
	if soak.IsAbsent(obj) {
		return nil, typeErrorf("Cannot read properties of %s (reading '%s')", toString(obj), key)
	}
	switch o := obj.(type) {
	case *Object:
		return o.Member(key), nil
	case *Array:
		return o.Member(key), nil
	case *Function:
		return o.Member(key), nil
	case string:
		if key == "length" {
			return float64(len(o)), nil
		}
		if i, ok := arrayIndex(key); ok && i < len(o) {
			return o[i : i+1], nil
		}
		return Undefined{}, nil
	case float64, bool:
		return Undefined{}, nil
	}
	switch key {
	case "call", "apply", "bind":
		if f, ok := toFunction(obj); ok {
			return f.Member(key), nil
		}
	}
	return fromGo(soak.Lookup(obj, key)), nil
}

func (in *Interpreter) setMember(obj any, key string, v any) error {
	switch o := obj.(type) {
	case *Object:
		o.Set(key, v)
		return nil
	case *Array:
		if o.set(key, v) {
			return nil
		}
	case *Function:
		o.Set(key, v)
		return nil
	}
	if soak.IsAbsent(obj) {
		return typeErrorf("Cannot set properties of %s (setting '%s')", toString(obj), key)
	}
	return typeErrorf("Cannot set property '%s' of %s", key, typeOf(obj))
}

func (in *Interpreter) evalCall(n *ast.CallExpression, scope *env) (any, error) {
	var fn, this any = nil, Undefined{}
	if m, ok := n.Callee.Expr.(*ast.MemberExpression); ok {
		obj, key, err := in.reference(m, scope)
		if err != nil {
			return nil, err
		}
		if fn, err = in.member(obj, key); err != nil {
			return nil, err
		}
		this = obj
	} else {
		var err error
		if fn, err = in.eval(n.Callee, scope); err != nil {
			return nil, err
		}
	}
	args, err := in.evalList(n.ArgumentList, scope)
	if err != nil {
		return nil, err
	}
	f, ok := toFunction(fn)
	if !ok {
		return nil, typeErrorf("%s is not a function", generator.Generate(n.Callee.Expr))
	}
	return f.Call(this, args)
}

func (in *Interpreter) evalNew(n *ast.NewExpression, scope *env) (any, error) {
	callee, err := in.eval(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	args, err := in.evalList(n.ArgumentList, scope)
	if err != nil {
		return nil, err
	}
	f, ok := callee.(*Function)
	if !ok {
		return nil, typeErrorf("%s is not a constructor", generator.Generate(n.Callee.Expr))
	}
	if f.construct != nil {
		return f.construct(args)
	}
	o := NewObject()
	o.ctor = f
	v, err := f.Call(o, args)
	if err != nil {
		return nil, err
	}
	if isObject(v) {
		return v, nil
	}
	return o, nil
}

func (in *Interpreter) evalUnary(n *ast.UnaryExpression, scope *env) (any, error) {
	switch n.Operator {
	case token.Typeof:
		if id, ok := n.Operand.Expr.(*ast.Identifier); ok {
			v, ok := scope.lookup(id.Name)
			if !ok {
				return "undefined", nil
			}
			return typeOf(v), nil
		}
	case token.Delete:
		m, ok := n.Operand.Expr.(*ast.MemberExpression)
		if !ok {
			return true, nil
		}
		obj, key, err := in.reference(m, scope)
		if err != nil {
			return nil, err
		}
		switch o := obj.(type) {
		case *Object:
			o.Delete(key)
		case *Function:
			if o.props != nil {
				o.props.Delete(key)
			}
		}
		return true, nil
	}

	v, err := in.eval(n.Operand, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case token.Typeof:
		return typeOf(v), nil
	case token.Void:
		return Undefined{}, nil
	case token.Not:
		return !toBoolean(v), nil
	case token.Minus:
		return -toNumber(v), nil
	case token.Plus:
		return toNumber(v), nil
	case token.BitwiseNot:
		return float64(^toInt32(v)), nil
	}
	return nil, typeErrorf("unsupported unary operator %s", n.Operator)
}

func (in *Interpreter) evalUpdate(n *ast.UpdateExpression, scope *env) (any, error) {
	old, err := in.eval(n.Operand, scope)
	if err != nil {
		return nil, err
	}
	before := toNumber(old)
	after := before + 1
	if n.Operator == token.Decrement {
		after = before - 1
	}
	if err := in.store(n.Operand, after, scope); err != nil {
		return nil, err
	}
	if n.Postfix {
		return before, nil
	}
	return after, nil
}

func (in *Interpreter) evalAssign(n *ast.AssignExpression, scope *env) (any, error) {
	if n.Operator == token.Assign {
		v, err := in.eval(n.Right, scope)
		if err != nil {
			return nil, err
		}
		return v, in.store(n.Left, v, scope)
	}
	left, err := in.eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(n.Right, scope)
	if err != nil {
		return nil, err
	}
	v := arithmetic(n.Operator.Binary(), left, right)
	return v, in.store(n.Left, v, scope)
}

// store assigns v to the target expression.
func (in *Interpreter) store(target *ast.Expression, v any, scope *env) error {
	switch t := target.Expr.(type) {
	case *ast.Identifier:
		scope.assign(t.Name, v)
		return nil
	case *ast.MemberExpression:
		obj, key, err := in.reference(t, scope)
		if err != nil {
			return err
		}
		return in.setMember(obj, key, v)
	}
	return typeErrorf("invalid assignment target %s", generator.Generate(target.Expr))
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpression, scope *env) (any, error) {
	left, err := in.eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case token.LogicalAnd:
		if !toBoolean(left) {
			return left, nil
		}
		return in.eval(n.Right, scope)
	case token.LogicalOr:
		if toBoolean(left) {
			return left, nil
		}
		return in.eval(n.Right, scope)
	}

	right, err := in.eval(n.Right, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case token.Equal:
		return looseEquals(left, right), nil
	case token.NotEqual:
		return !looseEquals(left, right), nil
	case token.StrictEqual:
		return strictEquals(left, right), nil
	case token.StrictNotEqual:
		return !strictEquals(left, right), nil
	case token.Less:
		return compare(func(c int) bool { return c < 0 }, left, right), nil
	case token.Greater:
		return compare(func(c int) bool { return c > 0 }, left, right), nil
	case token.LessOrEqual:
		return compare(func(c int) bool { return c <= 0 }, left, right), nil
	case token.GreaterOrEqual:
		return compare(func(c int) bool { return c >= 0 }, left, right), nil
	case token.In:
		c, ok := right.(soak.Container)
		if !ok || !isObject(right) {
			return nil, typeErrorf("Cannot use 'in' operator to search for '%s' in %s", toString(left), toString(right))
		}
		return c.Has(propertyKey(left)), nil
	case token.InstanceOf:
		f, ok := right.(*Function)
		if !ok {
			return nil, typeErrorf("Right-hand side of 'instanceof' is not callable")
		}
		o, ok := left.(*Object)
		return ok && o.ctor == f, nil
	case token.Plus, token.Minus, token.Multiply, token.Slash, token.Remainder:
		return arithmetic(n.Operator, left, right), nil
	}
	return nil, typeErrorf("unsupported binary operator %s", n.Operator)
}

func arithmetic(op token.Token, left, right any) any {
	switch op {
	case token.Plus:
		_, ls := left.(string)
		_, rs := right.(string)
		if ls || rs || isObject(left) || isObject(right) {
			return strings.Join([]string{toString(left), toString(right)}, "")
		}
		return toNumber(left) + toNumber(right)
	case token.Minus:
		return toNumber(left) - toNumber(right)
	case token.Multiply:
		return toNumber(left) * toNumber(right)
	case token.Slash:
		return toNumber(left) / toNumber(right)
	case token.Remainder:
		return math.Mod(toNumber(left), toNumber(right))
	}
	return math.NaN()
}
