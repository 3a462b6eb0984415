package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/token"
)

// Generate prints node as JavaScript source.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	if e, ok := s.node.(ast.Expr); ok && s.lead != nil && e == s.lead {
		s.lead = nil
		s.out.WriteString("(")
		defer s.out.WriteString(")")
	}

	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for _, b := range n.Body {
			gen(s.wrap(b.Stmt))
			s.line()
		}
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		s.list(n.Value)
		s.out.WriteString("]")
	case *ast.AssignExpression:
		s.expr(n.Left, precCall)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, precAssign)
	case *ast.BinaryExpression:
		if s.noIn && n.Operator == token.In {
			s.noIn = false
			s.out.WriteString("(")
			defer s.out.WriteString(")")
		}
		prec := precedence(n)
		s.expr(n.Left, prec)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, prec+1)
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.BooleanLiteral:
		s.out.WriteString(strconv.FormatBool(n.Value))
	case *ast.BreakStatement:
		s.out.WriteString("break;")
	case *ast.CallExpression:
		s.callee(n.Callee)
		s.out.WriteString("(")
		s.list(n.ArgumentList)
		s.out.WriteString(")")
	case *ast.ConditionalExpression:
		s.expr(n.Test, precConditional+1)
		s.out.WriteString(" ? ")
		s.expr(n.Consequent, precAssign)
		s.out.WriteString(" : ")
		s.expr(n.Alternate, precAssign)
	case *ast.ContinueStatement:
		s.out.WriteString("continue;")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		switch lead := leftmost(n.Expression.Expr).(type) {
		case *ast.FunctionLiteral, *ast.ObjectLiteral:
			s.lead = lead
		}
		s.expr(n.Expression, precSequence)
		s.lead = nil
		s.out.WriteString(";")
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			s.head(n.Initializer)
		}
		s.out.WriteString(";")
		if n.Test != nil {
			s.out.WriteString(" ")
			s.expr(n.Test, precSequence)
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" ")
			s.expr(n.Update, precSequence)
		}
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		s.head(n.Into)
		s.out.WriteString(" in ")
		s.expr(n.Source, precSequence)
		s.out.WriteString(") ")
		s.body(n.Body)
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.FunctionLiteral:
		s.out.WriteString("function ")
		if n.Name != nil {
			s.out.WriteString(n.Name.Name)
		}
		s.function(n)
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.IfStatement:
		s.out.WriteString("if (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.body(n.Consequent)
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.Stmt.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate.Stmt))
			} else {
				s.body(n.Alternate)
			}
		}
	case *ast.MemberExpression:
		s.callee(n.Object)
		if n.Computed {
			s.out.WriteString("[")
			s.expr(n.Property, precSequence)
			s.out.WriteString("]")
		} else {
			s.out.WriteString(".")
			gen(s.wrap(n.Property.Expr))
		}
	case *ast.NewExpression:
		s.out.WriteString("new ")
		if containsCall(n.Callee.Expr) || precedence(n.Callee.Expr) < precCall {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee.Expr))
			s.out.WriteString(")")
		} else {
			s.callee(n.Callee)
		}
		s.out.WriteString("(")
		s.list(n.ArgumentList)
		s.out.WriteString(")")
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(formatNumber(n.Value))
		}
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for i, p := range n.Value {
			s.lineAndPad()
			gen(s.wrap(p.Prop))
			if i < len(n.Value)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.PropertyKeyed:
		if n.Computed {
			s.out.WriteString("[")
			s.expr(n.Key, precAssign)
			s.out.WriteString("]")
		} else {
			gen(s.wrap(n.Key.Expr))
		}
		if fn, ok := n.Value.Expr.(*ast.FunctionLiteral); ok && n.Type == ast.PropertyKindMethod {
			s.function(fn)
			return
		}
		s.out.WriteString(": ")
		s.expr(n.Value, precAssign)
	case *ast.PropertyShort:
		s.out.WriteString(n.Name.Name)
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.expr(n.Argument, precSequence)
		}
		s.out.WriteString(";")
	case *ast.SequenceExpression:
		s.list(n.Sequence)
	case *ast.StringLiteral:
		if n.Raw != "" {
			s.out.WriteString(n.Raw)
		} else {
			s.out.WriteString(quote(n.Value))
		}
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		s.expr(n.Argument, precSequence)
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" catch ")
			if n.Catch.Parameter != nil {
				s.out.WriteString("(" + n.Catch.Parameter.Name + ") ")
			}
			gen(s.wrap(n.Catch.Body))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.out.WriteString(op)
		if len(op) > 1 || needsSpace(n.Operator, n.Operand.Expr) {
			s.out.WriteString(" ")
		}
		s.expr(n.Operand, precUnary)
	case *ast.UpdateExpression:
		if n.Postfix {
			s.expr(n.Operand, precPostfix)
			s.out.WriteString(n.Operator.String())
		} else {
			s.out.WriteString(n.Operator.String())
			s.expr(n.Operand, precUnary)
		}
	case *ast.VariableDeclaration:
		s.declarators(n)
		s.out.WriteString(";")
	case *ast.VariableDeclarator:
		s.out.WriteString(n.Target.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer, precAssign)
		}
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.body(n.Body)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// callee writes the object of a member expression or the callee of a call.
func (s *state) callee(e *ast.Expression) {
	if _, ok := e.Expr.(*ast.FunctionLiteral); ok {
		s.out.WriteString("(")
		gen(s.wrap(e.Expr))
		s.out.WriteString(")")
		return
	}
	if num, ok := e.Expr.(*ast.NumberLiteral); ok && isBareInteger(num) {
		s.out.WriteString("(")
		gen(s.wrap(num))
		s.out.WriteString(")")
		return
	}
	s.expr(e, precCall)
}

func (s *state) declarators(n *ast.VariableDeclaration) {
	s.out.WriteString(n.Token.String())
	s.out.WriteString(" ")
	for i := range n.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(&n.List[i]))
	}
}

// head writes the first clause of a for statement. A bare `in` there would
// end the clause, so binary `in` expressions are parenthesized.
func (s *state) head(init *ast.ForInit) {
	h := s.wrap(nil)
	h.noIn = true
	if init.Declaration != nil {
		h.declarators(init.Declaration)
		return
	}
	h.expr(init.Expression, precSequence)
}

func (s *state) function(n *ast.FunctionLiteral) {
	s.out.WriteString("(")
	for i, p := range n.ParameterList.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.out.WriteString(p.Name)
	}
	s.out.WriteString(") ")
	body := s.wrap(n.Body)
	body.noIn = false
	gen(body)
}

// isBareInteger reports whether a trailing `.` would be read as a decimal
// point.
func isBareInteger(n *ast.NumberLiteral) bool {
	raw := n.Raw
	if raw == "" {
		raw = formatNumber(n.Value)
	}
	return !strings.ContainsAny(raw, ".eExXoObB")
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote returns a double quoted JavaScript string literal for value.
func quote(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
