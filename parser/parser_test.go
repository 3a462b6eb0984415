package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Expr
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.Stmt) ast.Expr {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Expr
}

// ===========================================================================
// AST STRUCTURE
// ===========================================================================

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "var a = [1, 'two', true, null]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 4 {
		t.Fatalf("array length = %d; want 4", got)
	}
	if n, ok := arr.Value[0].Expr.(*ast.NumberLiteral); !ok || n.Value != 1 {
		t.Errorf("arr[0] = %#v; want number 1", arr.Value[0].Expr)
	}
	if s, ok := arr.Value[1].Expr.(*ast.StringLiteral); !ok || s.Value != "two" || s.Raw != "'two'" {
		t.Errorf("arr[1] = %#v; want string 'two'", arr.Value[1].Expr)
	}
	if b, ok := arr.Value[2].Expr.(*ast.BooleanLiteral); !ok || !b.Value {
		t.Errorf("arr[2] = %#v; want true", arr.Value[2].Expr)
	}
	if arr.Value[3].Kind() != ast.KindNullLiteral {
		t.Errorf("arr[3] kind = %v; want NullLiteral", arr.Value[3].Kind())
	}
}

func TestArgumentListAST(t *testing.T) {
	p := mustParse(t, "f(1, 'a', g(2, 3))")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)

	if got := len(call.ArgumentList); got != 3 {
		t.Fatalf("arg count = %d; want 3", got)
	}
	inner := call.ArgumentList[2].Expr.(*ast.CallExpression)
	if got := len(inner.ArgumentList); got != 2 {
		t.Errorf("inner arg count = %d; want 2", got)
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "IfUnset, a = 1, b.c = 2")
	seq := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression)

	if got := len(seq.Sequence); got != 3 {
		t.Fatalf("sequence length = %d; want 3", got)
	}
	if id, ok := seq.Sequence[0].Expr.(*ast.Identifier); !ok || id.Name != "IfUnset" {
		t.Errorf("seq[0] = %#v; want IfUnset", seq.Sequence[0].Expr)
	}
	for i := 1; i < 3; i++ {
		if seq.Sequence[i].Kind() != ast.KindAssignExpression {
			t.Errorf("seq[%d] kind = %v; want AssignExpression", i, seq.Sequence[i].Kind())
		}
	}
}

func TestMemberExpressionAST(t *testing.T) {
	p := mustParse(t, "a.b['c'].if")
	outer := exprOf(firstStmt(p, 0)).(*ast.MemberExpression)

	if outer.Computed {
		t.Errorf("outer member should not be computed")
	}
	if id := outer.Property.Expr.(*ast.Identifier); id.Name != "if" {
		t.Errorf("outer property = %q; want keyword name if", id.Name)
	}
	middle := outer.Object.Expr.(*ast.MemberExpression)
	if !middle.Computed {
		t.Errorf("middle member should be computed")
	}
	if s := middle.Property.Expr.(*ast.StringLiteral); s.Value != "c" {
		t.Errorf("middle property = %q; want c", s.Value)
	}
}

func TestSoakMarkerAST(t *testing.T) {
	p := mustParse(t, "+~obj.foo")
	plus := exprOf(firstStmt(p, 0)).(*ast.UnaryExpression)
	if plus.Operator != token.Plus {
		t.Fatalf("outer operator = %v; want +", plus.Operator)
	}
	tilde := plus.Operand.Expr.(*ast.UnaryExpression)
	if tilde.Operator != token.BitwiseNot {
		t.Fatalf("inner operator = %v; want ~", tilde.Operator)
	}
	if tilde.Operand.Kind() != ast.KindMemberExpression {
		t.Errorf("marked operand kind = %v; want MemberExpression", tilde.Operand.Kind())
	}
}

func TestPostfixIfAST(t *testing.T) {
	p := mustParse(t, "function f(x) { return x, If(x > 1) }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration).Function
	ret := fn.Body.List[0].Stmt.(*ast.ReturnStatement)
	seq := ret.Argument.Expr.(*ast.SequenceExpression)
	call := seq.Sequence[1].Expr.(*ast.CallExpression)
	if id := call.Callee.Expr.(*ast.Identifier); id.Name != "If" {
		t.Errorf("callee = %q; want If", id.Name)
	}
	if call.ArgumentList[0].Kind() != ast.KindBinaryExpression {
		t.Errorf("condition kind = %v; want BinaryExpression", call.ArgumentList[0].Kind())
	}
}

func TestBareReturnAST(t *testing.T) {
	p := mustParse(t, "function f() {\n return\n x }")
	body := firstStmt(p, 0).(*ast.FunctionDeclaration).Function.Body
	if got := len(body.List); got != 2 {
		t.Fatalf("body length = %d; want 2", got)
	}
	if ret := body.List[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return across a newline should be bare")
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, "x = {a: 1, 'b': 2, [c]: 3, d, e() {}}")
	obj := exprOf(firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.ObjectLiteral)

	if got := len(obj.Value); got != 5 {
		t.Fatalf("property count = %d; want 5", got)
	}
	if k := obj.Value[2].Prop.(*ast.PropertyKeyed); !k.Computed {
		t.Errorf("third property should be computed")
	}
	if _, ok := obj.Value[3].Prop.(*ast.PropertyShort); !ok {
		t.Errorf("fourth property should be shorthand")
	}
	if k := obj.Value[4].Prop.(*ast.PropertyKeyed); k.Type != ast.PropertyKindMethod {
		t.Errorf("fifth property kind = %v; want method", k.Type)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"1.5", 1.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"0x1F", 31},
		{"0b101", 5},
		{"0o17", 15},
		{"1_000", 1000},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.src)
		n := exprOf(firstStmt(p, 0)).(*ast.NumberLiteral)
		if n.Value != tt.want {
			t.Errorf("%s = %v; want %v", tt.src, n.Value, tt.want)
		}
		if n.Raw != tt.src {
			t.Errorf("raw = %q; want %q", n.Raw, tt.src)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`'a\nb'`, "a\nb"},
		{`"\x41B\u{43}"`, "ABC"},
		{`'it\'s'`, "it's"},
		{`"tab\there"`, "tab\there"},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.src)
		s := exprOf(firstStmt(p, 0)).(*ast.StringLiteral)
		if s.Value != tt.want {
			t.Errorf("%s = %q; want %q", tt.src, s.Value, tt.want)
		}
	}
}

func TestPositions(t *testing.T) {
	src := "var a = 1;\nfoo.bar;"
	p := mustParse(t, src)
	member := exprOf(firstStmt(p, 1)).(*ast.MemberExpression)

	file := parser.NewFile(src)
	got := []parser.Position{
		file.Position(member.Idx0()),
		file.Position(member.Property.Idx0()),
		file.Position(0),
	}
	want := []parser.Position{{Line: 2, Column: 1}, {Line: 2, Column: 5}, {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if src[member.Idx0()-1:member.Idx1()-1] != "foo.bar" {
		t.Errorf("member span = %q", src[member.Idx0()-1:member.Idx1()-1])
	}
}

func TestForStatementAST(t *testing.T) {
	p := mustParse(t, "for (var i = 0; i < 3; i++) x += i;")
	loop := firstStmt(p, 0).(*ast.ForStatement)

	decl := loop.Initializer.Declaration
	if decl == nil || decl.Token != token.Var || decl.List[0].Target.Name != "i" {
		t.Fatalf("initializer = %+v; want var i", loop.Initializer)
	}
	if b, ok := loop.Test.Expr.(*ast.BinaryExpression); !ok || b.Operator != token.Less {
		t.Errorf("test = %T; want i < 3", loop.Test.Expr)
	}
	if u, ok := loop.Update.Expr.(*ast.UpdateExpression); !ok || !u.Postfix {
		t.Errorf("update = %T; want i++", loop.Update.Expr)
	}
	if _, ok := loop.Body.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("body = %T; want an expression statement", loop.Body.Stmt)
	}

	p = mustParse(t, "for (;;) {}")
	loop = firstStmt(p, 0).(*ast.ForStatement)
	if loop.Initializer != nil || loop.Test != nil || loop.Update != nil {
		t.Errorf("empty clauses = %+v", loop)
	}
}

func TestForInStatementAST(t *testing.T) {
	p := mustParse(t, "for (var k in obj) {} for (o.k in obj) {} for (x = ('a' in o);;) {}")

	first := firstStmt(p, 0).(*ast.ForInStatement)
	if d := first.Into.Declaration; d == nil || d.List[0].Target.Name != "k" {
		t.Errorf("binding = %+v; want var k", first.Into)
	}
	if id, ok := first.Source.Expr.(*ast.Identifier); !ok || id.Name != "obj" {
		t.Errorf("source = %T; want obj", first.Source.Expr)
	}

	second := firstStmt(p, 1).(*ast.ForInStatement)
	if _, ok := second.Into.Expression.Expr.(*ast.MemberExpression); !ok {
		t.Errorf("binding = %T; want a member target", second.Into.Expression.Expr)
	}

	// A parenthesized `in` is an operator; a bare one ends the head.
	third := firstStmt(p, 2).(*ast.ForStatement)
	assign := third.Initializer.Expression.Expr.(*ast.AssignExpression)
	if b, ok := assign.Right.Expr.(*ast.BinaryExpression); !ok || b.Operator != token.In {
		t.Errorf("initializer right = %T", assign.Right.Expr)
	}
}

// ===========================================================================
// ERRORS
// ===========================================================================

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		message string
		idx     ast.Idx
	}{
		{"unexpected token", "a = ;", "Unexpected token ;", 5},
		{"unexpected end", "f(", "Unexpected end of input", 3},
		{"illegal return", "return 1", "Illegal return statement", 1},
		{"illegal break", "break;", "Illegal break statement", 1},
		{"invalid assignment target", "f() = 1", "Invalid left-hand side in assignment", 5},
		{"unterminated string", "x = 'abc", "Unterminated string", 5},
		{"invalid character", "x = #", "Invalid character `#`", 5},
		{"missing catch", "try {}", "Missing catch or finally after try", 1},
		{"reserved word", "class", "Unexpected reserved word", 1},
		{"for-in initializer", "for (var a = 1 in b) {}", "Invalid left-hand side in for-in loop", 1},
		{"for-in sequence", "for (a, b in c) {}", "Invalid left-hand side in for-in loop", 1},
		{"continue outside loop", "for (;;) {} continue;", "Illegal continue statement", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseFile(tt.src)
			if err == nil {
				t.Fatalf("ParseFile(%q) succeeded; want error", tt.src)
			}
			errs := parser.Errors(err)
			if len(errs) == 0 {
				t.Fatalf("no positioned errors in %v", err)
			}
			first := errs[0]
			if first.Message != tt.message || first.Idx != tt.idx {
				t.Errorf("first error = %q at %d; want %q at %d", first.Message, first.Idx, tt.message, tt.idx)
			}
		})
	}
}

func TestErrorsAreCollected(t *testing.T) {
	_, err := parser.ParseFile("a = ;\nvar b = ;")
	errs := parser.Errors(err)
	if len(errs) < 2 {
		t.Fatalf("got %d errors; want at least 2: %v", len(errs), err)
	}
	if !strings.Contains(err.Error(), "Unexpected token ;") {
		t.Errorf("error text %q", err.Error())
	}
}

// ===========================================================================
// ROUND TRIP
// ===========================================================================

func TestRoundTripReparses(t *testing.T) {
	sources := []string{
		"var x = obj == null ? undefined : obj.foo;",
		"(function () { if (x == null) x = 1; }).call(this);",
		"function f(a) { try { return a(); } catch (e) { throw e; } finally { a = null; } }",
		"while (i < 10) { i += 2; if (i % 3 === 0) continue; }",
		"for (var i = 0, n = a.length; i < n; i++) { if (a[i]) break; }",
		"for (;;) {}",
		"for (k in ('a' in o ? o : p)) f(k);",
		"x = new Foo(1, 2).bar[baz](qux);",
		"y = typeof z !== 'undefined' && !(a || b);",
	}
	for _, src := range sources {
		first := generator.Generate(mustParse(t, src))
		second := generator.Generate(mustParse(t, first))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round trip of %q not stable (-first +second):\n%s", src, diff)
		}
	}
}
