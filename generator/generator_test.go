package generator

import (
	"strings"
	"testing"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/token"
)

func generateASTNoIndent(node ast.Node) string {
	output := Generate(node)
	return strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sequence as call argument",
			input:    "f(((d = 4), 5));",
			expected: "f((d = 4, 5));",
		},
		{
			name:     "sequence as second argument to new",
			input:    "new F6(x, ((b = 2), 3));",
			expected: "new F6(x, (b = 2, 3));",
		},
		{
			name:     "immediately invoked function",
			input:    "(function () { return 1; })();",
			expected: "(function () {return 1;})();",
		},
		{
			name:     "function literal as member object",
			input:    "(function () {}).call(this);",
			expected: "(function () {}).call(this);",
		},
		{
			name:     "object literal at statement start",
			input:    "({a: 1}).a;",
			expected: "({a: 1}).a;",
		},
		{
			name:     "object literal method",
			input:    "x = { m(a) { return a; }, b };",
			expected: "x = {m(a) {return a;},b};",
		},
		{
			name:     "for statement",
			input:    "for (var i = 0; i < n; i++) sum += i;",
			expected: "for (var i = 0; i < n; i++) {sum += i;}",
		},
		{
			name:     "for statement with empty clauses",
			input:    "for (;;) { break; }",
			expected: "for (;;) {break;}",
		},
		{
			name:     "for-in over a parenthesized in test",
			input:    "for (var k in ('a' in o ? o : p)) f(k);",
			expected: "for (var k in 'a' in o ? o : p) {f(k);}",
		},
		{
			name:     "in operator in for initializer keeps parentheses",
			input:    "for (x = ('a' in o), y = 1;;) {}",
			expected: "for (x = ('a' in o), y = 1;;) {}",
		},
		{
			name:     "in operator in for body needs none",
			input:    "for (;;) { x = 'a' in o; }",
			expected: "for (;;) {x = 'a' in o;}",
		},
		{
			name:     "function declaration",
			input:    "function f(a, b) { return a + b; }",
			expected: "function f(a, b) {return a + b;}",
		},
		{
			name:     "function expression on right of assignment",
			input:    "x = function () {};",
			expected: "x = function () {};",
		},
		{
			name:     "multiplication binds tighter",
			input:    "a + b * c;",
			expected: "a + b * c;",
		},
		{
			name:     "parenthesized addition",
			input:    "(a + b) * c;",
			expected: "(a + b) * c;",
		},
		{
			name:     "right nested subtraction",
			input:    "a - (b - c);",
			expected: "a - (b - c);",
		},
		{
			name:     "left nested subtraction",
			input:    "(a - b) - c;",
			expected: "a - b - c;",
		},
		{
			name:     "double negation keeps a space",
			input:    "-(-x);",
			expected: "- -x;",
		},
		{
			name:     "not of logical",
			input:    "!(a && b);",
			expected: "!(a && b);",
		},
		{
			name:     "typeof",
			input:    "typeof x === 'undefined';",
			expected: "typeof x === 'undefined';",
		},
		{
			name:     "sequence as condition test",
			input:    "(a, b) ? c : d;",
			expected: "(a, b) ? c : d;",
		},
		{
			name:     "nested conditional",
			input:    "a ? b : c ? d : e;",
			expected: "a ? b : c ? d : e;",
		},
		{
			name:     "new with called callee",
			input:    "new (f())();",
			expected: "new (f())();",
		},
		{
			name:     "new without arguments",
			input:    "new a.B;",
			expected: "new a.B();",
		},
		{
			name:     "integer member access",
			input:    "(1).toString();",
			expected: "(1).toString();",
		},
		{
			name:     "if else",
			input:    "if (a) b(); else c();",
			expected: "if (a) {b();} else {c();}",
		},
		{
			name:     "else if chain",
			input:    "if (a) { b(); } else if (c) { d(); }",
			expected: "if (a) {b();} else if (c) {d();}",
		},
		{
			name:     "var list",
			input:    "var a = 1, b;",
			expected: "var a = 1, b;",
		},
		{
			name:     "try catch finally",
			input:    "try { a(); } catch (e) { b(); } finally { c(); }",
			expected: "try {a();} catch (e) {b();} finally {c();}",
		},
		{
			name:     "chained assignment",
			input:    "a = b = c;",
			expected: "a = b = c;",
		},
		{
			name:     "assignment inside binary",
			input:    "(a = 1) + 2;",
			expected: "(a = 1) + 2;",
		},
		{
			name:     "update expressions",
			input:    "x++ + ++y;",
			expected: "x++ + ++y;",
		},
		{
			name:     "while with break",
			input:    "while (true) { if (x) break; x++; }",
			expected: "while (true) {if (x) {break;}x++;}",
		},
		{
			name:     "computed member",
			input:    "a[b, c].d;",
			expected: "a[b, c].d;",
		},
		{
			name:     "bare return",
			input:    "function f() { return }",
			expected: "function f() {return;}",
		},
		{
			name:     "soak marker",
			input:    "+~a.b;",
			expected: "+~a.b;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parser.ParseFile(tt.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got := generateASTNoIndent(program); got != tt.expected {
				t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSynthesizedNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{
			name:     "string literal without raw spelling",
			node:     ast.ExprStmt(ast.Str("a\"b\n")),
			expected: `"a\"b\n";`,
		},
		{
			name:     "sequence inside conditional test",
			node:     ast.ExprStmt(ast.Cond(ast.Seq(ast.Ident("a"), ast.Ident("b")), ast.Null(), ast.Undefined())),
			expected: "(a, b) ? null : undefined;",
		},
		{
			name:     "conditional as callee",
			node:     ast.ExprStmt(ast.Call(ast.Cond(ast.Ident("a"), ast.Ident("b"), ast.Ident("c")))),
			expected: "(a ? b : c)();",
		},
		{
			name:     "sequence as callee",
			node:     ast.ExprStmt(ast.Call(ast.Seq(ast.Assign(ast.Ident("_prop"), ast.Ident("f")), ast.Ident("_prop")), ast.Ident("x"))),
			expected: "(_prop = f, _prop)(x);",
		},
		{
			name:     "null test",
			node:     ast.If(ast.IsNull(ast.Ident("x")), ast.ExprStmt(ast.Assign(ast.Ident("x"), &ast.NumberLiteral{Value: 5}))),
			expected: "if (x == null) {x = 5;}",
		},
		{
			name:     "negated sequence",
			node:     ast.ExprStmt(ast.Not(ast.Binary(token.Greater, ast.Ident("a"), ast.Ident("b")))),
			expected: "!(a > b);",
		},
		{
			name:     "negative number as subtrahend",
			node:     ast.ExprStmt(ast.Binary(token.Minus, ast.Ident("a"), &ast.NumberLiteral{Value: -1})),
			expected: "a - -1;",
		},
		{
			name:     "var declaration",
			node:     ast.Var(ast.Declarator(ast.Ident("_obj"), nil), ast.Declarator(ast.Ident("_prop"), nil)),
			expected: "var _obj, _prop;",
		},
		{
			name:     "bare return",
			node:     ast.Return(nil),
			expected: "return;",
		},
		{
			name: "in operator inside for initializer",
			node: &ast.ForStatement{
				Initializer: &ast.ForInit{Declaration: ast.Var(ast.Declarator(ast.Ident("x"), ast.Binary(token.In, ast.Str("a"), ast.Ident("o"))))},
				Body:        ast.S(ast.Block()),
			},
			expected: `for (var x = ("a" in o);;) {}`,
		},
		{
			name: "for-in with member binding",
			node: &ast.ForInStatement{
				Into:   &ast.ForInit{Expression: ast.E(ast.Member(ast.Ident("o"), "k"))},
				Source: ast.E(ast.Ident("src")),
				Body:   ast.S(ast.ExprStmt(ast.Call(ast.Ident("f")))),
			},
			expected: "for (o.k in src) {f();}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateASTNoIndent(tt.node); got != tt.expected {
				t.Errorf("got:  %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func TestUnknownNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown node")
		}
	}()
	Generate(&ast.CatchStatement{Body: ast.Block()})
}
