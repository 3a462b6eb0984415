package evaluator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fieldbook/intrusive/evaluator"
	"github.com/fieldbook/intrusive/soak"
)

type Array = evaluator.Array

var undefined = evaluator.Undefined{}

func run(t *testing.T, src string) any {
	t.Helper()
	v, err := evaluator.Run(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return v
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"1 + 2;", 3.0},
		{"'a' + 1;", "a1"},
		{"1 / 0;", math.Inf(1)},
		{"'3' * '4';", 12.0},
		{"7 % 4;", 3.0},
		{"~5;", -6.0},
		{"~~3.7;", 3.0},
		{"-'2';", -2.0},
		{"!'';", true},
		{"null == undefined;", true},
		{"null === undefined;", false},
		{"'1' == 1;", true},
		{"0 == '';", true},
		{"NaN == NaN;", false},
		{"'b' > 'a';", true},
		{"2 <= 1;", false},
		{"typeof undeclared;", "undefined"},
		{"typeof null;", "object"},
		{"typeof function () {};", "function"},
		{"typeof 'x';", "string"},
		{"void 0;", undefined},
		{"1 && 0 || 'x';", "x"},
		{"(1, 2) ? 'y' : 'n';", "y"},
		{"'abc'.length + 'abc'[1];", "3b"},
		{"var s = 'a'; s += 1; s;", "a1"},
		{"var n = 1; n++ + n;", 3.0},
		{"var n = 1; --n;", 0.0},
		{"var a = [1, 2]; a[5] = 3; a.length;", 6.0},
		{"[1, [2, 3]] + '';", "1,2,3"},
		{"({}) + '';", "[object Object]"},
		{"var o = {a: 1, 'b': 2}; delete o.a; 'a' in o;", false},
		{"var o = {a: 1, 'b': 2}; 'b' in o;", true},
		{"var k = 'x'; var o = {[k]: 1}; o.x;", 1.0},
		{"var x = 3; var o = {x}; o.x;", 3.0},
		{"if (true) { 5; }", 5.0},
		{"var x = 1; x;", 1.0},
		{"var x = 1;", undefined},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(t, tt.src)); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestControlFlow(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{
			name: "while",
			src: `var i = 0, n = 0;
				while (i < 5) {
					i++;
					if (i == 2) continue;
					if (i == 4) break;
					n += i;
				}
				n;`,
			want: 4.0,
		},
		{
			name: "for",
			src: `var n = 0;
				for (var i = 0; i < 10; i++) {
					if (i % 2) continue;
					if (i > 6) break;
					n += i;
				}
				n + i;`,
			want: 20.0,
		},
		{
			name: "for without clauses",
			src:  "var i = 0; for (;;) { if (++i === 3) break; } i;",
			want: 3.0,
		},
		{
			name: "for returns from function",
			src: `function find(list, x) {
					for (var i = 0; i < list.length; i++) if (list[i] === x) return i;
					return -1;
				}
				find([5, 6, 7], 7) + find([], 1);`,
			want: 1.0,
		},
		{
			name: "for-in object keys",
			src:  "var s = ''; for (var k in {b: 1, a: 2, c: 3}) s += k; s;",
			want: "bac",
		},
		{
			name: "for-in array indices",
			src:  "var s = 0, a = [4, 5, 6]; for (var i in a) s += a[i]; s;",
			want: 15.0,
		},
		{
			name: "for-in member binding",
			src:  "var o = {}, last; for (o.k in {x: 1, y: 2}) last = o.k; last;",
			want: "y",
		},
		{
			name: "for-in skips deleted keys",
			src:  "var o = {a: 1, b: 2, c: 3}, s = ''; for (var k in o) { delete o.b; s += k; } s;",
			want: "ac",
		},
		{
			name: "for-in over null",
			src:  "var n = 0; for (var k in null) n++; n;",
			want: 0.0,
		},
		{
			name: "in operator in for head",
			src:  "for (var x = ('a' in {a: 1}), n = 0; n < 1; n++); x;",
			want: true,
		},
		{
			name: "closure",
			src: `function counter() { var c = 0; return function () { return ++c; }; }
				var next = counter();
				next();
				next();`,
			want: 2.0,
		},
		{
			name: "function hoisting",
			src:  "f(); function f() { return 'hoisted'; }",
			want: "hoisted",
		},
		{
			name: "var hoisting",
			src:  "var before = typeof x; var x = 1; before;",
			want: "undefined",
		},
		{
			name: "block vars are function scoped",
			src:  "function f() { if (true) { var v = 2; } return v; } f();",
			want: 2.0,
		},
		{
			name: "recursion",
			src:  "function fact(n) { return n <= 1 ? 1 : n * fact(n - 1); } fact(5);",
			want: 120.0,
		},
		{
			name: "named function expression",
			src:  "var f = function g(n) { return n ? g(n - 1) + 1 : 0; }; f(3);",
			want: 3.0,
		},
		{
			name: "arguments",
			src:  "function f() { return arguments.length; } f(1, 2, 3);",
			want: 3.0,
		},
		{
			name: "missing arguments",
			src:  "function f(a, b) { return b; } f(1);",
			want: undefined,
		},
		{
			name: "bare return",
			src:  "function f() { return; } f();",
			want: undefined,
		},
		{
			name: "finally overrides return",
			src:  "function f() { try { return 1; } finally { return 2; } } f();",
			want: 2.0,
		},
		{
			name: "finally runs after return",
			src:  "var log = ''; function f() { try { return 1; } finally { log = 'done'; } } f(); log;",
			want: "done",
		},
		{
			name: "catch and finally",
			src: `var log = '';
				try { throw new Error('boom'); } catch (e) { log += e.message; } finally { log += '!'; }
				log;`,
			want: "boom!",
		},
		{
			name: "catch type error",
			src:  "var m; try { undefined.x; } catch (e) { m = e.name + ': ' + e.message; } m;",
			want: "TypeError: Cannot read properties of undefined (reading 'x')",
		},
		{
			name: "catch reference error",
			src:  "var m; try { nope; } catch (e) { m = e instanceof ReferenceError; } m;",
			want: true,
		},
		{
			name: "catch thrown primitive",
			src:  "var m; try { throw 3; } catch (e) { m = e; } m;",
			want: 3.0,
		},
		{
			name: "catch parameter is scoped",
			src:  "var e = 'outer'; try { throw 1; } catch (e) { e = 2; } e;",
			want: "outer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(t, tt.src)); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{
			name: "method this",
			src:  "var o = {n: 2, get: function () { return this.n; }}; o.get();",
			want: 2.0,
		},
		{
			name: "detached this",
			src:  "var o = {get: function () { return this; }}; var g = o.get; g();",
			want: undefined,
		},
		{
			name: "call apply bind",
			src: `function f(a, b) { return this.x + a + b; }
				var o = {x: 1};
				[f.call(o, 2, 3), f.apply(o, [2, 3]), f.bind(o, 2)(3)];`,
			want: &Array{Values: []any{6.0, 6.0, 6.0}},
		},
		{
			name: "new",
			src:  "function P(n) { this.n = n; } var p = new P(3); [p.n, p instanceof P, {} instanceof P];",
			want: &Array{Values: []any{3.0, true, false}},
		},
		{
			name: "new returning object",
			src:  "function P() { return [1]; } new P();",
			want: &Array{Values: []any{1.0}},
		},
		{
			name: "error constructor",
			src:  "var e = Error('x'); [e.name, e.message, e instanceof Error, e + ''];",
			want: &Array{Values: []any{"Error", "x", true, "Error: x"}},
		},
		{
			name: "function properties",
			src:  "function f() {} f.tag = 'a'; f.tag + f.name;",
			want: "af",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(t, tt.src)); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"undeclared;", "ReferenceError: undeclared is not defined"},
		{"var a; a();", "TypeError: a is not a function"},
		{"var o = {}; o.f();", "TypeError: o.f is not a function"},
		{"null.x;", "TypeError: Cannot read properties of null (reading 'x')"},
		{"var o; o.x = 1;", "TypeError: Cannot set properties of undefined (setting 'x')"},
		{"'a' in 'abc';", "TypeError: Cannot use 'in' operator to search for 'a' in abc"},
		{"new 1;", "TypeError: 1 is not a constructor"},
		{"throw new Error('bad');", "Error: bad"},
		{"throw 'x';", "uncaught x"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := evaluator.Run(tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if err.Error() != tt.message {
				t.Errorf("got %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	_, err := evaluator.Run("undeclared;")
	var re *evaluator.ReferenceError
	if !errors.As(err, &re) || re.Name != "undeclared" {
		t.Errorf("got %v, want a ReferenceError", err)
	}

	_, err = evaluator.Run("throw 42;")
	var ex *evaluator.Exception
	if !errors.As(err, &ex) || ex.Value != 42.0 {
		t.Errorf("got %v, want an Exception carrying 42", err)
	}

	_, err = evaluator.Run("var x = ;")
	if err == nil {
		t.Error("expected a syntax error")
	}
}

type account struct {
	Owner   string
	Balance int
}

func (a *account) Deposit(n int) int {
	a.Balance += n
	return a.Balance
}

func TestHostValues(t *testing.T) {
	in := evaluator.New()
	in.Set("user", map[string]any{
		"name":  "Ann",
		"age":   3,
		"greet": func(s string) string { return "hi " + s },
	})
	in.Set("acct", &account{Owner: "Bo", Balance: 10})
	in.Set("apply2", func(f soak.Callable) (any, error) { return f.Call(nil, []any{2}) })
	in.Set("fail", func() error { return errors.New("nope") })

	tests := []struct {
		src  string
		want any
	}{
		{"user.name + user.age;", "Ann3"},
		{"user.greet('Bob');", "hi Bob"},
		{"user.missing;", undefined},
		{"acct.owner + acct.Balance;", "Bo10"},
		{"acct.deposit(5);", 15.0},
		{"apply2(function (n) { return n * 10; });", 20.0},
		{"var m; try { fail(); } catch (e) { m = e.message; } m;", "nope"},
		{"typeof user.greet;", "function"},
		{"user.greet.call(null, 'Cy');", "hi Cy"},
		{"var ks = ''; for (var k in user) ks += k + ','; ks;", "age,greet,name,"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := in.Run(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := in.Run("var shared = 5;"); err != nil {
		t.Fatal(err)
	}
	if got := in.Get("shared"); got != 5.0 {
		t.Errorf("got %v, want 5", got)
	}
	if got := in.Get("absent"); got != undefined {
		t.Errorf("got %v, want undefined", got)
	}
}

func TestRuntimeGlobals(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"global._getUnderscore({_: 7});", 7.0},
		{"var w = global._getUnderscore({a: {b: 1}}); w.soak('a.b');", 1.0},
		{"global._getUnderscore(null).soak('a.b');", evaluator.Null{}},
		{"global._getUnderscore([1, 2]).soak('length');", 2.0},
		{"__soakNoop(1, 2);", undefined},
		{"typeof __soakNoop.bind({});", "function"},
		{"_.soak({a: {b: 2}}, 'a.b');", 2.0},
		{"_.soak({a: {b: 2}}, 'a.c.d');", undefined},
		{"_({a: 1}).soak('a');", 1.0},
		{"_.soakCall({f: function (x) { return x + this.y; }, y: 1}, 'f', 1);", 2.0},
		{"_.soakApply({f: function (x, y) { return x * y; }}, 'f', [3, 4]);", 12.0},
		{"_.soak({f: function () { return {g: 5}; }}, 'f().g');", 5.0},
		{"_.soak({get: function (k) { return k + '!'; }}, '@key');", "key!"},
		{"_.pluckSoak([{a: 1}, {}, null], 'a');", &Array{Values: []any{1.0, undefined, evaluator.Null{}}}},
		{"_.filterSoak([{a: 1}, {a: 0}, {}], 'a').length;", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, run(t, tt.src)); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestObjectKeysKeepInsertionOrder(t *testing.T) {
	v := run(t, "var o = {b: 1, a: 2}; o.c = 3; delete o.b; o.b = 4; o;")
	o, ok := v.(*evaluator.Object)
	if !ok {
		t.Fatalf("got %T, want *Object", v)
	}
	if diff := cmp.Diff([]string{"a", "c", "b"}, o.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}
