package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
)

func TestCollect(t *testing.T) {
	program, err := parser.ParseFile("var _obj = a.b; function f(c) { return _obj2[d]; }")
	if err != nil {
		t.Fatal(err)
	}
	names := Collect(program)
	for _, name := range []string{"_obj", "_obj2", "a", "b", "c", "d", "f"} {
		if !names.Has(name) {
			t.Errorf("missing name %q", name)
		}
	}
	for _, name := range []string{"_obj3", "var", "return"} {
		if names.Has(name) {
			t.Errorf("unexpected name %q", name)
		}
	}
}

func TestGenerateUid(t *testing.T) {
	names := NewNames()
	names.Add("_obj")
	names.Add("_obj3")
	scope := NewScope(nil, ScopeKindProgram, names)

	var got []string
	for _, hint := range []string{"obj", "obj", "obj", "_prop", "memberObject", "obj2", ""} {
		got = append(got, scope.GenerateUid(hint).Name)
	}
	want := []string{"_obj2", "_obj4", "_obj5", "_prop", "_memberObject", "_obj6", "_ref"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("uids mismatch (-want +got):\n%s", diff)
	}
}

func TestUidsAreSharedAcrossScopes(t *testing.T) {
	names := NewNames()
	outer := NewScope(nil, ScopeKindProgram, names)
	inner := NewScope(outer, ScopeKindFunction, names)

	if a, b := outer.GenerateUid("obj").Name, inner.GenerateUid("obj").Name; a == b {
		t.Errorf("scopes handed out the same name %q", a)
	}
	if inner.Parent() != outer || inner.Kind() != ScopeKindFunction {
		t.Errorf("scope links are wrong")
	}
}

func TestFlush(t *testing.T) {
	program, err := parser.ParseFile("x = 1;")
	if err != nil {
		t.Fatal(err)
	}
	scope := NewScope(nil, ScopeKindProgram, Collect(program))
	scope.Push(scope.GenerateUid("obj"))
	scope.Push(scope.GenerateUid("prop"))
	scope.Flush(&program.Body)
	scope.Flush(&program.Body)

	want := "var _obj, _prop;\nx = 1;\n"
	if got := generator.Generate(program); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestHoist(t *testing.T) {
	program, err := parser.ParseFile(`
		var a = 1;
		if (a) { var b; function g() { var hidden; } }
		try { var c; } catch (e) { var a; }
		while (false) { let d = function () { var alsoHidden; }; }
		function f() {}
	`)
	if err != nil {
		t.Fatal(err)
	}
	decls := Hoist(program.Body)
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, decls.Vars); diff != "" {
		t.Errorf("vars mismatch (-want +got):\n%s", diff)
	}
	var funcs []string
	for _, fn := range decls.Functions {
		funcs = append(funcs, fn.Function.Name.Name)
	}
	if diff := cmp.Diff([]string{"g", "f"}, funcs); diff != "" {
		t.Errorf("functions mismatch (-want +got):\n%s", diff)
	}
}
