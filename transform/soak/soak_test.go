package soak_test

import (
	"strings"
	"testing"

	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/transform"
	"github.com/fieldbook/intrusive/transform/soak"
)

func transpile(in string) (string, error) {
	p, err := parser.ParseFile(in)
	if err != nil {
		return "", err
	}
	if err := transform.Run(p, soak.Pass()); err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(generator.Generate(p)), " "), nil
}

func test(in, want string, t *testing.T) {
	t.Helper()
	got, err := transpile(in)
	if err != nil {
		t.Errorf("transpile('%s') failed: %v", in, err)
		return
	}
	if got != want {
		t.Errorf("transpile('%s') = '%s'; want '%s'", in, got, want)
		return
	}
	again, err := transpile(got)
	if err != nil {
		t.Errorf("transpile('%s') failed: %v", got, err)
		return
	}
	if again != got {
		t.Errorf("second run changed output: '%s'", again)
	}
}

func TestMember(t *testing.T) {
	test(`x = +~a.b;`,
		`var _obj, _prop; x = (_obj = a, _obj == null ? undefined : _obj["b"]);`, t)
	test(`x = +~a[k];`,
		`var _obj, _prop; x = (_obj = a, _obj == null ? undefined : _obj[k]);`, t)
	test(`x = +~a.b.c;`,
		`var _obj, _prop; x = (_obj = (_obj = a, _obj == null ? undefined : _obj["b"]), _obj == null ? undefined : _obj["c"]);`, t)
}

func TestCall(t *testing.T) {
	test(`x = +~f();`,
		`var _obj, _prop; x = (_prop = f, _prop == null ? __soakNoop : _prop)();`, t)
	test(`x = +~f()(1);`,
		`var _obj, _prop; x = (_prop = (_prop = f, _prop == null ? __soakNoop : _prop)(), _prop == null ? __soakNoop : _prop)(1);`, t)
}

func TestMethod(t *testing.T) {
	test(`x = +~a.b(1, 2);`,
		`var _obj, _prop; x = (_prop = (_obj = a, _prop = _obj == null ? __soakNoop : _obj["b"], _prop == null ? __soakNoop : _prop.bind(_obj)), _prop == null ? __soakNoop : _prop)(1, 2);`, t)
	test(`x = +~a.b().c;`,
		`var _obj, _prop; x = (_obj = (_prop = (_obj = a, _prop = _obj == null ? __soakNoop : _obj["b"], _prop == null ? __soakNoop : _prop.bind(_obj)), _prop == null ? __soakNoop : _prop)(), _obj == null ? undefined : _obj["c"]);`, t)
}

func TestPassThrough(t *testing.T) {
	test(`x = +~a;`, `var _obj, _prop; x = a;`, t)
	test(`x = +~1;`, `var _obj, _prop; x = 1;`, t)
	test(`x = +a; y = ~b; z = -~c; w = +!d;`, `x = +a; y = ~b; z = -~c; w = +!d;`, t)
}

func TestArgumentsAreNotSoaked(t *testing.T) {
	test(`x = +~f(a.b);`,
		`var _obj, _prop; x = (_prop = f, _prop == null ? __soakNoop : _prop)(a.b);`, t)
	test(`x = +~f(+~a.b);`,
		`var _obj, _prop, _obj2, _prop2; x = (_prop = f, _prop == null ? __soakNoop : _prop)((_obj2 = a, _obj2 == null ? undefined : _obj2["b"]));`, t)
}

func TestTemporariesPerChain(t *testing.T) {
	test(`a = +~x.y; b = +~z.w;`,
		`var _obj, _prop, _obj2, _prop2; a = (_obj = x, _obj == null ? undefined : _obj["y"]); b = (_obj2 = z, _obj2 == null ? undefined : _obj2["w"]);`, t)
	test(`_obj = 1; x = +~a.b;`,
		`var _obj2, _prop; _obj = 1; x = (_obj2 = a, _obj2 == null ? undefined : _obj2["b"]);`, t)
}

func TestTemporariesInFunction(t *testing.T) {
	test(`function g() { return +~a.b; }`,
		`function g() { var _obj, _prop; return _obj = a, _obj == null ? undefined : _obj["b"]; }`, t)
	test(`f = function () { if (x) { y = +~a.b; } };`,
		`f = function () { var _obj, _prop; if (x) { y = (_obj = a, _obj == null ? undefined : _obj["b"]); } };`, t)
}

func TestStatementPosition(t *testing.T) {
	test(`+~a.b();`,
		`var _obj, _prop; (_prop = (_obj = a, _prop = _obj == null ? __soakNoop : _obj["b"], _prop == null ? __soakNoop : _prop.bind(_obj)), _prop == null ? __soakNoop : _prop)();`, t)
}
