package dotunderscore_test

import (
	"strings"
	"testing"

	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/transform"
	"github.com/fieldbook/intrusive/transform/dotunderscore"
)

func transpile(in string) (string, error) {
	p, err := parser.ParseFile(in)
	if err != nil {
		return "", err
	}
	if err := transform.Run(p, dotunderscore.Pass()); err != nil {
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
	if again, err := transpile(got); err != nil || again != got {
		t.Errorf("second run = '%s', %v; want no change", again, err)
	}
}

func TestRead(t *testing.T) {
	test(`x = foo._;`, `x = global._getUnderscore(foo);`, t)
	test(`foo._.soak('a.b');`, `global._getUnderscore(foo).soak('a.b');`, t)
	test(`x = a.b._;`, `x = global._getUnderscore(a.b);`, t)
	test(`x = f()._._;`, `x = global._getUnderscore(global._getUnderscore(f()));`, t)
}

func TestAssignmentTarget(t *testing.T) {
	test(`foo._ = bar;`, `foo._ = bar;`, t)
	test(`foo._ = bar._;`, `foo._ = global._getUnderscore(bar);`, t)
	test(`foo._.x = 1;`, `global._getUnderscore(foo).x = 1;`, t)
	test(`foo._++;`, `foo._++;`, t)
}

func TestUntouched(t *testing.T) {
	test(`x = foo['_']; y = foo.__; z = _; w = foo._x;`, `x = foo['_']; y = foo.__; z = _; w = foo._x;`, t)
	test(`x = {_: 1};`, `x = { _: 1 };`, t)
}
