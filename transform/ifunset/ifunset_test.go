package ifunset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fieldbook/intrusive/ast"
	"github.com/fieldbook/intrusive/generator"
	"github.com/fieldbook/intrusive/parser"
	"github.com/fieldbook/intrusive/transform"
	"github.com/fieldbook/intrusive/transform/ifunset"
)

func transpile(in string) (string, error) {
	p, err := parser.ParseFile(in)
	if err != nil {
		return "", err
	}
	if err := transform.Run(p, ifunset.Pass()); err != nil {
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

func TestIdentifier(t *testing.T) {
	test(`IfUnset, a = 1;`, `(function () { if (a == null) { a = 1; } }).call(this);`, t)
	test(`IfUnset, a = 1, b = f();`,
		`(function () { if (a == null) { a = 1; } if (b == null) { b = f(); } }).call(this);`, t)
}

func TestMember(t *testing.T) {
	test(`IfUnset, x.a = 5;`,
		`(function () { { var _memberObject = x; if (_memberObject.a == null) { _memberObject.a = 5; } } }).call(this);`, t)
	test(`IfUnset, f().b.c = 5;`,
		`(function () { { var _memberObject = f().b; if (_memberObject.c == null) { _memberObject.c = 5; } } }).call(this);`, t)
}

func TestComputedMember(t *testing.T) {
	test(`IfUnset, o[k()] = v();`,
		`(function () { { var _memberObject = o, _memberProperty = k(); if (_memberObject[_memberProperty] == null) { _memberObject[_memberProperty] = v(); } } }).call(this);`, t)
}

func TestTemporariesDoNotCollide(t *testing.T) {
	test(`IfUnset, a.b = 1, _memberObject.c = 2;`,
		`(function () { { var _memberObject2 = a; if (_memberObject2.b == null) { _memberObject2.b = 1; } } { var _memberObject3 = _memberObject; if (_memberObject3.c == null) { _memberObject3.c = 2; } } }).call(this);`, t)
}

func TestExpressionPosition(t *testing.T) {
	test(`var y = (IfUnset, a = 1);`, `var y = (function () { if (a == null) { a = 1; } }).call(this);`, t)
}

func TestOtherSequencesUntouched(t *testing.T) {
	test(`a, b = 1; ifUnset, c = 2;`, `a, b = 1; ifUnset, c = 2;`, t)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
		idx     ast.Idx
	}{
		{"IfUnset, a;", "IfUnset with non-assignment", 10},
		{"IfUnset, a = 1, f();", "IfUnset with non-assignment", 17},
		{"IfUnset, a += 1;", "IfUnset with operator other than =", 10},
	}
	for _, tt := range tests {
		_, err := transpile(tt.src)
		var terr *transform.Error
		if !errors.As(err, &terr) {
			t.Errorf("transpile('%s') = %v; want *transform.Error", tt.src, err)
			continue
		}
		if terr.Pass != ifunset.Name || terr.Message != tt.message || terr.Idx0 != tt.idx {
			t.Errorf("transpile('%s') = %+v; want %s at %d", tt.src, terr, tt.message, tt.idx)
		}
	}
}
