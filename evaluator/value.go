package evaluator

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fieldbook/intrusive/soak"
)

// Undefined is the value of missing bindings and members.
type Undefined struct{}

func (Undefined) Nullish() bool  { return true }
func (Undefined) String() string { return "undefined" }

// Null is the value of the null literal.
type Null struct{}

func (Null) Nullish() bool  { return true }
func (Null) String() string { return "null" }

// Object is a plain script object. Properties keep insertion order.
type Object struct {
	keys  []string
	props map[string]any

	// ctor is the function the object was constructed with, if any.
	ctor *Function
}

func NewObject() *Object {
	return &Object{props: make(map[string]any)}
}

func (o *Object) Member(name string) any {
	if v, ok := o.props[name]; ok {
		return v
	}
	return Undefined{}
}

func (o *Object) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

func (o *Object) Set(name string, v any) {
	if _, ok := o.props[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.props[name] = v
}

func (o *Object) Delete(name string) {
	if _, ok := o.props[name]; !ok {
		return
	}
	delete(o.props, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Array is a script array.
type Array struct {
	Values []any
}

func (a *Array) List() []any { return a.Values }

func (a *Array) Member(name string) any {
	if name == "length" {
		return float64(len(a.Values))
	}
	if i, ok := arrayIndex(name); ok && i < len(a.Values) {
		return a.Values[i]
	}
	return Undefined{}
}

func (a *Array) Has(name string) bool {
	i, ok := arrayIndex(name)
	return name == "length" || ok && i < len(a.Values)
}

func (a *Array) set(name string, v any) bool {
	if name == "length" {
		n := int(toNumber(v))
		for len(a.Values) < n {
			a.Values = append(a.Values, Undefined{})
		}
		a.Values = a.Values[:n]
		return true
	}
	i, ok := arrayIndex(name)
	if !ok {
		return false
	}
	for len(a.Values) <= i {
		a.Values = append(a.Values, Undefined{})
	}
	a.Values[i] = v
	return true
}

func arrayIndex(name string) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || strconv.Itoa(i) != name {
		return 0, false
	}
	return i, true
}

// fromGo converts a host value into its script representation. Values the
// interpreter has no representation for pass through and are accessed by
// reflection.
func fromGo(v any) any {
	switch v := v.(type) {
	case nil:
		return Undefined{}
	case float64, string, bool, Undefined, Null, *Object, *Array, *Function:
		return v
	case []any:
		values := make([]any, len(v))
		for i, e := range v {
			values[i] = fromGo(e)
		}
		return &Array{Values: values}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32:
		return rv.Float()
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return Undefined{}
		}
	}
	return v
}

// enumerate lists the keys a for-in loop visits. Host maps are visited in
// sorted key order.
func enumerate(v any) []string {
	indices := func(n int) []string {
		keys := make([]string, n)
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	switch o := v.(type) {
	case *Object:
		return o.Keys()
	case *Array:
		return indices(len(o.Values))
	case string:
		return indices(len(o))
	case *Function:
		if o.props != nil {
			return o.props.Keys()
		}
		return nil
	case map[string]any:
		keys := maps.Keys(o)
		slices.Sort(keys)
		return keys
	}
	if soak.IsAbsent(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

func isObject(v any) bool {
	switch v.(type) {
	case Undefined, Null, float64, string, bool:
		return false
	}
	return !soak.IsAbsent(v)
}

func typeOf(v any) string {
	switch v.(type) {
	case Undefined:
		return "undefined"
	case Null:
		return "object"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case *Function:
		return "function"
	}
	if soak.IsAbsent(v) {
		return "undefined"
	}
	if soak.IsCallable(v) {
		return "function"
	}
	return "object"
}

const whitespace = "\u0009\u000A\u000B\u000C\u000D\u0020\u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

var hexPrefix = regexp.MustCompile(`^0[xX]`)

func parseNumber(value string) float64 {
	value = strings.Trim(value, whitespace)
	switch {
	case value == "":
		return 0
	case hexPrefix.MatchString(value):
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	case value == "Infinity", value == "+Infinity":
		return math.Inf(1)
	case value == "-Infinity":
		return math.Inf(-1)
	}
	// strconv accepts spellings script does not.
	if strings.ContainsAny(value, "_xXpPiInN") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}

var leadingZeroExponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0" // never -0
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		return leadingZeroExponent.ReplaceAllString(strconv.FormatFloat(value, 'g', -1, 64), "$1$2")
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func toNumber(v any) float64 {
	switch v := v.(type) {
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseNumber(v)
	case Null:
		return 0
	case Undefined:
		return math.NaN()
	case *Array:
		return parseNumber(toString(v))
	}
	return math.NaN()
}

func toInt32(v any) int32 {
	f := toNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(math.Trunc(math.Mod(f, 1<<32)))))
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case Undefined:
		return v.String()
	case Null:
		return v.String()
	case *Array:
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			if !soak.IsAbsent(e) {
				parts[i] = toString(e)
			}
		}
		return strings.Join(parts, ",")
	case *Object:
		if isError(v) {
			return toString(v.Member("name")) + ": " + toString(v.Member("message"))
		}
		return "[object Object]"
	case *Function:
		return "function " + v.Name + "() { [code] }"
	}
	if soak.IsAbsent(v) {
		return "undefined"
	}
	return "[object Object]"
}

func toBoolean(v any) bool {
	return soak.Truthy(v)
}

// propertyKey converts a computed member key to a property name.
func propertyKey(v any) string {
	if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return toString(v)
}

func strictEquals(a, b any) bool {
	switch a := a.(type) {
	case float64:
		b, ok := b.(float64)
		return ok && a == b
	case string:
		b, ok := b.(string)
		return ok && a == b
	case bool:
		b, ok := b.(bool)
		return ok && a == b
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Null:
		_, ok := b.(Null)
		return ok
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func looseEquals(a, b any) bool {
	na, nb := soak.IsAbsent(a), soak.IsAbsent(b)
	if na || nb {
		return na && nb
	}
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return strictEquals(a, b)
	}
	switch a.(type) {
	case bool:
		return looseEquals(toNumber(a), b)
	case float64:
		switch b.(type) {
		case string, bool:
			return a == toNumber(b)
		}
	case string:
		switch b.(type) {
		case float64, bool:
			return toNumber(a) == toNumber(b)
		}
	}
	switch b.(type) {
	case bool:
		return looseEquals(a, toNumber(b))
	case float64, string:
		if isObject(a) {
			return looseEquals(toString(a), b)
		}
	}
	if _, ok := a.(float64); ok && isObject(b) {
		return looseEquals(a, toString(b))
	}
	if _, ok := a.(string); ok && isObject(b) {
		return a == toString(b)
	}
	return false
}

// compare implements the relational operators. NaN compares false.
func compare(op func(int) bool, a, b any) bool {
	sa, aok := a.(string)
	sb, bok := b.(string)
	if aok && bok {
		return op(strings.Compare(sa, sb))
	}
	x, y := toNumber(a), toNumber(b)
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return false
	case x < y:
		return op(-1)
	case x > y:
		return op(1)
	}
	return op(0)
}
