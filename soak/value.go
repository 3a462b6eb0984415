// Package soak resolves property paths against runtime values, stopping
// at the first null or undefined link.
//
//	v, err := soak.Soak(user, "profile.address.city")
//	n, err := soak.Call(list, "items.count()")
//
// Values are plain Go values. Hosts that model JavaScript values plug in
// through the Object, Nullish, Getter and Callable interfaces; anything
// else is inspected with reflection.
package soak

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Object is implemented by values that resolve their own members.
type Object interface {
	Member(name string) any
}

// Container is implemented by objects that can tell a missing member
// from one holding an absent value.
type Container interface {
	Has(name string) bool
}

// Nullish is implemented by host values standing for null or undefined.
type Nullish interface {
	Nullish() bool
}

// Getter is the accessor convention used by `@name` path components.
type Getter interface {
	Get(name string) any
}

// Lister is implemented by host sequences. Lists can be used as array
// paths and as the input of Pluck and Filter.
type Lister interface {
	List() []any
}

// IsAbsent reports whether v is null or undefined: a nil interface, a nil
// pointer, map, slice, func or chan, or a Nullish value reporting true.
func IsAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case Nullish:
		return x.Nullish()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Truthy reports whether v counts as true in a condition: absent values,
// false, zero, NaN and the empty string do not.
func Truthy(v any) bool {
	if IsAbsent(v) {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// Lookup returns the member name of obj, or nil when obj is absent or has
// no such member. Lookup tries, in order: the Object interface, string
// keyed maps, exported struct fields by name and then by json tag,
// indexes and length of slices, arrays and strings, and finally methods,
// returned bound to obj.
func Lookup(obj any, name string) any {
	if IsAbsent(obj) {
		return nil
	}
	if o, ok := obj.(Object); ok {
		return o.Member(name)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if e.IsValid() {
				return e.Interface()
			}
			return nil
		}
	case reflect.Struct:
		if f, ok := field(v, name); ok {
			return f.Interface()
		}
	case reflect.Slice, reflect.Array:
		if name == "length" {
			return v.Len()
		}
		if i, ok := index(name, v.Len()); ok {
			return v.Index(i).Interface()
		}
	case reflect.String:
		s := v.String()
		if name == "length" {
			return len(s)
		}
		if i, ok := index(name, len(s)); ok {
			return s[i : i+1]
		}
	}
	if m, ok := method(reflect.ValueOf(obj), name); ok {
		return m.Interface()
	}
	return nil
}

// has reports whether obj carries its own member name, even one holding
// an absent value.
func has(obj any, name string) bool {
	if c, ok := obj.(Container); ok {
		return c.Has(name)
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String && !v.IsNil() {
		return v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())).IsValid()
	}
	return false
}

func index(name string, n int) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func field(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return v.FieldByIndex(f.Index), true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i), true
		}
	}
	if exported := capitalize(name); exported != name {
		return field(v, exported)
	}
	return reflect.Value{}, false
}

func method(v reflect.Value, name string) (reflect.Value, bool) {
	if m := v.MethodByName(name); m.IsValid() {
		return m, true
	}
	if exported := capitalize(name); exported != name {
		if m := v.MethodByName(exported); m.IsValid() {
			return m, true
		}
	}
	return reflect.Value{}, false
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
