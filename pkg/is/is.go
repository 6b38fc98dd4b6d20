package is

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
)

// UndefinedValue is the type of Undef.
type UndefinedValue struct{}

// Undef stands for a value that was not supplied at all: a missing positional
// argument or an absent shape field.
var Undef = UndefinedValue{}

var (
	regexpPtrType = reflect.TypeOf((*regexp.Regexp)(nil))
	regexpType    = regexpPtrType.Elem()
	anySliceType  = reflect.TypeOf([]any(nil))
)

// Of returns the single kind a value reports as.
func Of(v any) Kind {
	switch x := v.(type) {
	case UndefinedValue:
		return KindUndefined
	case nil:
		return KindNull
	case json.Number:
		if f, err := x.Float64(); err == nil && math.IsNaN(f) {
			return KindNaN
		}
		return KindNumber
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return KindNull
		}
	}

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return KindNaN
		}
		return KindNumber
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Func:
		return KindFunction
	}

	if rv.Type() == regexpPtrType || rv.Type() == regexpType {
		return KindRegExp
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	}
	return KindObject
}

// TypeName returns the name of the kind v reports as.
func TypeName(v any) string {
	return Of(v).String()
}

// Undefined reports whether v is the undefined marker.
func Undefined(v any) bool { return Of(v) == KindUndefined }

// Null reports whether v is null.
func Null(v any) bool { return Of(v) == KindNull }

// NaN reports whether v is a NaN number.
func NaN(v any) bool { return Of(v) == KindNaN }

// Number reports whether v is a number other than NaN.
func Number(v any) bool { return Of(v) == KindNumber }

// String reports whether v is a string.
func String(v any) bool { return Of(v) == KindString }

// Boolean reports whether v is a boolean.
func Boolean(v any) bool { return Of(v) == KindBoolean }

// Function reports whether v is a function.
func Function(v any) bool { return Of(v) == KindFunction }

// RegExp reports whether v is a compiled regular expression.
func RegExp(v any) bool { return Of(v) == KindRegExp }

// Array reports whether v is a slice or array.
func Array(v any) bool { return Of(v) == KindArray }

// Object reports whether v is an object: a map, struct or pointer to one.
func Object(v any) bool { return Of(v) == KindObject }

// Sequence reports whether v is an ordered sequence: any slice or array.
func Sequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Arguments reports whether v is an array-like value that must be normalized
// into []any before positional checks: any sequence other than []any.
func Arguments(v any) bool {
	return Sequence(v) && reflect.TypeOf(v) != anySliceType
}

// Slice normalizes a sequence into []any. The second result is false when v
// is not a sequence.
func Slice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if !Sequence(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
