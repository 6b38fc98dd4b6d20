package verify

import (
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrymomot/bycontract/pkg/exception"
	"github.com/dmitrymomot/bycontract/pkg/is"
)

// Shape maps field names of an object to nested contracts.
type Shape map[string]any

func (v *Verifier) shape(value any, s Shape) error {
	if !is.Object(value) {
		return Mismatch("object", value)
	}

	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Each field is a smaller value, so alias resolution starts over there.
	for _, k := range keys {
		if err := v.verify(Field(value, k), s[k], 0); err != nil {
			if e, ok := exception.As(err); ok {
				return e.WithPrefix("Property #" + k + ": ")
			}
			return err
		}
	}
	return nil
}

// Field returns the named field of an object value, or is.Undef when the
// object has no such field. Maps are read by key; structs by field name,
// then json tag, then case-insensitive field name.
func Field(value any, name string) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return is.Undef
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return is.Undef
		}
		fv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return is.Undef
		}
		return fv.Interface()
	case reflect.Struct:
		if idx, ok := structField(rv.Type(), name); ok {
			return rv.Field(idx).Interface()
		}
	}
	return is.Undef
}

func structField(t reflect.Type, name string) (int, bool) {
	if f, ok := t.FieldByName(name); ok && f.IsExported() && len(f.Index) == 1 {
		return f.Index[0], true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == name {
			return i, true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && strings.EqualFold(f.Name, name) {
			return i, true
		}
	}
	return 0, false
}
