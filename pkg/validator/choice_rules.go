package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// OneOf passes for values deeply equal to one of allowed.
func OneOf(allowed ...any) Rule {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprint(a)
	}
	return New("one of ["+strings.Join(parts, ", ")+"]", func(v any) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(v, a) {
				return true
			}
		}
		return false
	})
}

// NoneOf passes for values not deeply equal to any of forbidden.
func NoneOf(forbidden ...any) Rule {
	inner := OneOf(forbidden...)
	return New("not "+inner.Name, func(v any) bool {
		return !inner.Check(v)
	})
}
