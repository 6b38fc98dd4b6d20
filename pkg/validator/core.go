package validator

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Rule is a named predicate contract.
type Rule struct {
	Name string
	Fn   func(v any) bool
}

// New creates a rule.
func New(name string, fn func(v any) bool) Rule {
	return Rule{Name: name, Fn: fn}
}

// Check reports whether v satisfies the rule. Rules without a function fail.
func (r Rule) Check(v any) bool {
	return r.Fn != nil && r.Fn(v)
}

func (r Rule) String() string {
	if r.Name == "" {
		return "predicate"
	}
	return r.Name
}

// All passes when every rule passes.
func All(rules ...Rule) Rule {
	return Rule{
		Name: joinNames(rules, "&"),
		Fn: func(v any) bool {
			for _, r := range rules {
				if !r.Check(v) {
					return false
				}
			}
			return true
		},
	}
}

// Any passes when at least one rule passes.
func Any(rules ...Rule) Rule {
	return Rule{
		Name: joinNames(rules, "|"),
		Fn: func(v any) bool {
			for _, r := range rules {
				if r.Check(v) {
					return true
				}
			}
			return false
		},
	}
}

func joinNames(rules []Rule, sep string) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.String()
	}
	return strings.Join(names, sep)
}

// float converts any Go number to float64.
func float(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// text returns the string value of any string kind other than json.Number.
func text(v any) (string, bool) {
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
