package main

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dmitrymomot/bycontract/pkg/is"
)

// parseValue reads an argument as JSON, falling back to a plain string.
// The bare word "undefined" stands for an absent value.
func parseValue(arg string) any {
	if arg == "undefined" {
		return is.Undef
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(arg)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return arg
	}
	return v
}

func parseValues(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = parseValue(arg)
	}
	return values
}

// splitList turns "string, number=" into a contract list.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
