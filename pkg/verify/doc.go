// Package verify checks a single value against one contract atom and
// produces the canonical "Expected X but got Y" failure.
//
// A contract handled here is one of:
//
//   - a type expression string: a primitive name ("string", "number", "*", ...)
//     or a custom type name, optionally joined with "|" for alternatives and
//     optionally suffixed with "=" to accept an undefined value
//   - a Shape (or map[string]any / map[string]string) describing the fields of
//     an object, each field holding a nested contract
//   - a Predicate, a plain func(any) bool, or a Checker with a descriptive name
//
// Custom type names are resolved through a Resolver, which the root package
// backs with its type registry:
//
//	v := verify.New(verify.ResolverFunc(func(name string) (any, bool) {
//	    def, ok := types[name]
//	    return def, ok
//	}))
//	err := v.Verify(value, "Point|null")
//
// All failures are *exception.Exception values. Mismatches carry
// exception.CodeInvalidType; contracts that cannot be evaluated (unknown
// names, malformed expressions, unsupported values) carry
// exception.CodeInvalidContract.
package verify
