// Package bycontract provides lightweight runtime contract checks for
// function arguments and other values.
//
// A contract is a compact type specification:
//
//   - a type expression: "string", "number", "array", "object", "regexp",
//     "undefined", "boolean", "null", "function", "nan", the wildcard "*", or
//     a custom type name; alternatives join with "|" ("string|null") and a
//     trailing "=" marks an optional position ("number=")
//   - a predicate: a func(any) bool or a named rule from pkg/validator
//   - a positional list of the above, checked index by index against a list
//     of values
//
// Basic usage:
//
//	func Greet(name string, times any) error {
//		_, err := bycontract.Validate([]any{name, times}, []string{"string", "number="}, "Greet")
//		return err
//	}
//
//	bycontract.Validate(42, "string")
//	// Expected string but got number
//
//	bycontract.Validate([]any{"x"}, []string{"string", "number"}, "Greet")
//	// Greet: Argument #1: Missing required argument
//
// Custom types are registered once and then referenced by name:
//
//	bycontract.Typedef("Id", "string|number")
//	bycontract.Typedef("User", verify.Shape{"id": "Id", "email": "string"})
//	bycontract.Validate(user, "User")
//
// ValidateCombo accepts values if any one of several positional lists fits:
//
//	bycontract.ValidateCombo(args, [][]string{
//		{"string", "number"},
//		{"object"},
//	})
//
// # Engines
//
// Package-level functions operate on a shared default Engine. New creates
// isolated engines with their own registry and options, which is what tests
// and libraries that do not want to share state should use. Engines are safe
// for concurrent use: Typedef and Config swap in fresh snapshots under a lock
// while Validate reads.
//
// # Disabling checks
//
// Config(WithEnable(false)) turns every Validate and ValidateCombo call into a
// pass-through. ConfigFromEnv reads the same switch from BYCONTRACT_ENABLE.
//
// # Errors
//
// Every failure is a *exception.Exception carrying one of the codes
// EINVALIDPARAM, EMISSINGARG, EINVALIDTYPE or EINVALIDCONTRACT and a message
// prefixed with the call context and argument position. Use errors.Is with the
// sentinels re-exported from this package to test for a class of failure.
package bycontract
