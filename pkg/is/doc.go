// Package is provides the fixed set of primitive type predicates used by
// contract checks.
//
// Every Go value maps onto exactly one Kind through Of. The mapping follows a
// fixed precedence so NaN reports as nan rather than number, and nil pointers
// report as null rather than object:
//
//	undefined, null, nan, number, string, boolean, function, regexp, array, object
//
// Kind names are matched case-insensitively, so "String" and "string" name the
// same kind. The wildcard "*" (Any) matches every value.
//
// # Go value mapping
//
//   - Undefined: the Undefined sentinel (absent positions and absent fields)
//   - Null: untyped nil, nil pointers, interfaces, funcs and channels
//   - NaN: float32/float64 NaN
//   - Number: every int, uint and float kind, and json.Number
//   - String, Boolean: string and bool kinds
//   - Function: non-nil funcs
//   - RegExp: *regexp.Regexp and regexp.Regexp
//   - Array: slices and arrays
//   - Object: maps, structs, pointers to them, and anything else
package is
