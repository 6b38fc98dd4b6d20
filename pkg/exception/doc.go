// Package exception defines the structured error raised by contract checks.
//
// An Exception carries a symbolic Code from a small closed set and a fully
// composed human-readable Message. Exceptions are never mutated; enriching a
// message with call context or argument position produces a new value that
// keeps the original code.
//
//	err := exception.New(exception.CodeMissingArg, "Missing required argument")
//	err = err.Prefix("api.Create", 1)
//	// err.Error() == "api.Create: Argument #1: Missing required argument"
//
// Exceptions match with errors.Is by code, so callers can test for a class of
// failure without comparing messages:
//
//	if errors.Is(err, exception.ErrMissingArg) {
//	    // ...
//	}
package exception
