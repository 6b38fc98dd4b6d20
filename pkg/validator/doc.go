// Package validator provides named predicate rules that can be used anywhere
// a contract is accepted.
//
// A Rule pairs a boolean check with a short name. The name is what failure
// messages report as the expected type, so a failed UUID check reads
// "Expected uuid but got string":
//
//	bycontract.Validate([]any{id, email, age}, []any{
//	    validator.UUID(),
//	    validator.Email(),
//	    validator.Between(18, 130),
//	})
//
// Rules register as custom types too:
//
//	bycontract.Typedef("Email", validator.Email())
//	bycontract.Typedef("Signup", verify.Shape{"email": "Email", "age": "number="})
//
// Rules never panic on unexpected input: a value of the wrong Go type simply
// fails the check.
package validator
