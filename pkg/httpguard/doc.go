// Package httpguard applies contract checks to incoming HTTP requests.
//
// Body decodes a JSON request body, validates the decoded value and hands the
// request on with its body restored. Params validates chi URL parameters.
// Both answer with a JSON error document when a check fails:
//
//	r := chi.NewRouter()
//	r.With(
//	    httpguard.Params(engine, map[string]any{"id": validator.UUID()}),
//	    httpguard.Body(engine, "User"),
//	).Put("/users/{id}", updateUser)
//
// The decoded body is available to handlers through Decoded, so it need not
// be parsed twice. Numbers are decoded as json.Number.
//
// Status codes:
//   - 415 when the content type is not application/json
//   - 413 when the body exceeds the size limit
//   - 400 when the body is not valid JSON or a URL parameter fails its contract
//   - 422 when the body fails its contract
package httpguard
