package bycontract

import "github.com/dmitrymomot/bycontract/pkg/exception"

// Exception is the structured error returned by every check.
type Exception = exception.Exception

// Error codes.
const (
	CodeInvalidParam    = exception.CodeInvalidParam
	CodeMissingArg      = exception.CodeMissingArg
	CodeInvalidType     = exception.CodeInvalidType
	CodeInvalidContract = exception.CodeInvalidContract
)

// Sentinels for errors.Is; they match by code.
var (
	ErrInvalidParam    = exception.ErrInvalidParam
	ErrMissingArg      = exception.ErrMissingArg
	ErrInvalidType     = exception.ErrInvalidType
	ErrInvalidContract = exception.ErrInvalidContract
)

func invalidParam(msg, callContext string) *exception.Exception {
	return exception.New(exception.CodeInvalidParam, exception.Compose(msg, callContext, -1))
}
