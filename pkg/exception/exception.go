package exception

import (
	"errors"
	"strconv"
)

// Error codes.
const (
	// CodeInvalidParam marks misuse of the validation API itself.
	CodeInvalidParam = "EINVALIDPARAM"
	// CodeMissingArg marks a required positional argument that was not supplied.
	CodeMissingArg = "EMISSINGARG"
	// CodeInvalidType marks a value that does not satisfy its contract.
	CodeInvalidType = "EINVALIDTYPE"
	// CodeInvalidContract marks a contract that cannot be evaluated.
	CodeInvalidContract = "EINVALIDCONTRACT"
)

// Sentinels for errors.Is. They match any Exception with the same code.
var (
	ErrInvalidParam    = &Exception{Code: CodeInvalidParam}
	ErrMissingArg      = &Exception{Code: CodeMissingArg}
	ErrInvalidType     = &Exception{Code: CodeInvalidType}
	ErrInvalidContract = &Exception{Code: CodeInvalidContract}
)

// Exception is a contract failure with a machine-readable code.
type Exception struct {
	Code    string
	Message string
}

// New creates an exception.
func New(code, message string) *Exception {
	return &Exception{Code: code, Message: message}
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Message
}

// Is matches exceptions by code.
func (e *Exception) Is(target error) bool {
	var t *Exception
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Prefix returns a copy whose message is prefixed with "<callContext>: " when
// callContext is non-empty and "Argument #<index>: " when index is non-negative.
func (e *Exception) Prefix(callContext string, index int) *Exception {
	return &Exception{Code: e.Code, Message: Compose(e.Message, callContext, index)}
}

// WithPrefix returns a copy whose message starts with prefix.
func (e *Exception) WithPrefix(prefix string) *Exception {
	return &Exception{Code: e.Code, Message: prefix + e.Message}
}

// Compose builds a message in the "<context>: Argument #<i>: <msg>" form.
// A negative index omits the argument part.
func Compose(msg, callContext string, index int) string {
	var loc, prefix string
	if index >= 0 {
		loc = "Argument #" + strconv.Itoa(index) + ": "
	}
	if callContext != "" {
		prefix = callContext + ": "
	}
	return prefix + loc + msg
}

// CodeOf returns the code of the first Exception in err's chain, or "".
func CodeOf(err error) string {
	var e *Exception
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// As extracts the Exception from err's chain.
func As(err error) (*Exception, bool) {
	var e *Exception
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
