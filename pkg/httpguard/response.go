package httpguard

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/bycontract/pkg/exception"
)

// ErrorResponse is the JSON document written by WriteError.
type ErrorResponse struct {
	Code  string      `json:"code"`
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the contract failure code and message.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// WriteError is the default ErrorHandler.
func WriteError(w http.ResponseWriter, _ *http.Request, status int, err error) {
	code := "bad_request"
	switch status {
	case http.StatusUnprocessableEntity:
		code = "contract_violation"
	case http.StatusUnsupportedMediaType:
		code = "unsupported_media_type"
	case http.StatusRequestEntityTooLarge:
		code = "body_too_large"
	case http.StatusInternalServerError:
		code = "internal_error"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Code: code,
		Error: ErrorDetail{
			Code:    exception.CodeOf(err),
			Message: err.Error(),
		},
	})
}
