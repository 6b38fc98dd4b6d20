package httpguard

import "errors"

var (
	// ErrUnsupportedMediaType is returned when the request is not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidJSON is returned when the body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")
)
