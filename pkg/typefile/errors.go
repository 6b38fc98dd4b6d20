package typefile

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .json.
	ErrUnsupportedFormat = errors.New("unsupported type file format")

	// ErrDecode is returned when a document cannot be decoded.
	ErrDecode = errors.New("failed to decode type file")

	// ErrInvalidDefinition is returned for definitions that are neither aliases nor shapes.
	ErrInvalidDefinition = errors.New("invalid type definition")

	// ErrRegister is returned when the registry rejects a definition.
	ErrRegister = errors.New("failed to register type")
)
