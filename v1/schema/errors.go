package schema

import "errors"

var (
	// ErrInvalidSchema is returned by Builder.Build for malformed declarations.
	ErrInvalidSchema = errors.New("schema: invalid declaration")

	// ErrUnknownType is returned when a type does not resolve to a scalar kind
	// or a declared record schema.
	ErrUnknownType = errors.New("schema: unknown type")

	// ErrUnsupportedFormat is returned when a schema is used with a format it
	// was not compiled for.
	ErrUnsupportedFormat = errors.New("schema: unsupported format")
)

// IsUnknownTypeError checks if the error is an unresolved type error.
func IsUnknownTypeError(err error) bool {
	return errors.Is(err, ErrUnknownType)
}

// IsUnsupportedFormatError checks if the error reports an unsupported format.
func IsUnsupportedFormatError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}
