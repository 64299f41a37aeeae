package serializer

import (
	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
)

// Serializer converts the values of one record between their in-memory form
// and one wire format. Every Serializer is bound to one schema and one
// format and belongs to exactly one record.
type Serializer interface {
	// Format is the wire format this serializer handles.
	Format() schema.Format

	// Serialize renders v. The result is a []byte for JSON and XML and a
	// map[string]any for Hash. Errors are logged and returned unchanged.
	Serialize(v schema.Values) (any, error)

	// Deserialize decodes data, which must be a string or []byte in the
	// serializer's wire format, or a mapping. Any other input, including nil,
	// yields (nil, nil): nothing to parse is not a parse error.
	Deserialize(data any) (schema.Values, error)

	// DeserializeErrorData decodes a synthesized empty payload through the
	// normal decode path, producing a structurally valid record of defaults.
	// It leaves SourceData and the source store untouched.
	DeserializeErrorData() (schema.Values, error)

	// SourceData returns the payload most recently passed to Deserialize.
	SourceData() any
}

// Logger is the logging contract of the serializer package. It is satisfied
// by *logger.Logger.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Option configures a serializer.
type Option func(*options)

type options struct {
	logger   Logger
	observer observability.Observer
	store    SourceStore
}

// WithLogger sets the logger used for diagnostics and coercion fallbacks.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets the observer notified with the duration of every
// serialize and deserialize call.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithSourceStore sets a store that additionally receives every
// deserialized payload under SourceKey(schema, format).
func WithSourceStore(store SourceStore) Option {
	return func(o *options) { o.store = store }
}
