package record

import (
	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
	"github.com/libcat/ilsrecord/v1/serializer"
)

// Option configures a record.
type Option func(*options)

type options struct {
	format   schema.Format
	logger   serializer.Logger
	observer observability.Observer
	store    serializer.SourceStore
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) serializerOptions() []serializer.Option {
	var out []serializer.Option
	if o.logger != nil {
		out = append(out, serializer.WithLogger(o.logger))
	}
	if o.observer != nil {
		out = append(out, serializer.WithObserver(o.observer))
	}
	if o.store != nil {
		out = append(out, serializer.WithSourceStore(o.store))
	}
	return out
}

// WithFormat sets the format of the input explicitly and skips sniffing.
func WithFormat(f schema.Format) Option {
	return func(o *options) { o.format = f }
}

// WithLogger sets the logger passed to the record's serializers.
func WithLogger(l serializer.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets the observer passed to the record's serializers.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithSourceStore sets the store receiving every deserialized payload.
func WithSourceStore(store serializer.SourceStore) Option {
	return func(o *options) { o.store = store }
}
