package record

import (
	"go.uber.org/fx"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
	"github.com/libcat/ilsrecord/v1/serializer"
)

// Factory builds records sharing one logger, observer and source store.
type Factory struct {
	opts []Option
}

// FactoryParams groups the dependencies of NewFactory. Every field is
// optional.
type FactoryParams struct {
	fx.In

	Logger    *logger.Logger            `optional:"true"`
	Observers []observability.Observer `group:"observers"`
	Store     serializer.SourceStore    `optional:"true"`
}

// NewFactory creates a Factory from p.
func NewFactory(p FactoryParams) *Factory {
	var opts []Option
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if len(p.Observers) > 0 {
		opts = append(opts, WithObserver(observability.Multi(p.Observers...)))
	}
	if p.Store != nil {
		opts = append(opts, WithSourceStore(p.Store))
	}
	return &Factory{opts: opts}
}

func (f *Factory) with(opts []Option) []Option {
	out := make([]Option, 0, len(f.opts)+len(opts))
	out = append(out, f.opts...)
	return append(out, opts...)
}

// New is New with the factory options applied before opts.
func (f *Factory) New(s *schema.Schema, data any, opts ...Option) (*Record, error) {
	return New(s, data, f.with(opts)...)
}

// Load is Load with the factory options applied before opts.
func (f *Factory) Load(s *schema.Schema, data any, opts ...Option) *Record {
	return Load(s, data, f.with(opts)...)
}

// FromError is FromError with the factory options applied before opts.
func (f *Factory) FromError(s *schema.Schema, err error, opts ...Option) *Record {
	return FromError(s, err, f.with(opts)...)
}
