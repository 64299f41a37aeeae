package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
)

// FXModule provides *Tracer and adds it to the "observers" value group
// consumed by record.FXModule. The provider is shut down, flushing pending
// spans, when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Supply(tracer.Config{ServiceName: "catalog"}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config, log *logger.Logger) (*Tracer, error) {
			return NewClient(cfg, log)
		},
		fx.Annotate(
			func(t *Tracer) observability.Observer { return t },
			fx.ResultTags(`group:"observers"`),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer down on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			t.logger.Info("shutting down tracer", nil, nil)
			return t.Shutdown(ctx)
		},
	})
}
