package record

import "go.uber.org/fx"

// FXModule provides a *Factory built from whatever logger, observers and
// source store the application supplies.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    record.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info}),
//	    fx.Supply(metrics.Config{Namespace: "catalog"}),
//	    fx.Invoke(func(f *record.Factory) {
//	        // build records
//	    }),
//	)
//
// Observers are collected from the "observers" value group, to which the
// metrics and tracer modules contribute.
var FXModule = fx.Module("record",
	fx.Provide(
		NewFactory,
	),
)
