// Package logger provides structured logging for the ILS record packages.
//
// Logger wraps a zap.Logger and exposes leveled methods taking a message,
// an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Debug})
//	log.Debug("deserialized record", nil, map[string]interface{}{
//		"schema": "patron",
//		"format": "json",
//	})
//
// Library packages never depend on *Logger directly. They declare a small
// Logger interface of their own with the same method set, so any logger with
// these methods (including *Logger) can be passed in. NewNop returns a
// logger that discards everything and is used as the default.
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=debug      # debug, info, warning, error
//	LOGGER_SERVICE_NAME=ils     # value of the "service" field
//	LOGGER_CONSOLE=true         # console instead of JSON encoding
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: logger.Info, ServiceName: "ils"}),
//	)
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
