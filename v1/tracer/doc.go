// Package tracer provides OpenTelemetry tracing for ILS record processing.
//
// *Tracer implements observability.Observer: every reported serialize or
// deserialize call becomes a span named "serializer.<operation>" carrying
// the schema, format and payload size, with its start and end timestamps
// derived from the measured duration. Failed calls record the error and set
// the span status.
//
// StartSpan, RecordErrorOnSpan and SetAttributes are available for spans of
// the surrounding application, such as the ILS HTTP call whose response a
// record is built from.
//
// # FX Integration
//
// FXModule provides *Tracer from a Config and a *logger.Logger, contributes
// it to the "observers" value group and shuts the provider down on stop.
package tracer
