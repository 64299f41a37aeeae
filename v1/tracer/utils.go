package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/libcat/ilsrecord/v1/observability"
)

// ObserveOperation records a completed operation as a span named
// "<component>.<operation>" whose timestamps cover the reported duration.
// It implements observability.Observer.
func (t *Tracer) ObserveOperation(op observability.OperationContext) {
	end := time.Now()
	_, span := t.tracer.Start(context.Background(), op.Component+"."+op.Operation,
		oteltrace.WithTimestamp(end.Add(-op.Duration)),
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			attribute.String("ils.schema", op.Resource),
			attribute.String("ils.format", op.SubResource),
			attribute.Int64("ils.payload_bytes", op.Size),
		),
	)
	t.SetAttributes(span, op.Metadata)
	if op.Error != nil {
		t.RecordErrorOnSpan(span, op.Error)
	}
	span.End(oteltrace.WithTimestamp(end))
}

// StartSpan creates a span that is a child of any span in ctx.
//
// Example:
//
//	ctx, span := t.StartSpan(ctx, "fetch-patron")
//	defer span.End()
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, oteltrace.Span) {
	return t.tracer.Start(ctx, name)
}

// RecordErrorOnSpan records err on span and marks the span failed.
func (t *Tracer) RecordErrorOnSpan(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attributes to span. Strings, ints, int64s, float64s and
// bools keep their type; other values are converted with fmt.Sprint.
func (t *Tracer) SetAttributes(span oteltrace.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}
	span.SetAttributes(attributes...)
}
