package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
)

func newTestTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tr, err := NewClient(Config{ServiceName: "catalog", AppEnv: "test"}, logger.NewNop(), sdktrace.WithSpanProcessor(sr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestObserveOperation(t *testing.T) {
	tr, sr := newTestTracer(t)

	tr.ObserveOperation(observability.OperationContext{
		Component:   "serializer",
		Operation:   "deserialize",
		Resource:    "patron",
		SubResource: "xml",
		Duration:    25 * time.Millisecond,
		Size:        2048,
		Metadata:    map[string]interface{}{"attempt": 2},
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "serializer.deserialize", span.Name())
	assert.Equal(t, 25*time.Millisecond, span.EndTime().Sub(span.StartTime()))
	assert.Equal(t, codes.Unset, span.Status().Code)

	a := attrs(span)
	assert.Equal(t, "patron", a["ils.schema"].AsString())
	assert.Equal(t, "xml", a["ils.format"].AsString())
	assert.Equal(t, int64(2048), a["ils.payload_bytes"].AsInt64())
	assert.Equal(t, int64(2), a["attempt"].AsInt64())

	res := span.Resource()
	v, ok := res.Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "catalog", v.AsString())
}

func TestObserveOperation_Error(t *testing.T) {
	tr, sr := newTestTracer(t)

	tr.ObserveOperation(observability.OperationContext{
		Component: "serializer",
		Operation: "serialize",
		Resource:  "hold_request",
		Error:     errors.New("encode xml payload"),
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "encode xml payload", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestStartSpan(t *testing.T) {
	tr, sr := newTestTracer(t)

	ctx, parent := tr.StartSpan(context.Background(), "fetch-patron")
	_, child := tr.StartSpan(ctx, "decode")
	tr.SetAttributes(child, map[string]interface{}{
		"schema":  "patron",
		"items":   3,
		"fines":   1.5,
		"blocked": false,
		"format":  struct{ Name string }{"xml"},
	})
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "decode", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())

	a := attrs(spans[0])
	assert.Equal(t, "patron", a["schema"].AsString())
	assert.Equal(t, int64(3), a["items"].AsInt64())
	assert.Equal(t, 1.5, a["fines"].AsFloat64())
	assert.False(t, a["blocked"].AsBool())
	assert.Equal(t, "{xml}", a["format"].AsString())
}

func TestShutdown_ZeroValue(t *testing.T) {
	assert.NoError(t, (&Tracer{}).Shutdown(context.Background()))
}
