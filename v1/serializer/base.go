package serializer

import (
	"fmt"
	"reflect"
	"time"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
	"github.com/libcat/ilsrecord/v1/schema"
)

const component = "serializer"

// variant holds the format specific hooks of a serializer.
type variant interface {
	// decodeText parses wire text and populates element values from it.
	decodeText(text []byte) (schema.Values, error)
	// encode renders element values in the wire format.
	encode(v schema.Values) (any, error)
	// blank returns an empty payload in the wire format.
	blank() any
}

// base implements the format independent part of every serializer:
// input dispatch, timing, logging and source data retention.
type base struct {
	schema  *schema.Schema
	format  schema.Format
	variant variant
	opts    options
	source  any
}

func newBase(s *schema.Schema, f schema.Format, opts []Option) (*base, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", schema.ErrInvalidSchema)
	}
	if !s.Supports(f) {
		return nil, fmt.Errorf("%w: schema %q does not support %s", schema.ErrUnsupportedFormat, s.Name(), f)
	}
	b := &base{schema: s, format: f}
	for _, opt := range opts {
		opt(&b.opts)
	}
	if b.opts.logger == nil {
		b.opts.logger = logger.NewNop()
	}
	return b, nil
}

func (b *base) Format() schema.Format { return b.format }

func (b *base) SourceData() any { return b.source }

func (b *base) Serialize(v schema.Values) (out any, err error) {
	start := time.Now()
	defer func() { b.observe("serialize", start, size(out), err) }()
	return b.variant.encode(v)
}

func (b *base) Deserialize(data any) (out schema.Values, err error) {
	var (
		text []byte
		m    schema.Values
	)
	switch d := data.(type) {
	case string:
		text = []byte(d)
	case []byte:
		text = d
	case schema.Values:
		m = d
	case map[string]any:
		m = d
	default:
		if data == nil || reflect.ValueOf(data).Kind() != reflect.Map {
			return nil, nil
		}
		m, err = schema.AsValues(data)
		if err != nil {
			return nil, nil
		}
	}

	start := time.Now()
	defer func() { b.observe("deserialize", start, size(data), err) }()

	b.source = data
	if b.opts.store != nil {
		b.opts.store.Put(SourceKey(b.schema, b.format), data)
	}
	if m != nil {
		return b.populateMap(b.schema, m)
	}
	return b.variant.decodeText(text)
}

// DeserializeErrorData populates values from an empty payload. The blank
// payload is not recorded as source data and is not observed.
func (b *base) DeserializeErrorData() (schema.Values, error) {
	switch blank := b.variant.blank().(type) {
	case []byte:
		return b.variant.decodeText(blank)
	case map[string]any:
		return b.populateMap(b.schema, blank)
	default:
		return nil, nil
	}
}

// observe reports one completed call. It never changes the call's results.
func (b *base) observe(op string, start time.Time, n int, err error) {
	elapsed := time.Since(start)
	fields := map[string]interface{}{
		"schema":     b.schema.Name(),
		"format":     b.format.String(),
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
	}
	if err != nil {
		b.opts.logger.Error(component+": "+op+" failed", err, fields)
	} else {
		b.opts.logger.Debug(component+": "+op, nil, fields)
	}
	if b.opts.observer != nil {
		b.opts.observer.ObserveOperation(observability.OperationContext{
			Component:   component,
			Operation:   op,
			Resource:    b.schema.Name(),
			SubResource: b.format.String(),
			Duration:    elapsed,
			Error:       err,
			Size:        int64(n),
		})
	}
}

func size(data any) int {
	switch d := data.(type) {
	case string:
		return len(d)
	case []byte:
		return len(d)
	default:
		return 0
	}
}
