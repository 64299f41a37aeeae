package record

import (
	"fmt"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/schema"
	"github.com/libcat/ilsrecord/v1/serializer"
)

// Record is one ILS data payload interpreted through a schema. It owns one
// serializer per format of its schema and is either valid or in error state
// for its whole lifetime.
type Record struct {
	schema      *schema.Schema
	format      schema.Format
	serializers map[schema.Format]serializer.Serializer
	values      schema.Values
	err         error
	opts        options
}

// New builds a valid record of s from data, which may be wire text in any
// format of s or a mapping. The format is taken from WithFormat or sniffed
// from data. Errors are returned unchanged from the serializer; see Load for
// a constructor that never fails.
//
// With an explicit format, data that is neither text nor a mapping (nil
// included) yields a record holding the schema defaults.
func New(s *schema.Schema, data any, opts ...Option) (*Record, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", schema.ErrInvalidSchema)
	}
	r, err := decode(s, data, newOptions(opts))
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decode builds a record of s from data. When the serializer fails the
// partially built record is returned with the error so that its serializers,
// and the source data they hold, can back an error-state record.
func decode(s *schema.Schema, data any, o options) (*Record, error) {
	f := o.format
	if f == schema.FormatNone {
		var ok bool
		if f, ok = Sniff(data); !ok {
			return nil, fmt.Errorf("%w: %s input of type %T", ErrUnrecognizedInput, s.Name(), data)
		}
	}
	if !s.Supports(f) {
		return nil, fmt.Errorf("%w: schema %q does not support %s", schema.ErrUnsupportedFormat, s.Name(), f)
	}

	r, err := build(s, f, o)
	if err != nil {
		return nil, err
	}
	values, err := r.Serializer().Deserialize(data)
	if err != nil {
		return r, err
	}
	if values == nil {
		values = s.DefaultData()
	}
	r.values = values
	return r, nil
}

// FromError builds an error-state record of s carrying err. Element values
// come from an empty payload deserialized through the normal path, with every
// DefaultFunc evaluated against err. FromError never fails; a nil err is
// replaced by ErrNoSourceData.
func FromError(s *schema.Schema, err error, opts ...Option) *Record {
	return fromError(s, err, newOptions(opts), nil)
}

// fromError reuses the serializers of failed when it is not nil.
func fromError(s *schema.Schema, err error, o options, failed *Record) *Record {
	if err == nil {
		err = ErrNoSourceData
	}
	if s == nil {
		return &Record{err: err, values: schema.Values{}, opts: o}
	}

	r := failed
	if r == nil {
		f := o.format
		if !s.Supports(f) {
			f = s.Formats()[0]
		}
		var berr error
		r, berr = build(s, f, o)
		if berr != nil {
			return &Record{schema: s, format: f, values: s.ErrorData(err), err: err, opts: o}
		}
	}
	r.err = err

	values, derr := r.Serializer().DeserializeErrorData()
	if derr != nil || values == nil {
		values = s.DefaultData()
	}
	for _, e := range s.Elements() {
		if e.HasDefaultFunc() {
			values[e.Name()] = e.ErrorDefault(err)
		}
	}
	r.values = values

	r.logger().Warn("record: built in error state", err, map[string]interface{}{
		"schema": s.Name(),
		"format": r.format.String(),
	})
	return r
}

// Load is the boundary constructor: it behaves like New but converts every
// failure into an error-state record. Errors that are not already receive
// errors are wrapped in an ilserr.ReceiveError. Nil data yields an error
// record caused by ErrNoSourceData. The error record keeps the serializer
// that received data, so SourceData still returns the failed payload.
func Load(s *schema.Schema, data any, opts ...Option) *Record {
	if data == nil {
		return FromError(s, ilserr.NewReceiveError("", ErrNoSourceData), opts...)
	}
	o := newOptions(opts)
	var (
		r   *Record
		err error
	)
	if s == nil {
		err = fmt.Errorf("%w: nil schema", schema.ErrInvalidSchema)
	} else {
		r, err = decode(s, data, o)
	}
	if err == nil {
		return r
	}
	if !ilserr.IsReceiveError(err) {
		name := "<nil>"
		if s != nil {
			name = s.Name()
		}
		err = ilserr.NewReceiveError("load "+name, err)
	}
	return fromError(s, err, o, r)
}

func build(s *schema.Schema, f schema.Format, o options) (*Record, error) {
	sers, err := serializer.NewAll(s, o.serializerOptions()...)
	if err != nil {
		return nil, err
	}
	return &Record{schema: s, format: f, serializers: sers, opts: o}, nil
}

func (r *Record) logger() serializer.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return logger.NewNop()
}

// Format is the format the record was built from.
func (r *Record) Format() schema.Format { return r.format }

// Schema returns the schema of the record.
func (r *Record) Schema() *schema.Schema { return r.schema }

// Serializer returns the serializer of the record's own format.
func (r *Record) Serializer() serializer.Serializer {
	return r.serializers[r.format]
}

// SerializerFor returns the serializer of the record for format f.
func (r *Record) SerializerFor(f schema.Format) (serializer.Serializer, bool) {
	ser, ok := r.serializers[f]
	return ser, ok
}

// Deserialize replaces the element values of a valid record with those
// decoded from data by the record's serializer. Input that is neither text
// nor a mapping leaves the record unchanged and yields (nil, nil). Error-state
// records refuse with ErrErrorState.
func (r *Record) Deserialize(data any) (*Record, error) {
	if r.IsError() {
		return nil, fmt.Errorf("%w: %w", ErrErrorState, r.err)
	}
	values, err := r.Serializer().Deserialize(data)
	if err != nil || values == nil {
		return nil, err
	}
	r.values = values
	return r, nil
}

// Serialize renders the record in format f: []byte for JSON and XML,
// map[string]any for Hash.
func (r *Record) Serialize(f schema.Format) (any, error) {
	ser, ok := r.serializers[f]
	if !ok {
		name := "<nil>"
		if r.schema != nil {
			name = r.schema.Name()
		}
		return nil, fmt.Errorf("%w: schema %q does not support %s", schema.ErrUnsupportedFormat, name, f)
	}
	return ser.Serialize(r.values)
}

// JSON renders the record as JSON.
func (r *Record) JSON() ([]byte, error) {
	out, err := r.Serialize(schema.JSON)
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

// XML renders the record as XML.
func (r *Record) XML() ([]byte, error) {
	out, err := r.Serialize(schema.XML)
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

// Hash renders the record as a plain map keyed by Hash wire names.
func (r *Record) Hash() (map[string]any, error) {
	out, err := r.Serialize(schema.Hash)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// IsError reports whether the record was built from an error.
func (r *Record) IsError() bool { return r.err != nil }

// IsValid reports whether the record was built from real or synthesized data.
func (r *Record) IsValid() bool { return r.err == nil }

// Err returns the error an error-state record was built from.
func (r *Record) Err() error { return r.err }

// DefaultData returns the schema defaults, freshly copied.
func (r *Record) DefaultData() schema.Values {
	if r.schema == nil {
		return schema.Values{}
	}
	return r.schema.DefaultData()
}
