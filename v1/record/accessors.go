package record

import (
	"time"

	"github.com/spf13/cast"

	"github.com/libcat/ilsrecord/v1/schema"
)

// Values returns a deep copy of the element values keyed by element name.
func (r *Record) Values() schema.Values {
	return r.values.Clone()
}

// Get returns the value of the named element. The value is shared with the
// record and must not be modified.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String returns the named element as a string.
func (r *Record) String(name string) string {
	v := r.values[name]
	if e, ok := r.element(name); ok && e.Type().Scalar() {
		return e.Type().Text(v)
	}
	return cast.ToString(v)
}

// Int returns the named element as an int64, or 0.
func (r *Record) Int(name string) int64 {
	return cast.ToInt64(r.values[name])
}

// Float returns the named element as a float64, or 0.
func (r *Record) Float(name string) float64 {
	return cast.ToFloat64(r.values[name])
}

// Bool returns the named element as a bool, or false.
func (r *Record) Bool(name string) bool {
	return cast.ToBool(r.values[name])
}

// Time returns the named date or date-time element, or the zero time.
func (r *Record) Time(name string) time.Time {
	switch v := r.values[name].(type) {
	case time.Time:
		return v
	case nil:
		return time.Time{}
	default:
		return cast.ToTimeInDefaultLocation(v, time.UTC)
	}
}

// Strings returns the named scalar collection as strings.
func (r *Record) Strings(name string) []string {
	items, _ := schema.AsSlice(r.values[name])
	out := make([]string, 0, len(items))
	e, typed := r.element(name)
	for _, item := range items {
		if typed && e.Type().Scalar() {
			out = append(out, e.Type().Text(item))
			continue
		}
		out = append(out, cast.ToString(item))
	}
	return out
}

// Record returns the nested record held by a has_one element, or nil when
// the element is absent or not a nested record. The child shares the
// format, options and state of r.
func (r *Record) Record(name string) *Record {
	e, ok := r.element(name)
	if !ok || !e.Nested() || e.Collection() {
		return nil
	}
	v, ok := r.values[name]
	if !ok || v == nil {
		return nil
	}
	values, err := schema.AsValues(v)
	if err != nil {
		return nil
	}
	return r.child(e.Type().Record, values)
}

// Records returns the nested records held by a has_many element.
func (r *Record) Records(name string) []*Record {
	e, ok := r.element(name)
	if !ok || !e.Nested() {
		return nil
	}
	items, _ := schema.AsSlice(r.values[name])
	out := make([]*Record, 0, len(items))
	for _, item := range items {
		values, err := schema.AsValues(item)
		if err != nil {
			continue
		}
		out = append(out, r.child(e.Type().Record, values))
	}
	return out
}

func (r *Record) child(s *schema.Schema, values schema.Values) *Record {
	f := r.format
	if !s.Supports(f) {
		f = s.Formats()[0]
	}
	c, err := build(s, f, r.opts)
	if err != nil {
		c = &Record{schema: s, format: f, opts: r.opts}
	}
	c.values = values
	c.err = r.err
	return c
}

func (r *Record) element(name string) (*schema.Element, bool) {
	if r.schema == nil {
		return nil, false
	}
	return r.schema.Element(name)
}
