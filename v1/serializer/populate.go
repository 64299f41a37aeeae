package serializer

import (
	"fmt"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/schema"
)

// populateMap walks the elements of s over a generic mapping keyed by wire
// names. JSON payloads and all mapping input use it.
func (b *base) populateMap(s *schema.Schema, m schema.Values) (schema.Values, error) {
	elems := s.Elements()
	out := make(schema.Values, len(elems))
	for _, e := range elems {
		raw := m[e.WireName(b.format)]
		switch {
		case e.Collection():
			if e.Wrapped(b.format) && raw != nil {
				wrapper, err := schema.AsValues(raw)
				if err != nil {
					return nil, mismatch(s, e, err)
				}
				raw = wrapper[e.ItemName(b.format)]
			}
			items, _ := schema.AsSlice(raw)
			v, err := b.collection(s, e, items, func(rs *schema.Schema, item any) (schema.Values, error) {
				nested, err := schema.AsValues(item)
				if err != nil {
					return nil, err
				}
				return b.populateMap(rs, nested)
			})
			if err != nil {
				return nil, err
			}
			out[e.Name()] = v

		case e.Nested():
			if raw == nil {
				out[e.Name()] = e.Default()
				continue
			}
			nested, err := schema.AsValues(raw)
			if err != nil {
				return nil, mismatch(s, e, err)
			}
			v, err := b.populateMap(e.Type().Record, nested)
			if err != nil {
				return nil, err
			}
			out[e.Name()] = v

		default:
			out[e.Name()] = b.scalar(s, e, raw)
		}
	}
	return out, nil
}

// collection builds the value of a has_many element from its raw items.
// Scalar collections yield []any, nested collections []schema.Values; both
// are non-nil so that absent collections decode to empty sequences.
func (b *base) collection(s *schema.Schema, e *schema.Element, items []any, nested func(*schema.Schema, any) (schema.Values, error)) (any, error) {
	if e.Nested() {
		out := make([]schema.Values, 0, len(items))
		for _, item := range items {
			v, err := nested(e.Type().Record, item)
			if err != nil {
				return nil, mismatch(s, e, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, b.item(s, e, item))
	}
	return out, nil
}

// scalar coerces a single scalar value, falling back to the element default
// when the value is blank or cannot be coerced.
func (b *base) scalar(s *schema.Schema, e *schema.Element, raw any) any {
	t := e.Type()
	if t.Blank(raw) {
		return e.Default()
	}
	if b.untyped(t, raw) {
		return raw
	}
	v, err := t.Coerce(raw)
	if err == nil {
		return v
	}
	b.fallback(s, e, raw, err)
	return e.Default()
}

// item coerces one member of a scalar collection. Members that cannot be
// coerced become the zero value of the element type so that positions are
// preserved.
func (b *base) item(s *schema.Schema, e *schema.Element, raw any) any {
	t := e.Type()
	if t.Blank(raw) {
		return t.Zero()
	}
	if b.untyped(t, raw) {
		return raw
	}
	v, err := t.Coerce(raw)
	if err == nil {
		return v
	}
	b.fallback(s, e, raw, err)
	return t.Zero()
}

// untyped reports whether raw is kept as is. Hash String elements are
// untyped: values other than strings are not converted.
func (b *base) untyped(t schema.Type, raw any) bool {
	if b.format != schema.Hash || t.Kind != schema.KindString {
		return false
	}
	_, ok := raw.(string)
	return !ok
}

func (b *base) fallback(s *schema.Schema, e *schema.Element, raw any, err error) {
	b.opts.logger.Warn(component+": value not coercible, using default", err, map[string]interface{}{
		"schema":  s.Name(),
		"element": e.Name(),
		"type":    e.Type().String(),
		"format":  b.format.String(),
		"value":   fmt.Sprint(raw),
	})
}

func mismatch(s *schema.Schema, e *schema.Element, err error) error {
	if ilserr.IsReceiveError(err) {
		return err
	}
	return ilserr.NewReceiveError(fmt.Sprintf("%s.%s", s.Name(), e.Name()), err)
}

// valueOf returns the value of e in v, or its default when absent.
func valueOf(v schema.Values, e *schema.Element) any {
	if val, ok := v[e.Name()]; ok {
		return val
	}
	return e.Default()
}
