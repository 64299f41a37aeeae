package serializer

import (
	"fmt"
	"time"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/schema"
)

// buildTree renders element values as a generic mapping keyed by the wire
// names of b.format. With textTimes set, dates are rendered as wire text;
// otherwise time.Time values are kept.
func (b *base) buildTree(s *schema.Schema, v schema.Values, textTimes bool) (map[string]any, error) {
	elems := s.Elements()
	out := make(map[string]any, len(elems))
	for _, e := range elems {
		val := valueOf(v, e)
		wire := e.WireName(b.format)

		switch {
		case e.Collection():
			items, _ := schema.AsSlice(val)
			list := make([]any, 0, len(items))
			for _, item := range items {
				if e.Nested() {
					nested, err := b.nestedTree(s, e, item, textTimes)
					if err != nil {
						return nil, err
					}
					list = append(list, nested)
					continue
				}
				list = append(list, treeScalar(e.Type(), item, textTimes))
			}
			if e.Wrapped(b.format) {
				out[wire] = map[string]any{e.ItemName(b.format): list}
			} else {
				out[wire] = list
			}

		case e.Nested():
			if val == nil {
				continue
			}
			nested, err := b.nestedTree(s, e, val, textTimes)
			if err != nil {
				return nil, err
			}
			out[wire] = nested

		default:
			out[wire] = treeScalar(e.Type(), val, textTimes)
		}
	}
	return out, nil
}

func (b *base) nestedTree(s *schema.Schema, e *schema.Element, val any, textTimes bool) (map[string]any, error) {
	nested, err := schema.AsValues(val)
	if err != nil {
		return nil, ilserr.NewTransmitError(fmt.Sprintf("%s.%s", s.Name(), e.Name()), err)
	}
	return b.buildTree(e.Type().Record, nested, textTimes)
}

// treeScalar converts a scalar to a JSON-compatible value. Values that do not
// match the element type are coerced first. Uncoercible values pass through
// unchanged into mappings and are emitted as text otherwise. Mappings keep
// String values that are not strings unchanged.
func treeScalar(t schema.Type, v any, textTimes bool) any {
	if _, ok := v.(string); !ok && !textTimes && t.Kind == schema.KindString && v != nil {
		return v
	}
	c, err := t.Coerce(v)
	if err != nil && !textTimes {
		return v
	}
	if err == nil {
		v = c
	}
	switch t.Kind {
	case schema.KindDate, schema.KindDateTime:
		if tm, ok := v.(time.Time); ok && !textTimes {
			return tm
		}
		return t.Text(v)
	case schema.KindInteger, schema.KindFloat, schema.KindBoolean:
		return v
	default:
		return t.Text(v)
	}
}
