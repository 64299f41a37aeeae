package schema

import (
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"
	"github.com/spf13/cast"
)

// Values holds decoded element values keyed by element name.
//
// Scalars use string, int64, float64, bool and time.Time. Scalar collections
// are []any, nested records are Values and nested collections []Values.
type Values map[string]any

// Clone returns a deep copy of v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return deepcopy.Copy(v).(Values)
}

// AsSlice returns the items of a sequence value. A non-sequence value is
// returned as a single item and ok is false. Nil yields no items.
func AsSlice(v any) (items []any, ok bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []Values:
		items = make([]any, len(t))
		for i := range t {
			items[i] = t[i]
		}
		return items, true
	case []byte:
		return []any{string(t)}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}, false
	}
	items = make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// AsValues converts a generic mapping to Values.
func AsValues(v any) (Values, error) {
	return toValues(v)
}

func toValues(v any) (Values, error) {
	switch t := v.(type) {
	case Values:
		return t, nil
	case map[string]any:
		return Values(t), nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("expected a mapping, got %T", v)
	}
	return Values(m), nil
}
