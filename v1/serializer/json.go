package serializer

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/schema"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// JSONSerializer renders every element as a named member of a JSON object.
// Collections are bare arrays unless wrapped with schema.Wrap(schema.JSON, true),
// in which case they become {"<wire>": {"<item>": [...]}}.
type JSONSerializer struct {
	*base
}

// NewJSON creates a JSON serializer for s.
func NewJSON(s *schema.Schema, opts ...Option) (*JSONSerializer, error) {
	b, err := newBase(s, schema.JSON, opts)
	if err != nil {
		return nil, err
	}
	j := &JSONSerializer{base: b}
	b.variant = j
	return j, nil
}

// decodeText accepts an object, an object wrapped in a single member named
// after the schema root, or an array whose first object is used. An empty
// array decodes like an empty object. Numbers are kept as json.Number so
// that integers beyond float64 precision survive.
func (j *JSONSerializer) decodeText(text []byte) (schema.Values, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, ilserr.NewReceiveError("invalid json payload", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ilserr.NewReceiveError("invalid json payload", errTrailingData)
	}
	if list, ok := tree.([]any); ok {
		if len(list) == 0 {
			return j.populateMap(j.schema, schema.Values{})
		}
		tree = list[0]
	}
	obj, ok := tree.(map[string]any)
	if !ok {
		return nil, ilserr.NewReceiveError("json payload is not an object", nil)
	}
	return j.populateMap(j.schema, j.unwrapRoot(obj))
}

// unwrapRoot strips a {"<root>": {...}} envelope unless the root name is
// itself an element of the schema.
func (j *JSONSerializer) unwrapRoot(obj map[string]any) schema.Values {
	if len(obj) != 1 {
		return obj
	}
	root := j.schema.RootName(schema.JSON)
	inner, ok := obj[root].(map[string]any)
	if !ok {
		return obj
	}
	for _, e := range j.schema.Elements() {
		if e.WireName(schema.JSON) == root {
			return obj
		}
	}
	return inner
}

func (j *JSONSerializer) encode(v schema.Values) (any, error) {
	tree, err := j.buildTree(j.schema, v, true)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(tree)
	if err != nil {
		return nil, ilserr.NewTransmitError("encode json payload", err)
	}
	return out, nil
}

func (j *JSONSerializer) blank() any {
	return []byte("{}")
}
