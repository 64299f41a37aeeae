package serializer

import (
	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/schema"
)

// HashSerializer maps elements to keys of a plain map[string]any. It has no
// wrapping concept. Typed values are coerced; untyped values pass through.
type HashSerializer struct {
	*base
}

// NewHash creates a Hash serializer for s.
func NewHash(s *schema.Schema, opts ...Option) (*HashSerializer, error) {
	b, err := newBase(s, schema.Hash, opts)
	if err != nil {
		return nil, err
	}
	h := &HashSerializer{base: b}
	b.variant = h
	return h, nil
}

// decodeText rejects text: the Hash format only exists in memory.
func (h *HashSerializer) decodeText(_ []byte) (schema.Values, error) {
	return nil, ilserr.NewReceiveError("hash payload must be a mapping, got text", nil)
}

func (h *HashSerializer) encode(v schema.Values) (any, error) {
	tree, err := h.buildTree(h.schema, v, false)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func (h *HashSerializer) blank() any {
	return map[string]any{}
}
