package serializer

import (
	"fmt"

	"github.com/libcat/ilsrecord/v1/schema"
)

// New creates the serializer of s for format f.
func New(s *schema.Schema, f schema.Format, opts ...Option) (Serializer, error) {
	var (
		ser Serializer
		err error
	)
	switch f {
	case schema.JSON:
		ser, err = NewJSON(s, opts...)
	case schema.XML:
		ser, err = NewXML(s, opts...)
	case schema.Hash:
		ser, err = NewHash(s, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", schema.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}
	return ser, nil
}

// NewAll creates one serializer for every format s supports.
func NewAll(s *schema.Schema, opts ...Option) (map[schema.Format]Serializer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil schema", schema.ErrInvalidSchema)
	}
	out := make(map[schema.Format]Serializer, len(s.Formats()))
	for _, f := range s.Formats() {
		ser, err := New(s, f, opts...)
		if err != nil {
			return nil, err
		}
		out[f] = ser
	}
	return out, nil
}
