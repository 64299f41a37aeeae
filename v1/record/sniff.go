package record

import (
	"bytes"
	"reflect"

	"github.com/libcat/ilsrecord/v1/schema"
)

var bom = []byte("\ufeff")

// Sniff infers the wire format from the shape of data: a mapping is Hash,
// text starting with '<' is XML and text starting with '{' or '[' is JSON.
// Leading whitespace and a UTF-8 byte order mark are ignored. Anything else
// yields (FormatNone, false).
func Sniff(data any) (schema.Format, bool) {
	var text []byte
	switch d := data.(type) {
	case nil:
		return schema.FormatNone, false
	case string:
		text = []byte(d)
	case []byte:
		text = d
	case schema.Values, map[string]any:
		return schema.Hash, true
	default:
		if reflect.ValueOf(data).Kind() == reflect.Map {
			return schema.Hash, true
		}
		return schema.FormatNone, false
	}

	text = bytes.TrimSpace(bytes.TrimPrefix(bytes.TrimSpace(text), bom))
	if len(text) == 0 {
		return schema.FormatNone, false
	}
	switch text[0] {
	case '<':
		return schema.XML, true
	case '{', '[':
		return schema.JSON, true
	}
	return schema.FormatNone, false
}
