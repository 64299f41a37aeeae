package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libcat/ilsrecord/v1/schema"
)

type attrs map[string]string

func TestSniff(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		want   schema.Format
		wantOK bool
	}{
		{"xml string", "<foo>1</foo>", schema.XML, true},
		{"xml bytes", []byte(`<?xml version="1.0"?><patron/>`), schema.XML, true},
		{"json object", `{"a":1}`, schema.JSON, true},
		{"json array", []byte(`[{"a":1}]`), schema.JSON, true},
		{"leading whitespace", "\n\t  {\"a\":1}", schema.JSON, true},
		{"byte order mark", "\ufeff<patron/>", schema.XML, true},
		{"mapping", map[string]any{"a": 1}, schema.Hash, true},
		{"values", schema.Values{"a": 1}, schema.Hash, true},
		{"typed mapping", attrs{"a": "1"}, schema.Hash, true},
		{"plain text", "not recognized", schema.FormatNone, false},
		{"empty", "", schema.FormatNone, false},
		{"whitespace only", "   ", schema.FormatNone, false},
		{"nil", nil, schema.FormatNone, false},
		{"number", 42, schema.FormatNone, false},
		{"slice", []string{"<a/>"}, schema.FormatNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sniff(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
