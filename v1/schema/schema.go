package schema

import "slices"

// Schema is a compiled record schema: an ordered, immutable list of elements
// plus per-format naming. A Schema is safe for concurrent use.
type Schema struct {
	name    string
	formats []Format
	naming  [formatSlots]NamingMode
	roots   [formatSlots]string
	elems   []*Element
	index   map[string]*Element
}

func (s *Schema) Name() string { return s.name }

// Elements returns the elements in declaration order.
func (s *Schema) Elements() []*Element {
	return slices.Clone(s.elems)
}

// Element looks up an element by name.
func (s *Schema) Element(name string) (*Element, bool) {
	e, ok := s.index[name]
	return e, ok
}

// Formats returns the formats the schema was compiled for.
func (s *Schema) Formats() []Format {
	return slices.Clone(s.formats)
}

// Supports reports whether the schema was compiled for f.
func (s *Schema) Supports(f Format) bool {
	return slices.Contains(s.formats, f)
}

// NamingMode returns the naming mode used for f.
func (s *Schema) NamingMode(f Format) NamingMode {
	if !f.Valid() {
		return Default
	}
	return s.naming[f]
}

// RootName is the name of the enclosing XML element.
func (s *Schema) RootName(f Format) string {
	if !f.Valid() {
		return s.name
	}
	return s.roots[f]
}

// DefaultData returns one entry per element holding its default. The result
// is freshly copied on every call and may be modified by the caller.
func (s *Schema) DefaultData() Values {
	out := make(Values, len(s.elems))
	for _, e := range s.elems {
		out[e.name] = e.Default()
	}
	return out
}

// ErrorData is DefaultData with every DefaultFunc evaluated against err.
func (s *Schema) ErrorData(err error) Values {
	out := make(Values, len(s.elems))
	for _, e := range s.elems {
		out[e.name] = e.ErrorDefault(err)
	}
	return out
}

// Description summarises how one element appears in one format.
type Description struct {
	Name     string
	Kind     ElementKind
	Type     Type
	Wire     string
	Item     string
	Wrapped  bool
	XMLAttr  bool
	Count    int
	Children []Description
}

// Describe lists the elements of s as they appear in format f, descending
// into nested schemas.
func (s *Schema) Describe(f Format) []Description {
	return s.describe(f, map[*Schema]bool{})
}

func (s *Schema) describe(f Format, visiting map[*Schema]bool) []Description {
	visiting[s] = true
	defer delete(visiting, s)

	out := make([]Description, 0, len(s.elems))
	for _, e := range s.elems {
		d := Description{
			Name:    e.name,
			Kind:    e.kind,
			Type:    e.typ,
			Wire:    e.WireName(f),
			Wrapped: e.Wrapped(f),
			XMLAttr: f == XML && e.xmlAttr,
			Count:   e.count,
		}
		if d.Wrapped {
			d.Item = e.ItemName(f)
		}
		if e.Nested() && !visiting[e.typ.Record] {
			d.Children = e.typ.Record.describe(f, visiting)
		}
		out = append(out, d)
	}
	return out
}
