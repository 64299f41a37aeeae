package schema

import (
	"errors"
	"fmt"
)

// Builder collects element declarations for one record schema. A Builder is
// used once, at package initialisation, and then discarded in favour of the
// immutable *Schema returned by Build.
//
// Example:
//
//	var Patron = schema.New("patron").
//		Naming(schema.CamelCase).
//		Attribute("id", schema.Integer).
//		HasOne("name", schema.String).
//		HasMany("tags", schema.String).
//		MustBuild()
type Builder struct {
	name      string
	root      string
	naming    NamingMode
	namingFor map[Format]NamingMode
	formats   []Format
	elems     []*Element
	errs      []error
}

// New starts a schema declaration. name identifies the schema and, after
// naming-mode translation, names the XML root element.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Root overrides the XML root element name.
func (b *Builder) Root(name string) *Builder {
	b.root = name
	return b
}

// Naming sets the naming mode of every format.
func (b *Builder) Naming(mode NamingMode) *Builder {
	b.naming = mode
	return b
}

// NamingFor sets the naming mode of format f, overriding Naming.
func (b *Builder) NamingFor(f Format, mode NamingMode) *Builder {
	if b.namingFor == nil {
		b.namingFor = make(map[Format]NamingMode)
	}
	b.namingFor[f] = mode
	return b
}

// Formats restricts the formats the schema compiles to. All formats are
// compiled when Formats is never called.
func (b *Builder) Formats(formats ...Format) *Builder {
	b.formats = append(b.formats, formats...)
	return b
}

// Attribute declares a scalar element. The zero Type is read as String.
// Attributes render as XML attributes.
func (b *Builder) Attribute(name string, t Type, opts ...Option) *Builder {
	t = orString(t)
	if t.Kind == KindRecord {
		b.errs = append(b.errs, fmt.Errorf("%w: attribute %q cannot hold a record", ErrInvalidSchema, name))
		return b
	}
	return b.add(name, AttributeElement, t, true, false, opts)
}

// HasOne declares a single sub-element. With a scalar type it behaves like
// Attribute but renders as an XML child element; with a record type it
// decodes to one nested record.
func (b *Builder) HasOne(name string, t Type, opts ...Option) *Builder {
	return b.add(name, HasOneElement, orString(t), false, false, opts)
}

// HasMany declares an ordered collection of t, String when t is the zero
// Type. Collections always decode to a sequence.
func (b *Builder) HasMany(name string, t Type, opts ...Option) *Builder {
	return b.add(name, HasManyElement, orString(t), false, true, opts)
}

func (b *Builder) add(name string, kind ElementKind, t Type, xmlAttr, collection bool, opts []Option) *Builder {
	e := &Element{
		name:       name,
		kind:       kind,
		typ:        t,
		xmlAttr:    xmlAttr,
		collection: collection,
		count:      1,
	}
	for _, opt := range opts {
		opt(&e.opts)
	}
	if collection {
		e.count = Unbounded
		if e.opts.count != 0 {
			e.count = e.opts.count
		}
	}
	b.elems = append(b.elems, e)
	return b
}

// Build validates the declarations and compiles them into a Schema.
// Configuration mistakes are reported together.
func (b *Builder) Build() (*Schema, error) {
	errs := append([]error(nil), b.errs...)
	if b.name == "" {
		errs = append(errs, fmt.Errorf("%w: schema name is empty", ErrInvalidSchema))
	}

	formats, err := b.resolveFormats()
	if err != nil {
		errs = append(errs, err)
	}

	var naming [formatSlots]NamingMode
	for _, f := range Formats() {
		naming[f] = b.naming
		if m, ok := b.namingFor[f]; ok {
			naming[f] = m
		}
	}

	s := &Schema{
		name:    b.name,
		formats: formats,
		naming:  naming,
		index:   make(map[string]*Element, len(b.elems)),
	}
	root := b.root
	for _, f := range Formats() {
		if b.root == "" {
			root = Translate(b.name, naming[f])
		}
		s.roots[f] = root
	}

	for _, e := range b.elems {
		if err := b.check(s, e); err != nil {
			errs = append(errs, err)
			continue
		}
		e.compile(naming)
		if e.opts.hasDef {
			v, err := e.normalize(e.opts.def)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: default of %q: %v", ErrInvalidSchema, e.name, err))
				continue
			}
			e.value = v
		}
		s.elems = append(s.elems, e)
		s.index[e.name] = e
	}
	if err := checkWireNames(s); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("schema %q: %w", b.name, errors.Join(errs...))
	}
	return s, nil
}

// MustBuild is like Build but panics on error. Schemas are declared at
// package level, where a broken declaration is a programming error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Builder) resolveFormats() ([]Format, error) {
	if len(b.formats) == 0 {
		return Formats(), nil
	}
	seen := make(map[Format]bool, len(b.formats))
	var out []Format
	for _, f := range b.formats {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, int(f))
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

func (b *Builder) check(s *Schema, e *Element) error {
	switch {
	case e.name == "":
		return fmt.Errorf("%w: element with empty name", ErrInvalidSchema)
	case s.index[e.name] != nil:
		return fmt.Errorf("%w: duplicate element %q", ErrInvalidSchema, e.name)
	case e.count < 0:
		return fmt.Errorf("%w: element %q has negative count", ErrInvalidSchema, e.name)
	}
	if err := e.typ.validate(); err != nil {
		return fmt.Errorf("element %q: %w", e.name, err)
	}
	return nil
}

func checkWireNames(s *Schema) error {
	for _, f := range s.formats {
		seen := make(map[string]string, len(s.elems))
		for _, e := range s.elems {
			wire := e.WireName(f)
			if other, ok := seen[wire]; ok {
				return fmt.Errorf("%w: %q and %q share wire name %q in %s", ErrInvalidSchema, other, e.name, wire, f)
			}
			seen[wire] = e.name
		}
	}
	return nil
}

func orString(t Type) Type {
	if t.Kind == KindInvalid && t.Record == nil {
		return String
	}
	return t
}
