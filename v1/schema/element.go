package schema

import (
	"math"

	"github.com/jinzhu/inflection"
	"github.com/mohae/deepcopy"
)

// Unbounded is the nominal multiplicity of has_many elements. It is recorded
// on the element but never enforced.
const Unbounded = math.MaxInt32

// ElementKind is the declaration form of an element.
type ElementKind int

const (
	AttributeElement ElementKind = iota + 1
	HasOneElement
	HasManyElement
)

func (k ElementKind) String() string {
	switch k {
	case AttributeElement:
		return "attribute"
	case HasOneElement:
		return "has_one"
	case HasManyElement:
		return "has_many"
	default:
		return "invalid"
	}
}

// formatSlots sizes per-format arrays indexed by Format.
const formatSlots = int(Hash) + 1

// Element is one compiled schema element. Elements are immutable once their
// schema is built and safe for concurrent reads.
type Element struct {
	name       string
	kind       ElementKind
	typ        Type
	xmlAttr    bool
	collection bool
	count      int

	wire  [formatSlots]string
	item  [formatSlots]string
	wrap  [formatSlots]bool
	opts  elementOptions
	value any
}

func (e *Element) Name() string      { return e.name }
func (e *Element) Kind() ElementKind { return e.kind }
func (e *Element) Type() Type        { return e.typ }

// Count is the declared multiplicity: 1 for single elements, Unbounded
// unless overridden for has_many.
func (e *Element) Count() int { return e.count }

// Collection reports whether the element decodes to a sequence.
func (e *Element) Collection() bool { return e.collection }

// Nested reports whether the element holds records of a nested schema.
func (e *Element) Nested() bool { return e.typ.Kind == KindRecord }

// XMLAttribute reports whether the element renders as an attribute of the
// enclosing XML element rather than as a child element.
func (e *Element) XMLAttribute() bool { return e.xmlAttr }

// WireName is the element name as it appears in format f.
func (e *Element) WireName(f Format) string {
	if !f.Valid() {
		return e.name
	}
	return e.wire[f]
}

// Wrapped reports whether collections are framed by a wrapper in format f.
func (e *Element) Wrapped(f Format) bool {
	if !f.Valid() {
		return false
	}
	return e.wrap[f]
}

// ItemName is the name of each collection item inside a wrapper in format f.
func (e *Element) ItemName(f Format) string {
	if !f.Valid() {
		return e.name
	}
	return e.item[f]
}

// Default returns a fresh copy of the element default used for absent wire
// values in valid records.
func (e *Element) Default() any {
	if e.value != nil {
		return deepcopy.Copy(e.value)
	}
	return e.zero()
}

// HasDefaultFunc reports whether the element default depends on the error of
// an error-state record.
func (e *Element) HasDefaultFunc() bool { return e.opts.defFunc != nil }

// ErrorDefault returns the element value used by error-state records. When
// a DefaultFunc was declared it is invoked with err; results that cannot be
// coerced to the element type fall back to Default.
func (e *Element) ErrorDefault(err error) any {
	if e.opts.defFunc == nil {
		return e.Default()
	}
	v, cerr := e.normalize(e.opts.defFunc(err))
	if cerr != nil {
		return e.Default()
	}
	return v
}

func (e *Element) zero() any {
	switch {
	case e.collection && e.Nested():
		return []Values{}
	case e.collection:
		return []any{}
	default:
		return e.typ.Zero()
	}
}

// normalize coerces a declared default into the element representation.
func (e *Element) normalize(v any) (any, error) {
	if v == nil {
		return e.zero(), nil
	}
	if !e.collection {
		if e.Nested() {
			return toValues(v)
		}
		return e.typ.Coerce(v)
	}
	items, _ := AsSlice(v)
	if e.Nested() {
		out := make([]Values, 0, len(items))
		for _, item := range items {
			vals, err := toValues(item)
			if err != nil {
				return nil, err
			}
			out = append(out, vals)
		}
		return out, nil
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		c, err := e.typ.Coerce(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// compile fills the per-format wire names, wrapping and item names.
func (e *Element) compile(naming [formatSlots]NamingMode) {
	for _, f := range Formats() {
		wire := e.opts.as
		if w, ok := e.opts.asFor[f]; ok {
			wire = w
		}
		if wire == "" {
			wire = Translate(e.name, naming[f])
		}
		e.wire[f] = wire

		wrap := f == XML
		if w, ok := e.opts.wrap[f]; ok {
			wrap = w
		}
		e.wrap[f] = wrap && e.collection && f != Hash

		item := e.opts.item
		if item == "" {
			item = inflection.Singular(wire)
		}
		e.item[f] = item
	}
}

// Option configures a single element declaration.
type Option func(*elementOptions)

type elementOptions struct {
	as      string
	asFor   map[Format]string
	wrap    map[Format]bool
	item    string
	count   int
	def     any
	hasDef  bool
	defFunc func(error) any
}

// As overrides the wire name in every format.
func As(wire string) Option {
	return func(o *elementOptions) { o.as = wire }
}

// AsFor overrides the wire name in format f only.
func AsFor(f Format, wire string) Option {
	return func(o *elementOptions) {
		if o.asFor == nil {
			o.asFor = make(map[Format]string)
		}
		o.asFor[f] = wire
	}
}

// Wrap sets whether a collection is framed by a wrapper in format f.
// XML collections are wrapped by default, JSON collections are not. Hash
// has no wrapping concept and ignores the option.
func Wrap(f Format, wrap bool) Option {
	return func(o *elementOptions) {
		if o.wrap == nil {
			o.wrap = make(map[Format]bool)
		}
		o.wrap[f] = wrap
	}
}

// ItemName names the items of a wrapped collection. It defaults to the
// singular form of the wire name.
func ItemName(name string) Option {
	return func(o *elementOptions) { o.item = name }
}

// Count records the nominal multiplicity of a has_many element.
func Count(n int) Option {
	return func(o *elementOptions) { o.count = n }
}

// DefaultValue declares the value used when the element is absent.
func DefaultValue(v any) Option {
	return func(o *elementOptions) {
		o.def = v
		o.hasDef = true
	}
}

// DefaultFunc declares a default computed from the error an error-state
// record was built from.
func DefaultFunc(fn func(err error) any) Option {
	return func(o *elementOptions) { o.defFunc = fn }
}
