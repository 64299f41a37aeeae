package schema

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the closed set of element value kinds. Every scalar kind has a
// deterministic zero value; KindRecord refers to a nested schema.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindDate
	KindDateTime
	KindSymbol
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindSymbol:
		return "symbol"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Scalar reports whether k is one of the scalar kinds.
func (k Kind) Scalar() bool {
	return k >= KindString && k <= KindSymbol
}

// Type is the resolved type of an element: a scalar kind, or KindRecord
// together with the nested schema.
type Type struct {
	Kind   Kind
	Record *Schema
}

// Predeclared scalar types.
var (
	String   = Type{Kind: KindString}
	Integer  = Type{Kind: KindInteger}
	Float    = Type{Kind: KindFloat}
	Boolean  = Type{Kind: KindBoolean}
	Date     = Type{Kind: KindDate}
	DateTime = Type{Kind: KindDateTime}
	Symbol   = Type{Kind: KindSymbol}
)

// RecordType returns the type of elements holding nested records of s.
func RecordType(s *Schema) Type {
	return Type{Kind: KindRecord, Record: s}
}

// Scalar reports whether t is a scalar type.
func (t Type) Scalar() bool { return t.Kind.Scalar() }

func (t Type) String() string {
	if t.Kind == KindRecord && t.Record != nil {
		return "record(" + t.Record.Name() + ")"
	}
	return t.Kind.String()
}

func (t Type) validate() error {
	switch {
	case t.Kind.Scalar():
		return nil
	case t.Kind == KindRecord && t.Record != nil:
		return nil
	case t.Kind == KindRecord:
		return fmt.Errorf("%w: record type without schema", ErrUnknownType)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// Zero returns the zero value for t. Record types have a nil zero value.
func (t Type) Zero() any {
	switch t.Kind {
	case KindString, KindSymbol:
		return ""
	case KindInteger:
		return int64(0)
	case KindFloat:
		return float64(0)
	case KindBoolean:
		return false
	case KindDate, KindDateTime:
		return time.Time{}
	default:
		return nil
	}
}

// ParseType resolves a type name. Scalar names are matched case-insensitively
// ("integer", "Int", "datetime", "date_time", ...). Any other name is looked
// up in reg, which may be nil.
func ParseType(name string, reg *Registry) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "string", "str", "text":
		return String, nil
	case "integer", "int":
		return Integer, nil
	case "float", "double", "decimal":
		return Float, nil
	case "boolean", "bool":
		return Boolean, nil
	case "date":
		return Date, nil
	case "datetime", "date_time", "time", "timestamp":
		return DateTime, nil
	case "symbol", "sym":
		return Symbol, nil
	}
	if reg != nil {
		if s, ok := reg.Lookup(name); ok {
			return RecordType(s), nil
		}
	}
	return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
