package schema

import (
	"fmt"
	"strings"
)

// Format identifies one of the wire representations a schema compiles to.
type Format int

const (
	// FormatNone is the zero Format. It is returned when no format could be
	// determined and is never a supported format.
	FormatNone Format = iota
	// JSON renders elements as members of a JSON object.
	JSON
	// XML renders elements as attributes and child elements of an XML element.
	XML
	// Hash renders elements as keys of an in-memory map[string]any.
	Hash
)

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{JSON, XML, Hash}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case XML:
		return "xml"
	case Hash:
		return "hash"
	default:
		return "none"
	}
}

// Valid reports whether f is one of JSON, XML or Hash.
func (f Format) Valid() bool {
	return f == JSON || f == XML || f == Hash
}

// ParseFormat resolves a format name such as "json", "xml" or "hash".
// "map" is accepted as an alias for "hash".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "xml":
		return XML, nil
	case "hash", "map":
		return Hash, nil
	default:
		return FormatNone, fmt.Errorf("%w: unknown format %q", ErrInvalidSchema, name)
	}
}

// NamingMode is the casing convention applied when deriving a wire name from
// an element name.
type NamingMode int

const (
	// Default leaves element names unchanged.
	Default NamingMode = iota
	// Underscore produces snake_case names.
	Underscore
	// CamelCase produces lowerCamelCase names.
	CamelCase
	// PascalCase produces UpperCamelCase names.
	PascalCase
)

func (m NamingMode) String() string {
	switch m {
	case Underscore:
		return "underscore"
	case CamelCase:
		return "camelCase"
	case PascalCase:
		return "PascalCase"
	default:
		return "default"
	}
}

// ParseNamingMode resolves a naming mode name. Matching is case-insensitive
// and accepts a few common spellings ("snake", "lower_camel", "upper_camel").
func ParseNamingMode(name string) (NamingMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "none":
		return Default, nil
	case "underscore", "snake", "snake_case":
		return Underscore, nil
	case "camelcase", "camel", "lower_camel":
		return CamelCase, nil
	case "pascalcase", "pascal", "upper_camel":
		return PascalCase, nil
	default:
		return Default, fmt.Errorf("%w: unknown naming mode %q", ErrInvalidSchema, name)
	}
}
