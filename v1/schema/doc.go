// Package schema provides the declarative schema layer for ILS records.
//
// A schema describes the data elements of one record exchanged with an
// Integrated Library System: their names, value types and how they are framed
// on the wire. One declaration compiles into the metadata every format codec
// in the serializer package needs, so JSON, XML and Hash renditions of the
// same record never drift apart.
//
// # Declarations
//
// Schemas are declared once, at package initialisation, with a Builder:
//
//	var Hold = schema.New("hold").
//		Naming(schema.CamelCase).
//		Attribute("id", schema.Integer).
//		Attribute("status", schema.Symbol).
//		HasOne("title", schema.String).
//		HasOne("pickup", schema.RecordType(Library)).
//		HasMany("notes", schema.String, schema.Wrap(schema.XML, false)).
//		MustBuild()
//
// Three declaration forms exist:
//   - Attribute: a scalar element. Renders as an XML attribute.
//   - HasOne: a scalar rendered as a sub-element, or one nested record.
//   - HasMany: an ordered collection of scalars or nested records.
//
// # Types
//
// Types form a closed set resolved at build time: the scalar kinds String,
// Integer, Float, Boolean, Date, DateTime and Symbol, and RecordType for a
// nested schema. Each scalar kind has a deterministic zero value which is
// substituted for missing elements. Anything else is rejected by Build.
//
// # Naming modes
//
// Wire names are derived from element names through a NamingMode (Default,
// Underscore, CamelCase or PascalCase), chosen per schema or per format and
// memoized on each element. Translate is idempotent.
//
// # Thread Safety
//
// Builders are single-use and not safe for concurrent use. A built Schema is
// immutable and may be shared freely. Registry is safe for concurrent use.
package schema
