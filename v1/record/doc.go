// Package record provides ILS records: payloads interpreted through a schema.
//
// A Record owns one serializer per format of its schema and holds one value
// per schema element. It is either valid, built from real or synthesized
// data, or in error state, built from an error with schema defaults. The
// state is decided at construction and never changes.
//
// # Construction
//
// Three constructors cover the two states:
//
//	// New decodes data and returns serializer errors unchanged.
//	rec, err := record.New(ils.PatronSchema, body)
//
//	// FromError builds an error-state record. It never fails.
//	rec := record.FromError(ils.PatronSchema, err)
//
//	// Load is New at the transport boundary: any failure, including nil
//	// data, becomes an error-state record carrying an ilserr.ReceiveError.
//	rec := record.Load(ils.PatronSchema, body)
//	if rec.IsError() {
//		// render "currently unavailable"
//	}
//
// Without WithFormat the format is sniffed from data: a mapping is Hash,
// text starting with '<' is XML and text starting with '{' or '[' is JSON.
//
// # Reading values
//
// Typed accessors read element values by element name:
//
//	name := rec.String("name")
//	fines := rec.Float("fines")
//	for _, hold := range rec.Records("holds") {
//		fmt.Println(hold.Int("id"), hold.Time("expires"))
//	}
//
// Elements of error records hold their declared defaults. A DefaultFunc
// declared on an element receives the error, so defaults can depend on the
// failure.
//
// # Writing
//
// Serialize, JSON, XML and Hash render the record in any format of its
// schema, which is how outbound ILS requests are built.
//
// # FX Integration
//
// FXModule provides a Factory that applies a shared logger, the observers of
// the "observers" value group and an optional serializer.SourceStore to every
// record it builds.
//
// # Thread Safety
//
// A Record and its serializers are not safe for concurrent mutation.
// Concurrent reads of a record that is no longer deserialized into are safe.
package record
