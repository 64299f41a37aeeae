// Package serializer provides the format codecs of ILS records.
//
// A serializer is bound to one schema and one wire format. It turns element
// values into wire output (Serialize) and wire input into element values
// (Deserialize). Three variants exist, all sharing input dispatch, timing,
// logging and source data retention:
//
//   - JSONSerializer: every element is a named object member. Collections are
//     bare arrays unless wrapped.
//   - XMLSerializer: attribute elements are XML attributes, has_one and
//     has_many elements are child elements. Collections are wrapped unless
//     declared otherwise.
//   - HashSerializer: every element is a key of a map[string]any.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Serializer interface: the contract shared by all variants
//   - NewJSON, NewXML, NewHash: return the concrete variant
//   - New and NewAll: return the interface for a format chosen at runtime
//
// # Usage
//
//	ser, err := serializer.NewJSON(patronSchema,
//		serializer.WithLogger(log),
//		serializer.WithObserver(metricsClient),
//	)
//	if err != nil {
//		return err
//	}
//
//	values, err := ser.Deserialize(body)
//	if err != nil {
//		// malformed payload, err is an ilserr.ReceiveError
//		return err
//	}
//
// # Coercion
//
// Scalar values are coerced to the element type. Blank or uncoercible values
// fall back to the element default; fallbacks are logged at warn level and
// never fail the call. Structural problems, such as invalid XML or an object
// where a list of records is expected, are returned as ilserr.ReceiveError.
// Rendering problems are returned as ilserr.TransmitError. Every error is
// logged and returned unchanged.
//
// Deserialize returns (nil, nil) for input that is neither text nor a
// mapping. Nothing to parse is not a parse error.
//
// # Observability
//
// Every Serialize and Deserialize call is timed. The duration is logged at
// debug level and reported to the configured observability.Observer. Timing
// never affects returned values.
//
// # Thread Safety
//
// A serializer belongs to exactly one record and is not safe for concurrent
// use: Deserialize records the source payload. MemoryStore is safe for
// concurrent use.
package serializer
