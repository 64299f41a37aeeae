package ils

import (
	"github.com/libcat/ilsrecord/v1/schema"
)

// Status symbols reported by the ILS and used as error defaults.
const (
	StatusActive      = "active"
	StatusBlocked     = "blocked"
	StatusUnavailable = "unavailable"
)

// UnavailableMessage is the patron message of records that could not be
// loaded from the ILS.
const UnavailableMessage = "Your account information is currently unavailable."

// Schemas of the ILS record types. Wire names are camelCase in JSON and
// XML; Hash keys are the element names.
var (
	ItemStatusSchema = schema.New("item_status").
		Root("item").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("barcode", schema.String).
		Attribute("available", schema.Boolean).
		HasOne("location", schema.String).
		HasOne("call_number", schema.String).
		HasOne("status", schema.Symbol).
		HasOne("due_date", schema.Date).
		MustBuild()

	AvailabilitySchema = schema.New("availability").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("bib_id", schema.String).
		Attribute("holdable", schema.Boolean).
		HasMany("items", schema.RecordType(ItemStatusSchema)).
		MustBuild()

	CheckoutSchema = schema.New("checkout").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("id", schema.Integer).
		Attribute("item_id", schema.String).
		HasOne("title", schema.String).
		HasOne("author", schema.String).
		HasOne("checked_out", schema.DateTime).
		HasOne("due", schema.Date).
		Attribute("renewable", schema.Boolean).
		Attribute("renewal_count", schema.Integer).
		Attribute("overdue", schema.Boolean).
		MustBuild()

	HoldSchema = schema.New("hold").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("id", schema.Integer).
		Attribute("item_id", schema.String).
		HasOne("title", schema.String).
		HasOne("pickup_library", schema.String).
		HasOne("placed", schema.DateTime).
		HasOne("expires", schema.Date).
		Attribute("status", schema.Symbol).
		Attribute("queue_position", schema.Integer).
		MustBuild()

	PatronSchema = schema.New("patron").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("id", schema.String).
		Attribute("status", schema.Symbol, schema.DefaultFunc(func(error) any {
			return StatusUnavailable
		})).
		HasOne("name", schema.String).
		HasOne("email", schema.String).
		HasOne("home_library", schema.String).
		HasOne("expires", schema.Date).
		HasOne("fines", schema.Float).
		HasMany("checkouts", schema.RecordType(CheckoutSchema)).
		HasMany("holds", schema.RecordType(HoldSchema)).
		HasMany("messages", schema.String, schema.DefaultFunc(func(error) any {
			return []any{UnavailableMessage}
		})).
		MustBuild()

	HoldRequestSchema = schema.New("hold_request").
		Root("holdRequest").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("patron_id", schema.String).
		Attribute("item_id", schema.String).
		HasOne("pickup_library", schema.String).
		HasOne("not_needed_after", schema.Date).
		MustBuild()

	RenewRequestSchema = schema.New("renew_request").
		Root("renewRequest").
		Naming(schema.CamelCase).
		NamingFor(schema.Hash, schema.Default).
		Attribute("patron_id", schema.String).
		HasMany("item_ids", schema.String, schema.ItemName("itemId")).
		MustBuild()
)

// Schemas registers every ILS schema by name.
var Schemas = schema.NewRegistry().MustRegister(
	PatronSchema,
	CheckoutSchema,
	HoldSchema,
	AvailabilitySchema,
	ItemStatusSchema,
	HoldRequestSchema,
	RenewRequestSchema,
)
