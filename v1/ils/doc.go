// Package ils declares the record types exchanged with the Integrated
// Library System: patrons with their checkouts and holds, item
// availability, and the outbound hold and renewal requests.
//
// Inbound records are loaded at the transport boundary and never fail;
// an unreachable ILS or a malformed response yields an error-state record
// with schema defaults, so pages can show "currently unavailable" instead of
// failing:
//
//	patron := ils.LoadPatron(body, record.WithLogger(log))
//	if patron.IsError() {
//		log.Warn("patron unavailable", patron.Err(), nil)
//	}
//	for _, c := range patron.Checkouts() {
//		fmt.Println(c.Title(), c.Due().Format("2006-01-02"))
//	}
//
// Outbound requests are built from parameters and encoded in the format the
// ILS expects:
//
//	req, err := ils.NewHoldRequest(ils.HoldRequestParams{
//		PatronID:      "p-42",
//		ItemID:        "i-1001",
//		PickupLibrary: "main",
//	})
//	if err != nil {
//		return err // *ilserr.HoldError
//	}
//	body, err := req.Encode(schema.XML)
//
// Schemas registers every schema by name for tooling such as ilsconv.
package ils
