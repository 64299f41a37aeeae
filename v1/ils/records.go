package ils

import (
	"time"

	"github.com/libcat/ilsrecord/v1/record"
)

// Patron is a patron account record.
type Patron struct{ *record.Record }

// LoadPatron builds a Patron from an ILS response. Failures yield an
// error-state Patron whose status is StatusUnavailable and whose only
// message is UnavailableMessage.
func LoadPatron(data any, opts ...record.Option) Patron {
	return Patron{record.Load(PatronSchema, data, opts...)}
}

func (p Patron) ID() string          { return p.String("id") }
func (p Patron) Name() string        { return p.String("name") }
func (p Patron) Email() string       { return p.String("email") }
func (p Patron) HomeLibrary() string { return p.String("home_library") }
func (p Patron) Status() string      { return p.String("status") }
func (p Patron) Expires() time.Time  { return p.Time("expires") }
func (p Patron) Fines() float64      { return p.Float("fines") }
func (p Patron) Messages() []string  { return p.Strings("messages") }
func (p Patron) Blocked() bool       { return p.Status() == StatusBlocked }

// Checkouts returns the items the patron has checked out.
func (p Patron) Checkouts() []Checkout {
	recs := p.Records("checkouts")
	out := make([]Checkout, len(recs))
	for i, r := range recs {
		out[i] = Checkout{r}
	}
	return out
}

// Holds returns the patron's holds.
func (p Patron) Holds() []Hold {
	recs := p.Records("holds")
	out := make([]Hold, len(recs))
	for i, r := range recs {
		out[i] = Hold{r}
	}
	return out
}

// Checkout is one checked out item.
type Checkout struct{ *record.Record }

// LoadCheckout builds a Checkout from an ILS response.
func LoadCheckout(data any, opts ...record.Option) Checkout {
	return Checkout{record.Load(CheckoutSchema, data, opts...)}
}

func (c Checkout) ID() int64             { return c.Int("id") }
func (c Checkout) ItemID() string        { return c.String("item_id") }
func (c Checkout) Title() string         { return c.String("title") }
func (c Checkout) Author() string        { return c.String("author") }
func (c Checkout) CheckedOut() time.Time { return c.Time("checked_out") }
func (c Checkout) Due() time.Time        { return c.Time("due") }
func (c Checkout) Renewable() bool       { return c.Bool("renewable") }
func (c Checkout) RenewalCount() int64   { return c.Int("renewal_count") }
func (c Checkout) Overdue() bool         { return c.Bool("overdue") }

// Hold is one hold placed by a patron.
type Hold struct{ *record.Record }

// LoadHold builds a Hold from an ILS response.
func LoadHold(data any, opts ...record.Option) Hold {
	return Hold{record.Load(HoldSchema, data, opts...)}
}

func (h Hold) ID() int64             { return h.Int("id") }
func (h Hold) ItemID() string        { return h.String("item_id") }
func (h Hold) Title() string         { return h.String("title") }
func (h Hold) PickupLibrary() string { return h.String("pickup_library") }
func (h Hold) Placed() time.Time     { return h.Time("placed") }
func (h Hold) Expires() time.Time    { return h.Time("expires") }
func (h Hold) Status() string        { return h.String("status") }
func (h Hold) QueuePosition() int64  { return h.Int("queue_position") }

// Availability lists the copies of one bibliographic record.
type Availability struct{ *record.Record }

// LoadAvailability builds an Availability from an ILS response.
func LoadAvailability(data any, opts ...record.Option) Availability {
	return Availability{record.Load(AvailabilitySchema, data, opts...)}
}

func (a Availability) BibID() string  { return a.String("bib_id") }
func (a Availability) Holdable() bool { return a.Bool("holdable") }

// Items returns the status of every copy.
func (a Availability) Items() []ItemStatus {
	recs := a.Records("items")
	out := make([]ItemStatus, len(recs))
	for i, r := range recs {
		out[i] = ItemStatus{r}
	}
	return out
}

// Available reports whether any copy is available.
func (a Availability) Available() bool {
	for _, item := range a.Items() {
		if item.Available() {
			return true
		}
	}
	return false
}

// ItemStatus is the circulation status of one copy.
type ItemStatus struct{ *record.Record }

func (i ItemStatus) Barcode() string    { return i.String("barcode") }
func (i ItemStatus) Available() bool    { return i.Bool("available") }
func (i ItemStatus) Location() string   { return i.String("location") }
func (i ItemStatus) CallNumber() string { return i.String("call_number") }
func (i ItemStatus) Status() string     { return i.String("status") }
func (i ItemStatus) DueDate() time.Time { return i.Time("due_date") }
