package ils

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/record"
	"github.com/libcat/ilsrecord/v1/schema"
)

const patronXML = `<?xml version="1.0" encoding="UTF-8"?>
<patron id="P1" status="active">
  <name>Ada Lovelace</name>
  <email>ada@example.org</email>
  <homeLibrary>Main</homeLibrary>
  <expires>2027-01-31</expires>
  <fines>1.25</fines>
  <checkouts>
    <checkout id="11" itemId="B1" renewable="true" renewalCount="1" overdue="false">
      <title>Sketch of the Analytical Engine</title>
      <author>Menabrea</author>
      <checkedOut>2026-10-01T10:00:00Z</checkedOut>
      <due>2026-10-29</due>
    </checkout>
  </checkouts>
  <holds>
    <hold id="21" itemId="B2" status="waiting" queuePosition="2">
      <title>Passages from the Life of a Philosopher</title>
      <pickupLibrary>Main</pickupLibrary>
      <placed>2026-10-10T09:30:00Z</placed>
      <expires>2026-11-10</expires>
    </hold>
  </holds>
  <messages>
    <message>Welcome back</message>
  </messages>
</patron>`

const patronJSON = `{
  "id": "P1",
  "status": "active",
  "name": "Ada Lovelace",
  "email": "ada@example.org",
  "homeLibrary": "Main",
  "expires": "2027-01-31",
  "fines": 1.25,
  "checkouts": [{
    "id": 11, "itemId": "B1", "renewable": true, "renewalCount": 1, "overdue": false,
    "title": "Sketch of the Analytical Engine", "author": "Menabrea",
    "checkedOut": "2026-10-01T10:00:00Z", "due": "2026-10-29"
  }],
  "holds": [{
    "id": 21, "itemId": "B2", "status": "waiting", "queuePosition": 2,
    "title": "Passages from the Life of a Philosopher", "pickupLibrary": "Main",
    "placed": "2026-10-10T09:30:00Z", "expires": "2026-11-10"
  }],
  "messages": ["Welcome back"]
}`

func TestLoadPatron(t *testing.T) {
	for name, data := range map[string]string{"xml": patronXML, "json": patronJSON} {
		t.Run(name, func(t *testing.T) {
			p := LoadPatron(data)
			require.True(t, p.IsValid(), "unexpected error: %v", p.Err())

			assert.Equal(t, "P1", p.ID())
			assert.Equal(t, "Ada Lovelace", p.Name())
			assert.Equal(t, "ada@example.org", p.Email())
			assert.Equal(t, "Main", p.HomeLibrary())
			assert.Equal(t, StatusActive, p.Status())
			assert.False(t, p.Blocked())
			assert.True(t, p.Expires().Equal(time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)))
			assert.Equal(t, 1.25, p.Fines())
			assert.Equal(t, []string{"Welcome back"}, p.Messages())

			checkouts := p.Checkouts()
			require.Len(t, checkouts, 1)
			c := checkouts[0]
			assert.Equal(t, int64(11), c.ID())
			assert.Equal(t, "B1", c.ItemID())
			assert.Equal(t, "Sketch of the Analytical Engine", c.Title())
			assert.Equal(t, "Menabrea", c.Author())
			assert.True(t, c.CheckedOut().Equal(time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)))
			assert.True(t, c.Due().Equal(time.Date(2026, 10, 29, 0, 0, 0, 0, time.UTC)))
			assert.True(t, c.Renewable())
			assert.Equal(t, int64(1), c.RenewalCount())
			assert.False(t, c.Overdue())

			holds := p.Holds()
			require.Len(t, holds, 1)
			h := holds[0]
			assert.Equal(t, int64(21), h.ID())
			assert.Equal(t, "B2", h.ItemID())
			assert.Equal(t, "Main", h.PickupLibrary())
			assert.Equal(t, "waiting", h.Status())
			assert.Equal(t, int64(2), h.QueuePosition())
			assert.True(t, h.Placed().Equal(time.Date(2026, 10, 10, 9, 30, 0, 0, time.UTC)))
			assert.True(t, h.Expires().Equal(time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)))
		})
	}
}

func TestLoadPatron_FormatsAgree(t *testing.T) {
	fromXML := LoadPatron(patronXML)
	fromJSON := LoadPatron(patronJSON)
	require.True(t, fromXML.IsValid())
	require.True(t, fromJSON.IsValid())

	if diff := cmp.Diff(fromXML.Values(), fromJSON.Values()); diff != "" {
		t.Errorf("xml and json disagree (-xml +json):\n%s", diff)
	}
}

func TestLoadPatron_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"no response", nil},
		{"html error page", "<html><body>502 Bad Gateway"},
		{"plain text", "Service Unavailable"},
		{"truncated json", `{"id": "P1", "name": "Ada`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LoadPatron(tt.data)

			require.True(t, p.IsError())
			assert.True(t, ilserr.IsReceiveError(p.Err()))
			assert.Equal(t, StatusUnavailable, p.Status())
			assert.Equal(t, []string{UnavailableMessage}, p.Messages())
			assert.False(t, p.Blocked())
			assert.Empty(t, p.ID())
			assert.Empty(t, p.Name())
			assert.Zero(t, p.Fines())
			assert.True(t, p.Expires().IsZero())
			assert.Empty(t, p.Checkouts())
			assert.Empty(t, p.Holds())
		})
	}
}

func TestPatron_Blocked(t *testing.T) {
	p := LoadPatron(map[string]any{"id": "P2", "status": "blocked"})
	require.True(t, p.IsValid())
	assert.True(t, p.Blocked())
	assert.Empty(t, p.Messages())
}

func TestLoadAvailability(t *testing.T) {
	a := LoadAvailability(`{
		"bibId": "b1",
		"holdable": true,
		"items": [
			{"barcode": "X1", "available": false, "status": "checked_out", "dueDate": "2026-11-01"},
			{"barcode": "X2", "available": "true", "location": "Main", "callNumber": "QA76.17"}
		]
	}`)
	require.True(t, a.IsValid())

	assert.Equal(t, "b1", a.BibID())
	assert.True(t, a.Holdable())
	assert.True(t, a.Available())

	items := a.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "X1", items[0].Barcode())
	assert.False(t, items[0].Available())
	assert.Equal(t, "checked_out", items[0].Status())
	assert.True(t, items[0].DueDate().Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "X2", items[1].Barcode())
	assert.True(t, items[1].Available())
	assert.Equal(t, "Main", items[1].Location())
	assert.Equal(t, "QA76.17", items[1].CallNumber())
	assert.True(t, items[1].DueDate().IsZero())
}

func TestLoadAvailability_XML(t *testing.T) {
	a := LoadAvailability(`<availability bibId="b1" holdable="false">` +
		`<items><item barcode="X1" available="false"><status>checked_out</status></item></items>` +
		`</availability>`)
	require.True(t, a.IsValid())

	assert.False(t, a.Holdable())
	assert.False(t, a.Available())
	require.Len(t, a.Items(), 1)
	assert.Equal(t, schema.XML, a.Items()[0].Format())

	out, err := a.XML()
	require.NoError(t, err)
	assert.Equal(t, `<availability bibId="b1" holdable="false">`+
		`<items><item barcode="X1" available="false">`+
		`<location></location><callNumber></callNumber><status>checked_out</status><dueDate></dueDate>`+
		`</item></items></availability>`, string(out))
}

func TestLoadAvailability_Unavailable(t *testing.T) {
	a := LoadAvailability("")
	assert.True(t, a.IsError())
	assert.False(t, a.Available())
	assert.Empty(t, a.Items())
}

func TestLoadCheckoutAndHold(t *testing.T) {
	c := LoadCheckout(`<checkout id="11" itemId="B1" overdue="yes"><title>Notes</title></checkout>`)
	require.True(t, c.IsValid())
	assert.Equal(t, int64(11), c.ID())
	assert.True(t, c.Overdue())
	assert.False(t, c.Renewable())
	assert.Equal(t, "Notes", c.Title())

	h := LoadHold(map[string]any{"id": "21", "status": "ready", "queue_position": "0"})
	require.True(t, h.IsValid())
	assert.Equal(t, int64(21), h.ID())
	assert.Equal(t, "ready", h.Status())
	assert.Zero(t, h.QueuePosition())

	h = LoadHold(nil, record.WithFormat(schema.XML))
	assert.True(t, h.IsError())
	assert.Equal(t, schema.XML, h.Format())
}

func TestSchemas(t *testing.T) {
	assert.Equal(t, []string{
		"availability",
		"checkout",
		"hold",
		"hold_request",
		"item_status",
		"patron",
		"renew_request",
	}, Schemas.Names())

	s, ok := Schemas.Lookup("patron")
	require.True(t, ok)
	assert.Same(t, PatronSchema, s)
	assert.Equal(t, "holdRequest", HoldRequestSchema.RootName(schema.XML))
}
