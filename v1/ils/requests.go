package ils

import (
	"strings"
	"time"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/record"
	"github.com/libcat/ilsrecord/v1/schema"
)

// HoldRequestParams describes a hold to place.
type HoldRequestParams struct {
	PatronID       string
	ItemID         string
	PickupLibrary  string
	NotNeededAfter time.Time
}

// HoldRequest is an outbound hold request.
type HoldRequest struct{ *record.Record }

// NewHoldRequest builds a hold request. Missing identifiers and values the
// schema rejects are reported as *ilserr.HoldError.
func NewHoldRequest(p HoldRequestParams, opts ...record.Option) (HoldRequest, error) {
	if strings.TrimSpace(p.PatronID) == "" {
		return HoldRequest{}, ilserr.NewHoldError("patron id is required", nil)
	}
	if strings.TrimSpace(p.ItemID) == "" {
		return HoldRequest{}, ilserr.NewHoldError("item id is required", nil)
	}
	values := schema.Values{
		"patron_id":      p.PatronID,
		"item_id":        p.ItemID,
		"pickup_library": p.PickupLibrary,
	}
	if !p.NotNeededAfter.IsZero() {
		values["not_needed_after"] = p.NotNeededAfter
	}
	r, err := record.New(HoldRequestSchema, values, append(opts[:len(opts):len(opts)], record.WithFormat(schema.Hash))...)
	if err != nil {
		return HoldRequest{}, ilserr.NewHoldError("build hold request", err)
	}
	return HoldRequest{r}, nil
}

// Encode renders the request in format f. Failures are reported as
// *ilserr.HoldError.
func (h HoldRequest) Encode(f schema.Format) (any, error) {
	out, err := h.Serialize(f)
	if err != nil {
		return nil, ilserr.NewHoldError("encode hold request", err)
	}
	return out, nil
}

// RenewRequestParams describes checkouts to renew.
type RenewRequestParams struct {
	PatronID string
	ItemIDs  []string
}

// RenewRequest is an outbound renewal request.
type RenewRequest struct{ *record.Record }

// NewRenewRequest builds a renewal request for at least one item. Failures
// are reported as *ilserr.RenewError.
func NewRenewRequest(p RenewRequestParams, opts ...record.Option) (RenewRequest, error) {
	if strings.TrimSpace(p.PatronID) == "" {
		return RenewRequest{}, ilserr.NewRenewError("patron id is required", nil)
	}
	if len(p.ItemIDs) == 0 {
		return RenewRequest{}, ilserr.NewRenewError("no items to renew", nil)
	}
	items := make([]any, 0, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if strings.TrimSpace(id) == "" {
			return RenewRequest{}, ilserr.NewRenewError("item id is required", nil)
		}
		items = append(items, id)
	}
	r, err := record.New(RenewRequestSchema, schema.Values{
		"patron_id": p.PatronID,
		"item_ids":  items,
	}, append(opts[:len(opts):len(opts)], record.WithFormat(schema.Hash))...)
	if err != nil {
		return RenewRequest{}, ilserr.NewRenewError("build renew request", err)
	}
	return RenewRequest{r}, nil
}

// Encode renders the request in format f. Failures are reported as
// *ilserr.RenewError.
func (r RenewRequest) Encode(f schema.Format) (any, error) {
	out, err := r.Serialize(f)
	if err != nil {
		return nil, ilserr.NewRenewError("encode renew request", err)
	}
	return out, nil
}
