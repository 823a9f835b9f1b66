package model

import (
	"maps"
	"time"
)

// Known transaction statuses. Status is a free-form string; callers may set
// any value and the store never validates transitions.
const (
	StatusPending   = "pending"
	StatusInReview  = "in_review"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusApproved  = "approved"
)

// Attributes holds arbitrary caller-supplied fields carried alongside the
// well-known ones.
type Attributes map[string]any

// Merge overlays patch onto a copy of a, key by key. A nil result is never
// returned when either side has keys.
func (a Attributes) Merge(patch Attributes) Attributes {
	if len(a) == 0 && len(patch) == 0 {
		return nil
	}
	out := make(Attributes, len(a)+len(patch))
	maps.Copy(out, a)
	maps.Copy(out, patch)
	return out
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Transaction is a shipment record tracked by the brokerage desk.
type Transaction struct {
	ID         string     `json:"id"`
	AWB        string     `json:"awb,omitempty"`
	HAWB       string     `json:"hawb,omitempty"`
	Status     string     `json:"status"`
	Attributes Attributes `json:"attributes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Waybill returns the AWB, falling back to the HAWB. Empty when neither is set.
func (t Transaction) Waybill() string {
	if t.AWB != "" {
		return t.AWB
	}
	return t.HAWB
}

// Clone returns a copy that shares no mutable state with t.
func (t Transaction) Clone() Transaction {
	t.Attributes = t.Attributes.Clone()
	return t
}

// TransactionInput carries the caller fields for a new transaction.
// Any status the caller has in mind is ignored; new transactions are pending.
type TransactionInput struct {
	AWB        string     `json:"awb,omitempty"`
	HAWB       string     `json:"hawb,omitempty"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// TransactionPatch is a shallow update. Nil pointers leave the field as is.
type TransactionPatch struct {
	AWB        *string    `json:"awb,omitempty"`
	HAWB       *string    `json:"hawb,omitempty"`
	Status     *string    `json:"status,omitempty"`
	Attributes Attributes `json:"attributes,omitempty"`
}

// Apply returns t overlaid by p. Identifier and timestamps are untouched.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.AWB != nil {
		t.AWB = *p.AWB
	}
	if p.HAWB != nil {
		t.HAWB = *p.HAWB
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.Attributes = t.Attributes.Merge(p.Attributes)
	return t
}
