package model

import "time"

// Permit is a regulatory approval record. TransactionID is a logical link
// only; it is never checked against the transaction collection.
type Permit struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	TransactionID string     `json:"transactionId"`
	Status        string     `json:"status"`
	Attributes    Attributes `json:"attributes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (p Permit) Clone() Permit {
	p.Attributes = p.Attributes.Clone()
	if p.UpdatedAt != nil {
		ts := *p.UpdatedAt
		p.UpdatedAt = &ts
	}
	return p
}

// PermitInput carries the caller fields for a new permit.
type PermitInput struct {
	Type          string     `json:"type,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
	Attributes    Attributes `json:"attributes,omitempty"`
}

// PermitPatch is a shallow update. Nil pointers leave the field as is.
type PermitPatch struct {
	Type          *string    `json:"type,omitempty"`
	TransactionID *string    `json:"transactionId,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Attributes    Attributes `json:"attributes,omitempty"`
}

// Apply returns p overlaid by patch. Identifier and timestamps are untouched.
func (patch PermitPatch) Apply(p Permit) Permit {
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.TransactionID != nil {
		p.TransactionID = *patch.TransactionID
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.Attributes = p.Attributes.Merge(patch.Attributes)
	return p
}
