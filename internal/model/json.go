package model

import (
	"encoding/json"
	"strings"
)

// Server-assigned fields. Callers may send them but they never reach a record.
var reservedKeys = []string{"id", "createdAt", "updatedAt", "uploadedAt"}

// decodeWithExtras decodes data into dst, which must point to a struct type
// without its own UnmarshalJSON, and collects every top-level key that is
// neither in known nor reserved. Keys match case-insensitively, like
// encoding/json does for struct fields.
func decodeWithExtras(data []byte, dst any, known ...string) (Attributes, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var extra Attributes
	for k, v := range raw {
		if matchesAny(k, known) || matchesAny(k, reservedKeys) {
			continue
		}
		var x any
		if err := json.Unmarshal(v, &x); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = Attributes{}
		}
		extra[k] = x
	}
	return extra, nil
}

func matchesAny(key string, names []string) bool {
	for _, n := range names {
		if strings.EqualFold(key, n) {
			return true
		}
	}
	return false
}

// UnmarshalJSON keeps unknown top-level fields as attributes. Status is
// dropped; new transactions are always pending.
func (in *TransactionInput) UnmarshalJSON(data []byte) error {
	type plain TransactionInput
	var p plain
	extra, err := decodeWithExtras(data, &p, "awb", "hawb", "attributes", "status")
	if err != nil {
		return err
	}
	p.Attributes = extra.Merge(p.Attributes)
	*in = TransactionInput(p)
	return nil
}

// UnmarshalJSON keeps unknown top-level fields as attributes to merge.
func (p *TransactionPatch) UnmarshalJSON(data []byte) error {
	type plain TransactionPatch
	var v plain
	extra, err := decodeWithExtras(data, &v, "awb", "hawb", "status", "attributes")
	if err != nil {
		return err
	}
	v.Attributes = extra.Merge(v.Attributes)
	*p = TransactionPatch(v)
	return nil
}

// UnmarshalJSON keeps unknown top-level fields as attributes. Status is
// dropped; new permits are always pending.
func (in *PermitInput) UnmarshalJSON(data []byte) error {
	type plain PermitInput
	var p plain
	extra, err := decodeWithExtras(data, &p, "type", "transactionId", "attributes", "status")
	if err != nil {
		return err
	}
	p.Attributes = extra.Merge(p.Attributes)
	*in = PermitInput(p)
	return nil
}

// UnmarshalJSON keeps unknown top-level fields as attributes to merge.
func (patch *PermitPatch) UnmarshalJSON(data []byte) error {
	type plain PermitPatch
	var v plain
	extra, err := decodeWithExtras(data, &v, "type", "transactionId", "status", "attributes")
	if err != nil {
		return err
	}
	v.Attributes = extra.Merge(v.Attributes)
	*patch = PermitPatch(v)
	return nil
}

// UnmarshalJSON keeps unknown top-level fields as attributes.
func (in *FileInput) UnmarshalJSON(data []byte) error {
	type plain FileInput
	var p plain
	extra, err := decodeWithExtras(data, &p, "name", "contentType", "size", "storageKey", "attributes")
	if err != nil {
		return err
	}
	p.Attributes = extra.Merge(p.Attributes)
	*in = FileInput(p)
	return nil
}
