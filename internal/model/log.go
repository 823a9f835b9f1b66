package model

import (
	"encoding/json"
	"maps"
	"time"
)

// Log entry types emitted by the store's mutating operations.
const (
	LogTransactionCreated = "transaction_created"
	LogTransactionUpdated = "transaction_updated"
	LogTransactionDeleted = "transaction_deleted"
	LogFileUploaded       = "file_uploaded"
	LogFileDeleted        = "file_deleted"
	LogPermitCreated      = "permit_created"
	LogPermitUpdated      = "permit_updated"
)

// LogEntry is one record of the append-only audit trail.
type LogEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a copy whose Data shares nothing with e.
func (e LogEntry) Clone() LogEntry {
	e.Data = cloneData(e.Data)
	return e
}

// cloneData deep-copies JSON-shaped values and keeps their Go types. Anything
// else is copied through a JSON round trip, so it comes back as the decoded
// JSON shape.
func cloneData(v any) any {
	switch d := v.(type) {
	case nil, string, bool, json.Number, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return d
	case map[string]any:
		out := make(map[string]any, len(d))
		for k, x := range d {
			out[k] = cloneData(x)
		}
		return out
	case Attributes:
		out := make(Attributes, len(d))
		for k, x := range d {
			out[k] = cloneData(x)
		}
		return out
	case []any:
		out := make([]any, len(d))
		for i, x := range d {
			out[i] = cloneData(x)
		}
		return out
	case map[string]string:
		return maps.Clone(d)
	case []string:
		return append([]string(nil), d...)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
