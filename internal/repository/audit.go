package repository

import (
	"context"

	"brokerdesk/internal/model"
)

// AuditRepository mirrors audit log entries into durable storage. No business
// logic here, strictly persistence operations. The store never reads it back.
type AuditRepository interface {
	// Append inserts a log entry. Appending an id that is already stored is
	// not an error.
	Append(ctx context.Context, entry model.LogEntry) error

	// List returns archived entries, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.LogEntry], error)

	// Ping checks connectivity to the backing database.
	Ping(ctx context.Context) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}
