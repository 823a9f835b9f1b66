package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"brokerdesk/internal/model"
	"brokerdesk/internal/repository"
)

// AuditPostgres is a PostgreSQL implementation of repository.AuditRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

// Append inserts one entry. Re-appending an existing id is ignored.
func (r *AuditPostgres) Append(ctx context.Context, entry model.LogEntry) error {
	const q = `
		INSERT INTO audit_logs (id, type, message, data, logged_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	data, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("marshal log data: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q,
		entry.ID,
		entry.Type,
		entry.Message,
		data,
		entry.Timestamp,
	)
	return err
}

// List returns entries using LIMIT/OFFSET pagination and a total count.
func (r *AuditPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.LogEntry], error) {
	const qCount = `SELECT COUNT(*) FROM audit_logs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, type, message, data, logged_at
		FROM audit_logs
		ORDER BY logged_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LogEntry, 0)
	for rows.Next() {
		var (
			e    model.LogEntry
			data []byte
		)
		if err := rows.Scan(&e.ID, &e.Type, &e.Message, &data, &e.Timestamp); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &e.Data); err != nil {
				return nil, fmt.Errorf("decode log data %s: %w", e.ID, err)
			}
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.LogEntry]{
		Items: items,
		Total: total,
	}, nil
}

// Ping checks database connectivity.
func (r *AuditPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
