package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brokerdesk/internal/model"
)

// AuditSink mirrors store log entries into an AuditRepository off the caller's
// goroutine. Entries are appended one at a time, in the order they were
// enqueued.
type AuditSink struct {
	repo    AuditRepository
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	closed  bool
	entries chan model.LogEntry
	done    chan struct{}
}

// NewAuditSink starts the sink's worker. Register Enqueue with
// store.Subscribe and call Close on shutdown.
func NewAuditSink(repo AuditRepository, logger *slog.Logger, timeout time.Duration, buffer int) *AuditSink {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if buffer <= 0 {
		buffer = 1024
	}
	s := &AuditSink{
		repo:    repo,
		logger:  logger.With("component", "audit_sink"),
		timeout: timeout,
		entries: make(chan model.LogEntry, buffer),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Enqueue hands entry to the worker without blocking. The entry is dropped,
// and the drop logged, when the queue is full or the sink is closed.
func (s *AuditSink) Enqueue(entry model.LogEntry) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.logger.Warn("audit_sink_closed", "log_id", entry.ID, "log_type", entry.Type)
		return
	}
	select {
	case s.entries <- entry:
	default:
		s.logger.Error("audit_queue_full", "log_id", entry.ID, "log_type", entry.Type)
	}
}

// Close stops accepting entries and waits until the queued ones have been
// appended or ctx is done.
func (s *AuditSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.entries)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AuditSink) run() {
	defer close(s.done)
	for entry := range s.entries {
		s.append(entry)
	}
}

func (s *AuditSink) append(entry model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("audit_append_failed",
			"log_id", entry.ID,
			"log_type", entry.Type,
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return
	}
	s.logger.Debug("audit_appended", "log_id", entry.ID, "log_type", entry.Type)
}
