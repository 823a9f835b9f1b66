package store

import (
	"time"

	"brokerdesk/internal/model"
)

// filter copies the elements of in that match keep, in order. The result is
// never nil so it encodes as an empty JSON array.
func filter[T any](in []T, keep func(T) bool, clone func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, clone(v))
		}
	}
	return out
}

func all[T any](T) bool { return true }

// Transactions returns every transaction in insertion order.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.transactions, all[model.Transaction], model.Transaction.Clone)
}

// Files returns every file record in insertion order.
func (s *Store) Files() []model.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.files, all[model.File], model.File.Clone)
}

// Permits returns every permit in insertion order.
func (s *Store) Permits() []model.Permit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.permits, all[model.Permit], model.Permit.Clone)
}

// Logs returns the whole audit trail, oldest first.
func (s *Store) Logs() []model.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.logs, all[model.LogEntry], model.LogEntry.Clone)
}

// Transaction looks up a transaction by id.
func (s *Store) Transaction(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Transaction{}, false
}

// File looks up a file record by id.
func (s *Store) File(id string) (model.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.files {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return model.File{}, false
}

// Permit looks up a permit by id.
func (s *Store) Permit(id string) (model.Permit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.permits {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Permit{}, false
}

// PermitsForTransaction returns the permits that reference transactionID.
// The transaction itself need not exist.
func (s *Store) PermitsForTransaction(transactionID string) []model.Permit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.permits, func(p model.Permit) bool { return p.TransactionID == transactionID }, model.Permit.Clone)
}

func isActive(t model.Transaction) bool {
	return t.Status != model.StatusCompleted && t.Status != model.StatusCancelled
}

func isCompleted(t model.Transaction) bool { return t.Status == model.StatusCompleted }

func isPending(p model.Permit) bool {
	return p.Status == model.StatusPending || p.Status == model.StatusInReview
}

// ActiveTransactions returns transactions that are neither completed nor
// cancelled.
func (s *Store) ActiveTransactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.transactions, isActive, model.Transaction.Clone)
}

// CompletedTransactions returns transactions whose status is completed.
func (s *Store) CompletedTransactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.transactions, isCompleted, model.Transaction.Clone)
}

// PendingPermits returns permits that are pending or in review.
func (s *Store) PendingPermits() []model.Permit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.permits, isPending, model.Permit.Clone)
}

// TodayLogs returns the entries stamped on the current calendar day in the
// store's location.
func (s *Store) TodayLogs() []model.LogEntry {
	today := midnight(s.now(), s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.logs, func(e model.LogEntry) bool {
		return midnight(e.Timestamp, s.loc).Equal(today)
	}, model.LogEntry.Clone)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Stats is a point-in-time count of every collection and derived view.
type Stats struct {
	Transactions          int
	ActiveTransactions    int
	CompletedTransactions int
	Files                 int
	Permits               int
	PendingPermits        int
	Logs                  int
}

// Stats counts the collections under a single read lock.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		Transactions: len(s.transactions),
		Files:        len(s.files),
		Permits:      len(s.permits),
		Logs:         len(s.logs),
	}
	for _, t := range s.transactions {
		if isActive(t) {
			st.ActiveTransactions++
		}
		if isCompleted(t) {
			st.CompletedTransactions++
		}
	}
	for _, p := range s.permits {
		if isPending(p) {
			st.PendingPermits++
		}
	}
	return st
}
