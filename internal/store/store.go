// Package store holds the desk's in-memory state: transactions, files,
// permits and the audit log. Every mutating operation appends exactly one
// audit entry; lookups by an unknown id are silent no-ops.
package store

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"brokerdesk/internal/model"
)

// Listener receives every log entry the store appends. It runs after the
// store lock is released, on the goroutine that made the change.
type Listener func(model.LogEntry)

type listenerEntry struct {
	id int
	fn Listener
}

// Store is the state container. The zero value is not usable; call New.
// It is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	files        []model.File
	permits      []model.Permit
	logs         []model.LogEntry

	now    func() time.Time
	loc    *time.Location
	newID  func() string
	logger *slog.Logger

	lmu       sync.Mutex
	listeners []listenerEntry
	nextLID   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the location used to decide which log entries are from
// "today". Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the diagnostic logger. Audit entries are not written to it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		now:    func() time.Time { return time.Now().UTC() },
		loc:    time.Local,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// Subscribe registers fn for every appended log entry and returns a func that
// removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextLID
	s.nextLID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(e listenerEntry) bool { return e.id == id })
	}
}

func (s *Store) notify(entry model.LogEntry) {
	s.lmu.Lock()
	ls := slices.Clone(s.listeners)
	s.lmu.Unlock()
	for _, l := range ls {
		l.fn(entry.Clone())
	}
}

// stampAfter returns the current time, nudged forward if the clock has not
// moved past prev.
func (s *Store) stampAfter(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// appendLog must be called with mu held. The stored entry owns a private copy
// of data; the returned entry is another copy.
func (s *Store) appendLog(typ, message string, data any) model.LogEntry {
	entry := model.LogEntry{
		ID:        s.newID(),
		Type:      typ,
		Message:   message,
		Data:      data,
		Timestamp: s.now(),
	}.Clone()
	s.logs = append(s.logs, entry)
	return entry.Clone()
}

// AddTransaction creates a pending transaction from in.
func (s *Store) AddTransaction(in model.TransactionInput) model.Transaction {
	s.mu.Lock()
	now := s.now()
	t := model.Transaction{
		ID:         s.newID(),
		AWB:        in.AWB,
		HAWB:       in.HAWB,
		Status:     model.StatusPending,
		Attributes: in.Attributes.Clone(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.transactions = append(s.transactions, t)
	entry := s.appendLog(model.LogTransactionCreated, fmt.Sprintf("Transaction %s created", t.Waybill()), nil)
	s.mu.Unlock()

	s.notify(entry)
	return t.Clone()
}

// UpdateTransaction shallow-merges patch into the transaction with the given
// id. ok is false, and nothing is logged, when no such transaction exists.
func (s *Store) UpdateTransaction(id string, patch model.TransactionPatch) (t model.Transaction, ok bool) {
	s.mu.Lock()
	i := slices.IndexFunc(s.transactions, func(t model.Transaction) bool { return t.ID == id })
	if i == -1 {
		s.mu.Unlock()
		s.logger.Debug("update of unknown transaction ignored", "transaction_id", id)
		return model.Transaction{}, false
	}
	t = patch.Apply(s.transactions[i])
	t.UpdatedAt = s.stampAfter(t.UpdatedAt)
	s.transactions[i] = t
	entry := s.appendLog(model.LogTransactionUpdated, fmt.Sprintf("Transaction %s updated", t.Waybill()), nil)
	s.mu.Unlock()

	s.notify(entry)
	return t.Clone(), true
}

// DeleteTransaction removes the transaction with the given id, keeping the
// order of the rest. Unknown ids are ignored.
func (s *Store) DeleteTransaction(id string) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.transactions, func(t model.Transaction) bool { return t.ID == id })
	if i == -1 {
		s.mu.Unlock()
		s.logger.Debug("delete of unknown transaction ignored", "transaction_id", id)
		return false
	}
	t := s.transactions[i]
	s.transactions = slices.Delete(s.transactions, i, i+1)
	entry := s.appendLog(model.LogTransactionDeleted, fmt.Sprintf("Transaction %s deleted", t.Waybill()), nil)
	s.mu.Unlock()

	s.notify(entry)
	return true
}

// AddFile registers a file record.
func (s *Store) AddFile(in model.FileInput) model.File {
	s.mu.Lock()
	f := model.File{
		ID:          s.newID(),
		Name:        in.Name,
		ContentType: in.ContentType,
		Size:        in.Size,
		StorageKey:  in.StorageKey,
		Attributes:  in.Attributes.Clone(),
		UploadedAt:  s.now(),
	}
	s.files = append(s.files, f)
	entry := s.appendLog(model.LogFileUploaded, fmt.Sprintf("File %s uploaded", f.Name), nil)
	s.mu.Unlock()

	s.notify(entry)
	return f.Clone()
}

// DeleteFile removes the file record with the given id. Unknown ids are
// ignored.
func (s *Store) DeleteFile(id string) bool {
	s.mu.Lock()
	i := slices.IndexFunc(s.files, func(f model.File) bool { return f.ID == id })
	if i == -1 {
		s.mu.Unlock()
		s.logger.Debug("delete of unknown file ignored", "file_id", id)
		return false
	}
	f := s.files[i]
	s.files = slices.Delete(s.files, i, i+1)
	entry := s.appendLog(model.LogFileDeleted, fmt.Sprintf("File %s deleted", f.Name), nil)
	s.mu.Unlock()

	s.notify(entry)
	return true
}

// AddPermit creates a pending permit.
func (s *Store) AddPermit(in model.PermitInput) model.Permit {
	s.mu.Lock()
	p := model.Permit{
		ID:            s.newID(),
		Type:          in.Type,
		TransactionID: in.TransactionID,
		Status:        model.StatusPending,
		Attributes:    in.Attributes.Clone(),
		CreatedAt:     s.now(),
	}
	s.permits = append(s.permits, p)
	entry := s.appendLog(model.LogPermitCreated, fmt.Sprintf("Permit %s created for %s", p.Type, p.TransactionID), nil)
	s.mu.Unlock()

	s.notify(entry)
	return p.Clone()
}

// UpdatePermit shallow-merges patch into the permit with the given id. ok is
// false, and nothing is logged, when no such permit exists.
func (s *Store) UpdatePermit(id string, patch model.PermitPatch) (p model.Permit, ok bool) {
	s.mu.Lock()
	i := slices.IndexFunc(s.permits, func(p model.Permit) bool { return p.ID == id })
	if i == -1 {
		s.mu.Unlock()
		s.logger.Debug("update of unknown permit ignored", "permit_id", id)
		return model.Permit{}, false
	}
	p = patch.Apply(s.permits[i])
	prev := p.CreatedAt
	if p.UpdatedAt != nil {
		prev = *p.UpdatedAt
	}
	ts := s.stampAfter(prev)
	p.UpdatedAt = &ts
	s.permits[i] = p
	entry := s.appendLog(model.LogPermitUpdated, fmt.Sprintf("Permit %s updated", p.Type), nil)
	s.mu.Unlock()

	s.notify(entry)
	return p.Clone(), true
}

// AddLog appends an audit entry. It has no other side effects.
func (s *Store) AddLog(typ, message string, data any) model.LogEntry {
	s.mu.Lock()
	entry := s.appendLog(typ, message, data)
	s.mu.Unlock()

	s.notify(entry)
	return entry
}
