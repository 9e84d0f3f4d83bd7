package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github/itish2003/companion/models"

	"github.com/google/uuid"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrNoteRequired     = errors.New("note text is required")
)

// NoteStore keeps each user's notes in insertion order. There is no update
// or delete.
type NoteStore interface {
	Append(ctx context.Context, username, text string) (models.NoteRecord, error)
	List(ctx context.Context, username string) ([]models.NoteRecord, error)
}

// MemoryNoteStore is a process-local NoteStore. Everything is lost on restart.
type MemoryNoteStore struct {
	mu     sync.RWMutex
	notes  map[string][]models.NoteRecord
	now    func() time.Time
	nextID func() (string, error)
}

// MemoryStoreOption customises a MemoryNoteStore.
type MemoryStoreOption func(*MemoryNoteStore)

// WithClock overrides the clock used to stamp new records.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryNoteStore) { s.now = now }
}

// WithIDGenerator overrides how record ids are minted.
func WithIDGenerator(next func() (string, error)) MemoryStoreOption {
	return func(s *MemoryNoteStore) { s.nextID = next }
}

// NewMemoryNoteStore creates an empty store. Ids are UUIDv7, so they sort by
// creation time.
func NewMemoryNoteStore(opts ...MemoryStoreOption) *MemoryNoteStore {
	s := &MemoryNoteStore{
		notes:  make(map[string][]models.NoteRecord),
		now:    time.Now,
		nextID: newNoteID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryNoteStore) Append(_ context.Context, username, text string) (models.NoteRecord, error) {
	if username == "" {
		return models.NoteRecord{}, ErrUsernameRequired
	}
	if text == "" {
		return models.NoteRecord{}, ErrNoteRequired
	}

	id, err := s.nextID()
	if err != nil {
		return models.NoteRecord{}, fmt.Errorf("failed to generate note id: %w", err)
	}
	rec := models.NoteRecord{
		ID:        id,
		Text:      text,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[username] = append(s.notes[username], rec)
	return rec, nil
}

// List returns a copy of the user's notes. Unknown users get an empty slice.
func (s *MemoryNoteStore) List(_ context.Context, username string) ([]models.NoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := s.notes[username]
	out := make([]models.NoteRecord, len(notes))
	copy(out, notes)
	return out, nil
}

func newNoteID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
