package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
)

// Store is an in-memory implementation of store.EventStore for tests and
// short-lived runs.
type Store struct {
	mu     sync.RWMutex
	events []store.Event
	index  map[string]int
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// Close implements store.EventStore.
func (s *Store) Close() error { return nil }

// Append implements store.EventStore.
func (s *Store) Append(ctx context.Context, ev store.Event) error {
	if ev.ID == "" {
		return fmt.Errorf("append event: %w: empty id", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[ev.ID]; ok {
		return fmt.Errorf("append event %s: %w: duplicate id", ev.ID, internalerr.ErrInvalidInput)
	}
	s.index[ev.ID] = len(s.events)
	s.events = append(s.events, ev)
	return nil
}

// List implements store.EventStore.
func (s *Store) List(ctx context.Context, since time.Time, limit int) ([]store.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Event, 0, len(s.events))
	for _, ev := range s.events {
		if !since.IsZero() && ev.At.Before(since) {
			continue
		}
		out = append(out, ev)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// SetFeedback implements store.EventStore.
func (s *Store) SetFeedback(ctx context.Context, id string, fb store.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("event %s: %w", id, internalerr.ErrNotFound)
	}
	s.events[i].Feedback = fb
	return nil
}
