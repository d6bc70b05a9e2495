package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// InMemoryStore keeps the outbox in a slice, in append order.
type InMemoryStore struct {
	mu     sync.Mutex
	events []events.Event
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(ctx context.Context, event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.events = slices.DeleteFunc(s.events, func(e events.Event) bool { return e.ID == event.ID })
	})
	return nil
}

func (s *InMemoryStore) FetchUnpublished(_ context.Context, limit int) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []events.Event
	for _, e := range s.events {
		if e.PublishedAt != nil {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkPublished(_ context.Context, ids []uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	marked := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}
	for i := range s.events {
		if _, ok := marked[s.events[i].ID]; ok && s.events[i].PublishedAt == nil {
			t := at
			s.events[i].PublishedAt = &t
		}
	}
	return nil
}

// All returns a copy of every recorded event.
func (s *InMemoryStore) All() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]events.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Types returns the recorded event types in order; handy in tests.
func (s *InMemoryStore) Types() []events.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]events.Type, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}
