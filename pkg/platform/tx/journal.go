package tx

import (
	"context"
	"sync"
)

type journalKey struct{}

// Journal records how to revert the in-memory writes of one unit of work.
// In-memory stores append an undo step for every write they make while a
// journal is in the context; the runner replays them when the work fails.
type Journal struct {
	mu   sync.Mutex
	undo []func()
}

// WithJournal stores j in ctx for downstream in-memory stores.
func WithJournal(ctx context.Context, j *Journal) context.Context {
	return context.WithValue(ctx, journalKey{}, j)
}

// JournalFrom extracts the journal from ctx if present.
func JournalFrom(ctx context.Context) (*Journal, bool) {
	j, ok := ctx.Value(journalKey{}).(*Journal)
	return j, ok
}

// OnRollback registers undo to run if the unit of work in ctx fails. Writes
// made outside a unit of work are final, so it is a no-op there.
func OnRollback(ctx context.Context, undo func()) {
	if j, ok := JournalFrom(ctx); ok {
		j.mu.Lock()
		j.undo = append(j.undo, undo)
		j.mu.Unlock()
	}
}

// Rollback reverts every recorded write, newest first, and empties the journal.
func (j *Journal) Rollback() {
	j.mu.Lock()
	undo := j.undo
	j.undo = nil
	j.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}
