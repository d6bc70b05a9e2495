package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/circuit"
)

// Relay is the outbox side the worker drains.
type Relay interface {
	FetchUnpublished(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// Publisher delivers one event to the bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Worker polls the outbox and publishes events in creation order. A failed
// publish stops the batch so later events never overtake it. While the
// breaker is open each tick sends a single probe.
type Worker struct {
	relay     Relay
	publisher Publisher
	breaker   *circuit.Breaker
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

type WorkerOption func(*Worker)

func WithInterval(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithBatchSize(n int) WorkerOption {
	return func(w *Worker) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

func WithBreaker(b *circuit.Breaker) WorkerOption {
	return func(w *Worker) {
		w.breaker = b
	}
}

func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithWorkerMetrics(m *metrics.Metrics) WorkerOption {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithClock(now func() time.Time) WorkerOption {
	return func(w *Worker) {
		w.now = now
	}
}

func NewWorker(relay Relay, publisher Publisher, opts ...WorkerOption) *Worker {
	w := &Worker{
		relay:     relay,
		publisher: publisher,
		breaker:   circuit.New("outbox-relay"),
		interval:  time.Second,
		batchSize: 100,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run relays until ctx is cancelled. It returns nil on cancellation.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "outbox relay started",
		"interval", w.interval,
		"batch_size", w.batchSize,
	)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Tick(ctx); err != nil && ctx.Err() == nil {
			w.logger.WarnContext(ctx, "outbox relay tick failed", "error", err)
		}
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "outbox relay stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Tick relays one batch and returns how many events were published.
func (w *Worker) Tick(ctx context.Context) (int, error) {
	limit := w.batchSize
	if w.breaker.IsOpen() {
		limit = 1
	}
	batch, err := w.relay.FetchUnpublished(ctx, limit)
	if err != nil {
		return 0, err
	}
	if w.metrics != nil {
		w.metrics.ObserveBatch(len(batch))
	}

	published := make([]uuid.UUID, 0, len(batch))
	var publishErr error
	for _, event := range batch {
		if publishErr = w.publisher.Publish(ctx, event); publishErr != nil {
			w.recordFailure(ctx, event, publishErr)
			break
		}
		w.recordSuccess(ctx)
		published = append(published, event.ID)
		if w.metrics != nil {
			w.metrics.IncPublished(string(event.Type))
		}
	}

	if err := w.relay.MarkPublished(ctx, published, w.now()); err != nil {
		return 0, err
	}
	return len(published), publishErr
}

func (w *Worker) recordFailure(ctx context.Context, event Event, err error) {
	if w.metrics != nil {
		w.metrics.IncPublishFailures()
	}
	_, change := w.breaker.RecordFailure()
	w.logger.WarnContext(ctx, "failed to publish domain event",
		"event_id", event.ID,
		"event_type", event.Type,
		"error", err,
	)
	if change.Opened {
		w.logger.ErrorContext(ctx, "outbox relay circuit opened", "breaker", w.breaker.Name())
		if w.metrics != nil {
			w.metrics.SetCircuitOpen(true)
		}
	}
}

func (w *Worker) recordSuccess(ctx context.Context) {
	_, change := w.breaker.RecordSuccess()
	if change.Closed {
		w.logger.InfoContext(ctx, "outbox relay circuit closed", "breaker", w.breaker.Name())
		if w.metrics != nil {
			w.metrics.SetCircuitOpen(false)
		}
	}
}
