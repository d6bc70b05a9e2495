package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// Appender persists events, joining the transaction carried by ctx.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// Recorder appends domain events with fail-closed semantics: an error must
// abort the caller's transaction.
type Recorder struct {
	store   Appender
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type RecorderOption func(*Recorder)

func WithRecorderLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

func WithRecorderMetrics(m *metrics.Metrics) RecorderOption {
	return func(r *Recorder) {
		r.metrics = m
	}
}

func NewRecorder(store Appender, opts ...RecorderOption) *Recorder {
	r := &Recorder{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends one event stamped with the request time.
func (r *Recorder) Record(ctx context.Context, aggregateType string, aggregateID uuid.UUID, typ Type, payload any) error {
	event, err := New(aggregateType, aggregateID, typ, payload, requestcontext.Now(ctx))
	if err != nil {
		return err
	}
	if err := r.store.Append(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "failed to record domain event",
			"request_id", requestcontext.RequestID(ctx),
			"event_type", typ,
			"aggregate_id", aggregateID,
			"error", err,
		)
		return fmt.Errorf("record %s: %w", typ, err)
	}
	if r.metrics != nil {
		r.metrics.IncRecorded(string(typ))
	}
	return nil
}
