package publisher

import (
	"context"
	"log/slog"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
)

// Log writes events to the structured log. Used when no brokers are configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Publish(ctx context.Context, event events.Event) error {
	l.logger.InfoContext(ctx, "domain event",
		"log_type", "event",
		"event_id", event.ID,
		"event_type", event.Type,
		"aggregate_type", event.AggregateType,
		"aggregate_id", event.AggregateID,
		"payload", string(event.Payload),
	)
	return nil
}
