package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

func TestRecorder_StampsRequestTime(t *testing.T) {
	outbox := store.NewInMemory()
	m := metrics.New(prometheus.NewRegistry())
	recorder := events.NewRecorder(outbox, events.WithRecorderMetrics(m), events.WithRecorderLogger(discardLogger()))
	ctx := requestcontext.WithTime(context.Background(), fixedNow)
	pilotID := uuid.New()

	require.NoError(t, recorder.Record(ctx, events.AggregatePilot, pilotID, events.TypePilotRefueled, map[string]any{"amount": 50}))

	all := outbox.All()
	require.Len(t, all, 1)
	assert.Equal(t, fixedNow, all[0].CreatedAt)
	assert.Equal(t, pilotID, all[0].AggregateID)
	assert.Nil(t, all[0].PublishedAt)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(all[0].Payload, &payload))
	assert.Equal(t, float64(50), payload["amount"])
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Recorded.WithLabelValues("pilot_refueled")))
}

type failingAppender struct{}

func (failingAppender) Append(context.Context, events.Event) error {
	return errors.New("outbox unavailable")
}

func TestRecorder_FailsClosed(t *testing.T) {
	recorder := events.NewRecorder(failingAppender{}, events.WithRecorderLogger(discardLogger()))

	err := recorder.Record(context.Background(), events.AggregateShip, uuid.New(), events.TypeShipCreated, struct{}{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ship_created")
}
