package events_test

//go:generate mockgen -source=worker.go -destination=mocks/mocks.go -package=mocks Relay,Publisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/metrics"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/mocks"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/circuit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeEvents(t *testing.T, n int) []events.Event {
	t.Helper()
	out := make([]events.Event, 0, n)
	for i := 0; i < n; i++ {
		e, err := events.New(events.AggregateContract, uuid.New(), events.TypeContractCreated, map[string]int{"n": i}, fixedNow)
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func ids(es []events.Event) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}

func TestWorker_TickPublishesBatchInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	batch := makeEvents(t, 3)

	relay.EXPECT().FetchUnpublished(gomock.Any(), 10).Return(batch, nil)
	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), batch[0]).Return(nil),
		publisher.EXPECT().Publish(gomock.Any(), batch[1]).Return(nil),
		publisher.EXPECT().Publish(gomock.Any(), batch[2]).Return(nil),
	)
	relay.EXPECT().MarkPublished(gomock.Any(), ids(batch), fixedNow).Return(nil)

	w := events.NewWorker(relay, publisher,
		events.WithBatchSize(10),
		events.WithWorkerLogger(discardLogger()),
		events.WithClock(func() time.Time { return fixedNow }),
	)
	n, err := w.Tick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWorker_TickStopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	batch := makeEvents(t, 3)
	brokerDown := errors.New("broker down")

	relay.EXPECT().FetchUnpublished(gomock.Any(), 100).Return(batch, nil)
	publisher.EXPECT().Publish(gomock.Any(), batch[0]).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), batch[1]).Return(brokerDown)
	relay.EXPECT().MarkPublished(gomock.Any(), ids(batch[:1]), fixedNow).Return(nil)

	w := events.NewWorker(relay, publisher,
		events.WithWorkerLogger(discardLogger()),
		events.WithClock(func() time.Time { return fixedNow }),
	)
	n, err := w.Tick(context.Background())

	assert.ErrorIs(t, err, brokerDown)
	assert.Equal(t, 1, n)
}

func TestWorker_OpenCircuitProbesOneEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	relay := mocks.NewMockRelay(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	batch := makeEvents(t, 2)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	breaker := circuit.New("outbox-relay", circuit.WithFailureThreshold(1))

	w := events.NewWorker(relay, publisher,
		events.WithBreaker(breaker),
		events.WithWorkerMetrics(m),
		events.WithWorkerLogger(discardLogger()),
		events.WithClock(func() time.Time { return fixedNow }),
	)

	relay.EXPECT().FetchUnpublished(gomock.Any(), 100).Return(batch, nil)
	publisher.EXPECT().Publish(gomock.Any(), batch[0]).Return(errors.New("broker down"))
	relay.EXPECT().MarkPublished(gomock.Any(), []uuid.UUID{}, fixedNow).Return(nil)
	_, err := w.Tick(context.Background())
	require.Error(t, err)
	require.True(t, breaker.IsOpen())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CircuitOpen))

	relay.EXPECT().FetchUnpublished(gomock.Any(), 1).Return(batch[:1], nil)
	publisher.EXPECT().Publish(gomock.Any(), batch[0]).Return(nil)
	relay.EXPECT().MarkPublished(gomock.Any(), ids(batch[:1]), fixedNow).Return(nil)
	n, err := w.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, breaker.IsOpen())
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CircuitOpen))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PublishFailures))
}

type collectingPublisher struct {
	mu        sync.Mutex
	published []events.Event
}

func (p *collectingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, e)
	return nil
}

func (p *collectingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func TestWorker_RunDrainsOutboxAndStops(t *testing.T) {
	outbox := store.NewInMemory()
	recorder := events.NewRecorder(outbox, events.WithRecorderLogger(discardLogger()))
	for i := 0; i < 5; i++ {
		require.NoError(t, recorder.Record(context.Background(), events.AggregateShip, uuid.New(), events.TypeShipCreated, map[string]int{"i": i}))
	}

	publisher := &collectingPublisher{}
	w := events.NewWorker(outbox, publisher,
		events.WithInterval(5*time.Millisecond),
		events.WithBatchSize(2),
		events.WithWorkerLogger(discardLogger()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return publisher.count() == 5 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	pending, err := outbox.FetchUnpublished(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
