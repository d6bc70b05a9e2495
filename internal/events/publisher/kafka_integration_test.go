//go:build integration

package publisher_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/events/publisher"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/config"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/platform/kafka"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	broker := containers.GetManager().GetRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.KafkaConfig{
		Brokers:           []string{broker.Broker},
		Topic:             "federation.events.it." + uuid.NewString()[:8],
		Partitions:        1,
		ReplicationFactor: 1,
	}
	client, err := kafka.New(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, kafka.EnsureTopic(ctx, client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, kafka.EnsureTopic(ctx, client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), "second call is a no-op")

	event, err := events.New(events.AggregateContract, uuid.New(), events.TypeContractFulfilled,
		map[string]string{"value": "1500"}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, publisher.NewKafka(client, cfg.Topic).Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Broker),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())
	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, event.AggregateID.String(), string(records[0].Key))
	assert.Contains(t, string(records[0].Value), event.ID.String())
}
