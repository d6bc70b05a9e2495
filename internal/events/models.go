// Package events records domain events in a transactional outbox and relays
// them to the event bus.
//
// Services call Recorder.Record inside the same transaction as their writes,
// so an event exists if and only if the state change committed. Worker polls
// unpublished rows and hands them to a Publisher (Kafka, or a log sink when no
// brokers are configured). Delivery is at-least-once; consumers dedupe on ID.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type names a domain event on the wire.
type Type string

const (
	TypeShipCreated       Type = "ship_created"
	TypeResourceCreated   Type = "resource_created"
	TypePilotCreated      Type = "pilot_created"
	TypePilotRefueled     Type = "pilot_refueled"
	TypePilotTravelled    Type = "pilot_travelled"
	TypeContractCreated   Type = "contract_created"
	TypeContractAccepted  Type = "contract_accepted"
	TypeContractFulfilled Type = "contract_fulfilled"
)

// Aggregate types.
const (
	AggregateShip     = "ship"
	AggregatePilot    = "pilot"
	AggregateContract = "contract"
	AggregateResource = "resource"
)

// Event is one outbox row.
type Event struct {
	ID            uuid.UUID       `json:"id"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   uuid.UUID       `json:"aggregateId"`
	Type          Type            `json:"type"`
	Payload       json.RawMessage `json:"payload"`
	CreatedAt     time.Time       `json:"createdAt"`
	PublishedAt   *time.Time      `json:"publishedAt,omitempty"`
}

// New builds an unpublished event with a JSON-encoded payload.
func New(aggregateType string, aggregateID uuid.UUID, typ Type, payload any, now time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return Event{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Type:          typ,
		Payload:       raw,
		CreatedAt:     now,
	}, nil
}
