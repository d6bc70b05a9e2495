package models

import (
	"time"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// Status is the derived lifecycle state of a contract. It only moves forward:
// Open, then In Effect, then Fulfilled.
type Status string

const (
	StatusOpen      Status = "Open"
	StatusInEffect  Status = "In Effect"
	StatusFulfilled Status = "Fulfilled"

	// StatusAny is a query value matching every status.
	StatusAny Status = "Any"
)

// DeriveStatus computes the status from the contractee and fulfillment time.
func DeriveStatus(contracteeID *domain.PilotID, fulfilledAt *time.Time) Status {
	switch {
	case fulfilledAt != nil:
		return StatusFulfilled
	case contracteeID != nil:
		return StatusInEffect
	default:
		return StatusOpen
	}
}

// ParseStatus accepts the query spellings Any, Open, In Effect and Fulfilled.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusAny, StatusOpen, StatusInEffect, StatusFulfilled:
		return st, true
	}
	return "", false
}

// NormalizeStatuses collapses duplicates and expands Any. An empty result
// means every status.
func NormalizeStatuses(statuses []Status) []Status {
	seen := make(map[Status]bool, len(statuses))
	out := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		if s == StatusAny {
			return nil
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	if len(out) == 3 {
		return nil
	}
	return out
}
