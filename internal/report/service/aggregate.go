package service

import (
	"fmt"
	"sort"
	"time"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	pilotmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/pilot/models"
	planetmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

// ResourceWeights sums delivered weight by resource name.
type ResourceWeights map[string]int64

func (w ResourceWeights) add(payload []*contractmodels.Resource) {
	for _, r := range payload {
		w[r.Name] += r.Weight
	}
}

// PlanetSummary is the weight each planet sent and received through
// fulfilled contracts.
type PlanetSummary struct {
	Planet   *planetmodels.Planet `json:"planet"`
	Sent     ResourceWeights      `json:"sent"`
	Received ResourceWeights      `json:"received"`
}

// PilotSummary is the weight a pilot delivered through fulfilled contracts.
type PilotSummary struct {
	Pilot     *pilotmodels.Pilot `json:"pilot"`
	Resources ResourceWeights    `json:"resources"`
}

// LedgerEntry is one credit movement from the pilots' perspective: refills
// are negative, fulfilled contracts positive.
type LedgerEntry struct {
	Description string        `json:"description"`
	Value       amount.Amount `json:"value"`

	at time.Time
}

// PlanetsResourcesSummary has one entry per planet, in snapshot order.
func PlanetsResourcesSummary(snap *Snapshot) []PlanetSummary {
	out := make([]PlanetSummary, 0, len(snap.Planets))
	index := make(map[domain.PlanetID]int, len(snap.Planets))
	for i, p := range snap.Planets {
		index[p.ID] = i
		out = append(out, PlanetSummary{Planet: p, Sent: ResourceWeights{}, Received: ResourceWeights{}})
	}
	for _, c := range snap.Fulfilled {
		payload := snap.Payloads[c.ID]
		if i, ok := index[c.OriginPlanetID]; ok {
			out[i].Sent.add(payload)
		}
		if i, ok := index[c.DestinationPlanetID]; ok {
			out[i].Received.add(payload)
		}
	}
	return out
}

// PilotsResourcesSummary has one entry per pilot, in snapshot order.
func PilotsResourcesSummary(snap *Snapshot) []PilotSummary {
	out := make([]PilotSummary, 0, len(snap.Pilots))
	index := make(map[domain.PilotID]int, len(snap.Pilots))
	for i, p := range snap.Pilots {
		index[p.ID] = i
		out = append(out, PilotSummary{Pilot: p, Resources: ResourceWeights{}})
	}
	for _, c := range snap.Fulfilled {
		if c.ContracteeID == nil {
			continue
		}
		if i, ok := index[*c.ContracteeID]; ok {
			out[i].Resources.add(snap.Payloads[c.ID])
		}
	}
	return out
}

// TransactionsLedger lists refills and fulfilled contracts oldest first.
func TransactionsLedger(snap *Snapshot) []LedgerEntry {
	names := make(map[domain.PilotID]string, len(snap.Pilots))
	for _, p := range snap.Pilots {
		names[p.ID] = p.Name
	}

	out := make([]LedgerEntry, 0, len(snap.Refills)+len(snap.Fulfilled))
	for _, r := range snap.Refills {
		out = append(out, LedgerEntry{
			Description: fmt.Sprintf("%s bought fuel", names[r.PilotID]),
			Value:       r.Cost.Neg(),
			at:          r.CreatedAt,
		})
	}
	for _, c := range snap.Fulfilled {
		if c.FulfilledAt == nil {
			continue
		}
		out = append(out, LedgerEntry{
			Description: fmt.Sprintf("Contract %s, %s", c.ID, c.Description),
			Value:       c.Value,
			at:          *c.FulfilledAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	return out
}
