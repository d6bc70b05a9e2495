// Package domain holds typed identifiers shared across bounded contexts.
//
// Each aggregate gets its own UUID-backed type so a PilotID can never be passed
// where a ShipID is expected. All types encode as canonical UUID strings in JSON
// and as uuid columns in SQL.
package domain

import (
	"database/sql/driver"
	"strings"

	"github.com/google/uuid"

	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
)

type (
	PlanetID   uuid.UUID
	ShipID     uuid.UUID
	PilotID    uuid.UUID
	ContractID uuid.UUID
	ResourceID uuid.UUID
	RefillID   uuid.UUID
)

// parseUUID enforces the invariant that IDs crossing a trust boundary are
// valid, non-empty, non-nil UUIDs.
func parseUUID(s, kind string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be nil")
	}
	return u, nil
}

func ParsePlanetID(s string) (PlanetID, error) {
	u, err := parseUUID(s, "planet")
	return PlanetID(u), err
}

func ParseShipID(s string) (ShipID, error) {
	u, err := parseUUID(s, "ship")
	return ShipID(u), err
}

func ParsePilotID(s string) (PilotID, error) {
	u, err := parseUUID(s, "pilot")
	return PilotID(u), err
}

func ParseContractID(s string) (ContractID, error) {
	u, err := parseUUID(s, "contract")
	return ContractID(u), err
}

func ParseResourceID(s string) (ResourceID, error) {
	u, err := parseUUID(s, "resource")
	return ResourceID(u), err
}

// PlanetID

func (id PlanetID) String() string                { return uuid.UUID(id).String() }
func (id PlanetID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id PlanetID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *PlanetID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id PlanetID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *PlanetID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }

// ShipID

func (id ShipID) String() string                { return uuid.UUID(id).String() }
func (id ShipID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id ShipID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ShipID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id ShipID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *ShipID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }

// PilotID

func (id PilotID) String() string                { return uuid.UUID(id).String() }
func (id PilotID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id PilotID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *PilotID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id PilotID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *PilotID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }

// ContractID

func (id ContractID) String() string                { return uuid.UUID(id).String() }
func (id ContractID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id ContractID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ContractID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id ContractID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *ContractID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }

// ResourceID

func (id ResourceID) String() string                { return uuid.UUID(id).String() }
func (id ResourceID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id ResourceID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ResourceID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id ResourceID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *ResourceID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }

// RefillID

func (id RefillID) String() string                { return uuid.UUID(id).String() }
func (id RefillID) IsNil() bool                   { return uuid.UUID(id) == uuid.Nil }
func (id RefillID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *RefillID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id RefillID) Value() (driver.Value, error)  { return uuid.UUID(id).Value() }
func (id *RefillID) Scan(src any) error           { return (*uuid.UUID)(id).Scan(src) }
