package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors or validation
// entries.
//
//   - ErrNotFound: entity does not exist in store
//   - ErrConflict: a unique constraint rejected the write (certification, ship owner)
//   - ErrInvalidState: entity in wrong state for the requested write
//   - ErrUnavailable: backing service (cache, broker) temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
