package domainerrors

import (
	"fmt"
	"strings"

	strutil "github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/strings"
)

// Entry is one coded violation inside a ValidationError.
type Entry struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationError aggregates every violation found while validating a single
// operation. It is returned as a whole; operations never apply partial writes
// once one exists.
type ValidationError struct {
	Message string  `json:"message"`
	Code    string  `json:"code"`
	Entries []Entry `json:"entries"`
}

func (e *ValidationError) Error() string {
	if len(e.Entries) == 0 {
		return e.Message
	}
	codes := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		codes = append(codes, entry.Code)
	}
	return fmt.Sprintf("%s [%s]", e.Message, strings.Join(codes, ", "))
}

// HasEntry reports whether an entry with the given code is present.
func (e *ValidationError) HasEntry(code string) bool {
	for _, entry := range e.Entries {
		if entry.Code == code {
			return true
		}
	}
	return false
}

// NewValidation builds a ValidationError directly from entries.
func NewValidation(code, message string, entries ...Entry) *ValidationError {
	if entries == nil {
		entries = []Entry{}
	}
	return &ValidationError{Message: message, Code: code, Entries: entries}
}

// Collector accumulates entries for one operation.
//
//	v := dErrors.NewCollector("InvalidShipCreationData", "Invalid ship creation data!")
//	v.Add(CodeX, "...")
//	if err := v.Err(); err != nil { return nil, err }
type Collector struct {
	code    string
	message string
	entries []Entry
}

func NewCollector(code, message string) *Collector {
	return &Collector{code: code, message: message}
}

// Add appends an entry with a formatted message.
func (c *Collector) Add(code, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	c.entries = append(c.entries, Entry{Message: msg, Code: code})
}

// AddField appends a schema entry scoped to a request field, coded
// "<collector code><Field>": InvalidShipCreationData + fuelLevel gives
// InvalidShipCreationDataFuelLevel.
func (c *Collector) AddField(field, format string, args ...any) {
	c.Add(c.code+strutil.UpperFirst(field), format, args...)
}

// Err returns the aggregate error, or nil when nothing was collected.
func (c *Collector) Err() error {
	if len(c.entries) == 0 {
		return nil
	}
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return NewValidation(c.code, c.message, entries...)
}
