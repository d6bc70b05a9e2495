// Package schema holds the structural checks shared by request bodies. Every
// failed check becomes a field-scoped entry on the caller's collector, worded
// the way API clients already parse them ("fuelLevel" must be ...).
package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
)

// Mismatches reports fields whose JSON type did not match the request struct.
type Mismatches interface {
	Mismatched(field string) bool
}

type Checker struct {
	c          *dErrors.Collector
	mismatches Mismatches
}

func New(c *dErrors.Collector, mismatches Mismatches) *Checker {
	return &Checker{c: c, mismatches: mismatches}
}

func (k *Checker) mismatched(field, kind string) bool {
	if k.mismatches != nil && k.mismatches.Mismatched(field) {
		k.c.AddField(field, "%q must be %s", field, kind)
		return true
	}
	return false
}

// Int checks a required integer within [min, max].
func (k *Checker) Int(field string, v *float64, min, max int64) (int64, bool) {
	if k.mismatched(field, "a number") {
		return 0, false
	}
	if v == nil {
		k.c.AddField(field, "%q is required", field)
		return 0, false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v != math.Trunc(*v) {
		k.c.AddField(field, "%q must be an integer", field)
		return 0, false
	}
	if *v < float64(min) {
		k.c.AddField(field, "%q must be greater than or equal to %d", field, min)
		return 0, false
	}
	if *v > float64(max) {
		k.c.AddField(field, "%q must be less than or equal to %d", field, max)
		return 0, false
	}
	return int64(*v), true
}

// Number checks a required number without constraining its value.
func (k *Checker) Number(field string, v *float64) (float64, bool) {
	if k.mismatched(field, "a number") {
		return 0, false
	}
	if v == nil {
		k.c.AddField(field, "%q is required", field)
		return 0, false
	}
	return *v, true
}

// Max adds an entry when value exceeds a limit taken from another field.
func (k *Checker) Max(field string, value int64, limitField string, limit int64) bool {
	if value > limit {
		k.c.AddField(field, "%q must be less than or equal to ref:%s (%d)", field, limitField, limit)
		return false
	}
	return true
}

// String checks a required, non-empty string of at most maxLen runes
// (maxLen <= 0 means unbounded).
func (k *Checker) String(field string, v *string, maxLen int) (string, bool) {
	if k.mismatched(field, "a string") {
		return "", false
	}
	if v == nil {
		k.c.AddField(field, "%q is required", field)
		return "", false
	}
	if strings.TrimSpace(*v) == "" {
		k.c.AddField(field, "%q is not allowed to be empty", field)
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(*v) > maxLen {
		k.c.AddField(field, "%q length must be less than or equal to %d characters long", field, maxLen)
		return "", false
	}
	return *v, true
}

// Pattern checks value against re; call only after String succeeded.
func (k *Checker) Pattern(field, value string, re *regexp.Regexp) bool {
	if !re.MatchString(value) {
		k.c.AddField(field, "%q with value %q fails to match the required pattern: %s", field, value, re.String())
		return false
	}
	return true
}

// ID checks a UUID field. A nil optional field returns (uuid.Nil, true).
func (k *Checker) ID(field string, v *string, required bool) (uuid.UUID, bool) {
	if k.mismatched(field, "a string") {
		return uuid.Nil, false
	}
	if v == nil {
		if required {
			k.c.AddField(field, "%q is required", field)
			return uuid.Nil, false
		}
		return uuid.Nil, true
	}
	id, err := uuid.Parse(strings.TrimSpace(*v))
	if err != nil || id == uuid.Nil {
		k.c.AddField(field, "%q must be a valid GUID", field)
		return uuid.Nil, false
	}
	return id, true
}

// IDList checks a required array of UUIDs with at least minItems entries.
// Duplicates are collapsed, keeping the first occurrence.
func (k *Checker) IDList(field string, v []string, present bool, minItems int) ([]uuid.UUID, bool) {
	if k.mismatched(field, "an array of strings") {
		return nil, false
	}
	if !present {
		k.c.AddField(field, "%q is required", field)
		return nil, false
	}
	if len(v) < minItems {
		k.c.AddField(field, "%q must contain at least %d items", field, minItems)
		return nil, false
	}
	ok := true
	seen := make(map[uuid.UUID]struct{}, len(v))
	ids := make([]uuid.UUID, 0, len(v))
	for i, raw := range v {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil || id == uuid.Nil {
			k.c.AddField(field, "%q must be a valid GUID", fmt.Sprintf("%s[%d]", field, i))
			ok = false
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if !ok {
		return nil, false
	}
	return ids, true
}

// Amount checks a required decimal string in the canonical credits format.
func (k *Checker) Amount(field string, v *string) (amount.Amount, bool) {
	s, ok := k.String(field, v, 0)
	if !ok {
		return amount.Zero(), false
	}
	a, err := amount.Parse(s)
	if err != nil {
		k.c.AddField(field, "%q with value %q must be a non-negative decimal with up to %d fraction digits", field, s, amount.MaxFractionDigits)
		return amount.Zero(), false
	}
	return a, true
}
