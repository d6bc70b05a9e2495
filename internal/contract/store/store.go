// Package store persists contracts and the resources that make up their
// payloads.
package store

import (
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
)

// ListFilter selects a page of contracts. Empty Statuses matches every status.
type ListFilter struct {
	Statuses []models.Status
	Limit    int
	Offset   int
}

func (f ListFilter) matches(c *models.Contract) bool {
	if len(f.Statuses) == 0 {
		return true
	}
	st := c.Status()
	for _, s := range f.Statuses {
		if s == st {
			return true
		}
	}
	return false
}
