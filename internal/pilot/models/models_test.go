package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractmodels "github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/amount"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
)

func TestDebit(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &Pilot{Credits: amount.MustParse("10")}

	require.NoError(t, p.Debit(amount.MustParse("9.5"), now))
	assert.Equal(t, "0.5", p.Credits.String())
	assert.Equal(t, now, p.UpdatedAt)

	err := p.Debit(amount.FromInt(1), now)
	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.Equal(t, "0.5", p.Credits.String(), "a failed debit leaves credits untouched")

	require.NoError(t, p.Debit(amount.MustParse("0.5"), now))
	assert.True(t, p.Credits.IsZero())
}

func TestCreditAndMove(t *testing.T) {
	now := time.Now()
	p := &Pilot{Credits: amount.Zero()}
	p.Credit(amount.MustParse("120.25"), now)
	assert.Equal(t, "120.25", p.Credits.String())

	dest := domain.PlanetID(uuid.New())
	p.MoveTo(dest, now)
	assert.Equal(t, dest, p.CurrentLocationID)
	assert.False(t, p.HasShip())
}

func TestAcceptedContractJSON(t *testing.T) {
	pilotID := domain.PilotID(uuid.New())
	contract := &contractmodels.Contract{ID: domain.ContractID(uuid.New()), Value: amount.FromInt(5)}
	contract.Accept(pilotID, time.Now())

	out, err := json.Marshal(AcceptedContract{
		View:       contractmodels.NewView(contract, nil, nil),
		Contractee: &View{Pilot: &Pilot{ID: pilotID, Credits: amount.Zero()}},
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Equal(t, "In Effect", body["status"])
	assert.Equal(t, contract.ID.String(), body["id"])
	contractee, ok := body["contractee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, pilotID.String(), contractee["id"])
	assert.Contains(t, contractee, "ship")
}
