package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/store/seed"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/testutil"
)

func newPlanetRouter(t *testing.T, svc Service) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func seededService(t *testing.T) *service.Service {
	t.Helper()
	mem := store.NewInMemory()
	u, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, u.Apply(context.Background(), mem, time.Now()))
	return service.New(mem)
}

func TestListPlanets(t *testing.T) {
	router := newPlanetRouter(t, seededService(t))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/planets"))

	testutil.AssertStatusOK(t, rr)
	planets := testutil.UnmarshalResponse[[]models.Planet](t, rr)
	require.Len(t, *planets, 4)
	assert.Equal(t, "Andvari", (*planets)[0].Name)
	assert.Equal(t, models.PlanetIDFor("Andvari"), (*planets)[0].ID)
}

func TestListRoutes(t *testing.T) {
	router := newPlanetRouter(t, seededService(t))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/planets/routes"))

	testutil.AssertStatusOK(t, rr)
	routes := testutil.UnmarshalResponse[[]service.RouteDetail](t, rr)
	assert.Len(t, *routes, 9)
}

type failingService struct{}

func (failingService) ListPlanets(context.Context) ([]*models.Planet, error) {
	return nil, errors.New("connection reset")
}

func (failingService) ListRoutes(context.Context) ([]service.RouteDetail, error) {
	return nil, errors.New("connection reset")
}

func TestListPlanets_InternalErrorHidesCause(t *testing.T) {
	router := newPlanetRouter(t, failingService{})

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/planets"))

	assert.NotContains(t, rr.Body.String(), "connection reset")
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "InternalServerError")
}
