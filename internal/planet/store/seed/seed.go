// Package seed loads the universe (planets and routes) from YAML and writes
// it into a planet store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/planet/models"
)

//go:embed universe.yaml
var defaultUniverse []byte

type Universe struct {
	Planets []PlanetSpec `yaml:"planets"`
	Routes  []RouteSpec  `yaml:"routes"`
}

type PlanetSpec struct {
	Name string `yaml:"name"`
}

type RouteSpec struct {
	From            string `yaml:"from"`
	To              string `yaml:"to"`
	FuelConsumption int64  `yaml:"fuel_consumption"`
}

// Writer is the store surface seeding needs. Both calls must be idempotent.
type Writer interface {
	UpsertPlanet(ctx context.Context, planet *models.Planet) error
	UpsertRoute(ctx context.Context, route models.Route) error
}

// Default returns the universe embedded in the binary.
func Default() (*Universe, error) {
	return Decode(bytes.NewReader(defaultUniverse))
}

// Load reads the universe from path, or the embedded default when path is empty.
func Load(path string) (*Universe, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open universe file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Universe, error) {
	var u Universe
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode universe: %w", err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Validate rejects universes that would violate the route table invariants.
func (u *Universe) Validate() error {
	var errs []error
	names := make(map[string]struct{}, len(u.Planets))
	for _, p := range u.Planets {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs = append(errs, errors.New("planet name is required"))
			continue
		}
		if _, dup := names[name]; dup {
			errs = append(errs, fmt.Errorf("planet %q declared twice", name))
		}
		names[name] = struct{}{}
	}

	edges := make(map[[2]string]struct{}, len(u.Routes))
	for _, r := range u.Routes {
		if _, ok := names[r.From]; !ok {
			errs = append(errs, fmt.Errorf("route %s->%s: unknown origin", r.From, r.To))
		}
		if _, ok := names[r.To]; !ok {
			errs = append(errs, fmt.Errorf("route %s->%s: unknown destination", r.From, r.To))
		}
		if r.From == r.To {
			errs = append(errs, fmt.Errorf("route %s->%s: origin and destination are equal", r.From, r.To))
		}
		if r.FuelConsumption <= 0 {
			errs = append(errs, fmt.Errorf("route %s->%s: fuel consumption must be positive", r.From, r.To))
		}
		key := [2]string{r.From, r.To}
		if _, dup := edges[key]; dup {
			errs = append(errs, fmt.Errorf("route %s->%s declared twice", r.From, r.To))
		}
		edges[key] = struct{}{}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid universe: %w", err)
	}
	return nil
}

// Apply upserts every planet and then every route.
func (u *Universe) Apply(ctx context.Context, w Writer, now time.Time) error {
	for _, p := range u.Planets {
		name := strings.TrimSpace(p.Name)
		planet := &models.Planet{
			ID:        models.PlanetIDFor(name),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := w.UpsertPlanet(ctx, planet); err != nil {
			return fmt.Errorf("seed planet %s: %w", name, err)
		}
	}
	for _, r := range u.Routes {
		route := models.Route{
			OriginPlanetID:      models.PlanetIDFor(r.From),
			DestinationPlanetID: models.PlanetIDFor(r.To),
			FuelConsumption:     r.FuelConsumption,
		}
		if err := w.UpsertRoute(ctx, route); err != nil {
			return fmt.Errorf("seed route %s->%s: %w", r.From, r.To, err)
		}
	}
	return nil
}
