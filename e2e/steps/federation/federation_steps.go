package federation

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	PUT(path string, body any) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	Save(alias, value string)
	Saved(alias string) (string, error)
}

// RegisterSteps registers ship, pilot, contract and report steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &federationSteps{tc: tc}

	// Setup
	ctx.Step(`^a ship with fuel level (\d+) of (\d+) saved as "([^"]*)"$`, steps.createShip)
	ctx.Step(`^a pilot "([^"]*)" certified "([^"]*)" with "([^"]*)" credits at "([^"]*)" flying "([^"]*)" saved as "([^"]*)"$`, steps.createPilot)
	ctx.Step(`^a resource "([^"]*)" weighing (\d+) saved as "([^"]*)"$`, steps.createResource)
	ctx.Step(`^a contract "([^"]*)" worth "([^"]*)" carrying "([^"]*)" from "([^"]*)" to "([^"]*)" saved as "([^"]*)"$`, steps.createContract)

	// Lifecycle
	ctx.Step(`^pilot "([^"]*)" accepts contract "([^"]*)"$`, steps.acceptContract)
	ctx.Step(`^pilot "([^"]*)" travels to "([^"]*)"$`, steps.travel)
	ctx.Step(`^pilot "([^"]*)" refuels (-?\d+) units$`, steps.refuel)
	ctx.Step(`^I fetch pilot "([^"]*)"$`, steps.fetchPilot)
	ctx.Step(`^I fetch contract "([^"]*)"$`, steps.fetchContract)

	// Reports
	ctx.Step(`^the transactions ledger should contain "([^"]*)" with value "([^"]*)"$`, steps.ledgerShouldContain)
}

type federationSteps struct {
	tc      TestContext
	planets map[string]string
}

func (s *federationSteps) created(what, alias string) error {
	if status := s.tc.GetLastResponseStatus(); status != 201 {
		return fmt.Errorf("create %s: status %d: %s", what, status, s.tc.GetLastResponseBody())
	}
	id, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	s.tc.Save(alias, fmt.Sprint(id))
	return nil
}

func (s *federationSteps) planetID(name string) (string, error) {
	if s.planets == nil {
		if err := s.tc.GET("/planets", nil); err != nil {
			return "", err
		}
		var planets []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(s.tc.GetLastResponseBody(), &planets); err != nil {
			return "", fmt.Errorf("decode planets: %w", err)
		}
		s.planets = make(map[string]string, len(planets))
		for _, p := range planets {
			s.planets[p.Name] = p.ID
		}
	}
	id, ok := s.planets[name]
	if !ok {
		return "", fmt.Errorf("unknown planet %q", name)
	}
	return id, nil
}

func (s *federationSteps) createShip(ctx context.Context, fuel, capacity int, alias string) error {
	err := s.tc.POST("/ships", map[string]any{
		"fuelLevel":      fuel,
		"fuelCapacity":   capacity,
		"weightCapacity": 500,
		"currentWeight":  0,
	})
	if err != nil {
		return err
	}
	return s.created("ship", alias)
}

func (s *federationSteps) createPilot(ctx context.Context, name, certification, credits, planet, shipAlias, alias string) error {
	location, err := s.planetID(planet)
	if err != nil {
		return err
	}
	shipID, err := s.tc.Saved(shipAlias)
	if err != nil {
		return err
	}
	if certification == "any" {
		certification = randomCertification()
	}
	err = s.tc.POST("/pilots", map[string]any{
		"certification":     certification,
		"name":              name,
		"age":               30,
		"credits":           credits,
		"currentLocationId": location,
		"shipId":            shipID,
	})
	if err != nil {
		return err
	}
	return s.created("pilot", alias)
}

func (s *federationSteps) createResource(ctx context.Context, name string, weight int, alias string) error {
	if err := s.tc.POST("/resources", map[string]any{"name": name, "weight": weight}); err != nil {
		return err
	}
	return s.created("resource", alias)
}

func (s *federationSteps) createContract(ctx context.Context, description, value, resources, from, to, alias string) error {
	origin, err := s.planetID(from)
	if err != nil {
		return err
	}
	destination, err := s.planetID(to)
	if err != nil {
		return err
	}
	var payload []string
	for _, r := range strings.Split(resources, ",") {
		id, err := s.tc.Saved(strings.TrimSpace(r))
		if err != nil {
			return err
		}
		payload = append(payload, id)
	}
	err = s.tc.POST("/contracts", map[string]any{
		"description":         description,
		"payload":             payload,
		"originPlanetId":      origin,
		"destinationPlanetId": destination,
		"value":               value,
	})
	if err != nil {
		return err
	}
	return s.created("contract", alias)
}

func (s *federationSteps) pilotPath(alias, action string) (string, error) {
	id, err := s.tc.Saved(alias)
	if err != nil {
		return "", err
	}
	return "/pilots/" + id + action, nil
}

func (s *federationSteps) acceptContract(ctx context.Context, pilot, contract string) error {
	path, err := s.pilotPath(pilot, "/acceptContract")
	if err != nil {
		return err
	}
	contractID, err := s.tc.Saved(contract)
	if err != nil {
		return err
	}
	return s.tc.PUT(path, map[string]any{"contractId": contractID})
}

func (s *federationSteps) travel(ctx context.Context, pilot, planet string) error {
	path, err := s.pilotPath(pilot, "/travel")
	if err != nil {
		return err
	}
	destination, err := s.planetID(planet)
	if err != nil {
		return err
	}
	return s.tc.PUT(path, map[string]any{"destinationPlanetId": destination})
}

func (s *federationSteps) refuel(ctx context.Context, pilot string, amount int) error {
	path, err := s.pilotPath(pilot, "/refuel")
	if err != nil {
		return err
	}
	return s.tc.PUT(path, map[string]any{"amount": amount})
}

func (s *federationSteps) fetchPilot(ctx context.Context, pilot string) error {
	path, err := s.pilotPath(pilot, "")
	if err != nil {
		return err
	}
	return s.tc.GET(path, nil)
}

func (s *federationSteps) fetchContract(ctx context.Context, contract string) error {
	id, err := s.tc.Saved(contract)
	if err != nil {
		return err
	}
	return s.tc.GET("/contracts/"+id, nil)
}

func (s *federationSteps) ledgerShouldContain(ctx context.Context, description, value string) error {
	if err := s.tc.GET("/reports/transactionsLedger", nil); err != nil {
		return err
	}
	var ledger []struct {
		Description string `json:"description"`
		Value       string `json:"value"`
	}
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &ledger); err != nil {
		return fmt.Errorf("decode ledger: %w", err)
	}
	for _, e := range ledger {
		if strings.Contains(e.Description, description) && e.Value == value {
			return nil
		}
	}
	return fmt.Errorf("ledger has no %q entry worth %s: %s", description, value, s.tc.GetLastResponseBody())
}

// randomCertification returns a fresh Luhn-valid seven digit code so
// scenarios can rerun against a persistent database.
func randomCertification() string {
	partial := fmt.Sprintf("%06d", rand.IntN(1_000_000))
	sum := 0
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if (len(partial)-1-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return partial + fmt.Sprint((10-sum%10)%10)
}
