package handler

import (
	"net/url"
	"strconv"

	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/models"
	"github.com/henriqueinonhe/intergalactic-federation-api/internal/contract/service"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain"
	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/schema"
	strutil "github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/strings"
)

const (
	CodeInvalidContractCreationData  = service.CodeInvalidContractCreationData
	CodeOriginAndDestinationAreEqual = "OriginAndDestinationAreEqual"
	CodeInvalidResourceCreationData  = "InvalidResourceCreationData"
	CodeInvalidContractQuery         = "InvalidContractQuery"

	msgInvalidContractCreationData = "Invalid contract creation data!"
	msgInvalidResourceCreationData = "Invalid resource creation data!"
	msgInvalidContractQuery        = "Invalid contract query!"

	maxTextLength = 255
)

// CreateContractRequest is the body of POST /contracts.
type CreateContractRequest struct {
	httputil.TypeMismatches

	Description         *string  `json:"description"`
	Payload             []string `json:"payload"`
	OriginPlanetID      *string  `json:"originPlanetId"`
	DestinationPlanetID *string  `json:"destinationPlanetId"`
	Value               *string  `json:"value"`

	cmd service.CreateContractCommand
}

func (r *CreateContractRequest) Validate() error {
	c := dErrors.NewCollector(CodeInvalidContractCreationData, msgInvalidContractCreationData)
	k := schema.New(c, &r.TypeMismatches)

	description, _ := k.String("description", r.Description, maxTextLength)
	payload, _ := k.IDList("payload", r.Payload, r.Payload != nil, 1)
	origin, originOK := k.ID("originPlanetId", r.OriginPlanetID, true)
	destination, destinationOK := k.ID("destinationPlanetId", r.DestinationPlanetID, true)
	if originOK && destinationOK && origin == destination {
		c.Add(CodeOriginAndDestinationAreEqual, "Origin and destination planets must be different!")
	}
	value, _ := k.Amount("value", r.Value)

	if err := c.Err(); err != nil {
		return err
	}
	ids := make([]domain.ResourceID, 0, len(payload))
	for _, id := range payload {
		ids = append(ids, domain.ResourceID(id))
	}
	r.cmd = service.CreateContractCommand{
		Description:         description,
		PayloadIDs:          ids,
		OriginPlanetID:      domain.PlanetID(origin),
		DestinationPlanetID: domain.PlanetID(destination),
		Value:               value,
	}
	return nil
}

func (r *CreateContractRequest) Command() service.CreateContractCommand {
	return r.cmd
}

// CreateResourceRequest is the body of POST /resources.
type CreateResourceRequest struct {
	httputil.TypeMismatches

	Name   *string  `json:"name"`
	Weight *float64 `json:"weight"`

	cmd service.CreateResourceCommand
}

func (r *CreateResourceRequest) Validate() error {
	c := dErrors.NewCollector(CodeInvalidResourceCreationData, msgInvalidResourceCreationData)
	k := schema.New(c, &r.TypeMismatches)

	name, _ := k.String("name", r.Name, maxTextLength)
	weight, _ := k.Int("weight", r.Weight, 0, maxWeight)

	if err := c.Err(); err != nil {
		return err
	}
	r.cmd = service.CreateResourceCommand{Name: name, Weight: weight}
	return nil
}

func (r *CreateResourceRequest) Command() service.CreateResourceCommand {
	return r.cmd
}

const maxWeight = 1<<31 - 1

// parseListQuery reads status, page and pageSize from GET /contracts.
func parseListQuery(values url.Values) (service.ListQuery, error) {
	c := dErrors.NewCollector(CodeInvalidContractQuery, msgInvalidContractQuery)
	q := service.ListQuery{Page: 1, PageSize: service.DefaultPageSize}

	for _, raw := range strutil.SplitList(values["status"]) {
		status, ok := models.ParseStatus(raw)
		if !ok {
			c.AddField("status", "%q must be one of [Any, Open, In Effect, Fulfilled], got %q", "status", raw)
			continue
		}
		q.Statuses = append(q.Statuses, status)
	}
	q.Page = intParam(c, values, "page", 1, 1, 0)
	q.PageSize = intParam(c, values, "pageSize", service.DefaultPageSize, 1, service.MaxPageSize)

	if err := c.Err(); err != nil {
		return service.ListQuery{}, err
	}
	return q, nil
}

// intParam parses an optional integer query parameter; max <= 0 means unbounded.
func intParam(c *dErrors.Collector, values url.Values, name string, def, min, max int) int {
	raw := values.Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || (max > 0 && n > max) {
		if max > 0 {
			c.AddField(name, "%q must be an integer between %d and %d", name, min, max)
		} else {
			c.AddField(name, "%q must be an integer greater than or equal to %d", name, min)
		}
		return def
	}
	return n
}
