package httptransport

import (
	"context"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/httputil"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies"`
}

// healthHandler pings every dependency in parallel. Any failure turns the
// response into a 503.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		results := make([]string, len(names))
		var g errgroup.Group
		for i, name := range names {
			g.Go(func() error {
				if err := checks[name](ctx); err != nil {
					results[i] = "down"
					return err
				}
				results[i] = "up"
				return nil
			})
		}
		err := g.Wait()

		resp := healthResponse{
			Status:       "healthy",
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Dependencies: make(map[string]string, len(names)),
		}
		for i, name := range names {
			resp.Dependencies[name] = results[i]
		}
		status := http.StatusOK
		if err != nil {
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}
