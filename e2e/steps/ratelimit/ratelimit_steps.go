package ratelimit

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetLastResponseStatus() int
}

// RegisterSteps registers rate-limiting step definitions. They only pass
// against a server started with RATE_LIMIT_ENABLED=true.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &ratelimitSteps{tc: tc}

	ctx.Step(`^I GET "([^"]*)" (\d+) times from IP "([^"]*)"$`, steps.getNTimesFromIP)
	ctx.Step(`^at least one request should be rejected with (\d+)$`, steps.atLeastOneRejected)
}

type ratelimitSteps struct {
	tc       TestContext
	statuses []int
}

func (s *ratelimitSteps) getNTimesFromIP(ctx context.Context, path string, n int, ip string) error {
	s.statuses = s.statuses[:0]
	for range n {
		if err := s.tc.GET(path, map[string]string{"X-Forwarded-For": ip}); err != nil {
			return err
		}
		s.statuses = append(s.statuses, s.tc.GetLastResponseStatus())
	}
	return nil
}

func (s *ratelimitSteps) atLeastOneRejected(ctx context.Context, status int) error {
	for _, got := range s.statuses {
		if got == status {
			return nil
		}
	}
	return fmt.Errorf("no request was answered with %d: %v", status, s.statuses)
}
