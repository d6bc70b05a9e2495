package e2e

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the Gherkin scenarios against a live server at
// E2E_BASE_URL. Writes carry E2E_ACCESS_TOKEN when the server has auth on.
func TestFeatures(t *testing.T) {
	if testing.Short() || os.Getenv("E2E_BASE_URL") == "" {
		t.Skip("set E2E_BASE_URL to run end-to-end scenarios")
	}

	tags := os.Getenv("E2E_TAGS")
	if tags == "" {
		tags = "~@ratelimit"
	}

	tc := NewTestContext()
	suite := godog.TestSuite{
		Name: "federation",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				tc.Reset()
				return ctx, nil
			})
			RegisterSteps(ctx, tc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Tags:     tags,
			TestingT: t,
			Strict:   true,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("end-to-end scenarios failed")
	}
}
