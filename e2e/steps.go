package e2e

import (
	"github.com/cucumber/godog"

	"github.com/henriqueinonhe/intergalactic-federation-api/e2e/steps/common"
	"github.com/henriqueinonhe/intergalactic-federation-api/e2e/steps/federation"
	"github.com/henriqueinonhe/intergalactic-federation-api/e2e/steps/ratelimit"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and assertions
	common.RegisterSteps(ctx, tc)

	// Ships, pilots, contracts and reports
	federation.RegisterSteps(ctx, tc)

	ratelimit.RegisterSteps(ctx, tc)
}
