package abstractfactory

import (
	"context"

	"pattern_lab/internal/patterns"
)

type Scenario struct {
	seed int64
}

func NewScenario(seed int64) *Scenario { return &Scenario{seed: seed} }

func (s *Scenario) Name() string { return "abstract-factory" }

func (s *Scenario) Demo(ctx context.Context) patterns.DemoResult {
	var rows []map[string]any
	for _, tier := range []string{"standard", "premium"} {
		f := FactoryFor(tier)
		gw := f.CreateGateway(s.seed)
		cfg := f.CreateConfig()
		rows = append(rows, map[string]any{
			"tier":    f.Tier(),
			"gateway": gw.Name(),
			"config":  cfg,
		})
	}

	return patterns.DemoResult{
		Pattern:     s.Name(),
		Description: "Factories producing matched gateway+config families per account tier",
		Result:      rows,
	}
}

func (s *Scenario) Test(ctx context.Context) patterns.TestResult {
	result := patterns.TestResult{Pattern: s.Name()}

	std := FactoryFor("standard")
	prem := FactoryFor("premium")

	result.AddCheck("standard family is consistent",
		std.CreateGateway(s.seed).Name() == "standard" && std.CreateConfig().Tier == "standard",
		"gateway and config both come from the standard family")

	result.AddCheck("premium family is consistent",
		prem.CreateGateway(s.seed).Name() == "premium" && prem.CreateConfig().Tier == "premium",
		"gateway and config both come from the premium family")

	result.AddCheck("premium is tuned tighter",
		prem.CreateConfig().Timeout < std.CreateConfig().Timeout &&
			prem.CreateConfig().SuccessRate > std.CreateConfig().SuccessRate,
		"premium timeout %s vs standard %s", prem.CreateConfig().Timeout, std.CreateConfig().Timeout)

	result.AddCheck("unknown tier falls back to standard",
		FactoryFor("bronze").Tier() == "standard",
		"got %s", FactoryFor("bronze").Tier())

	result.Finish()
	return result
}
