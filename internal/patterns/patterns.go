// Package patterns defines the scenario contract shared by every
// pattern demo and the registry the HTTP layer resolves scenarios from.
package patterns

import (
	"context"
	"fmt"
	"sort"
)

// DemoResult is the envelope returned by a pattern's demo run.
type DemoResult struct {
	Pattern     string         `json:"pattern"`
	Description string         `json:"description"`
	Result      any            `json:"result"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Check is one assertion performed by a pattern's self-test.
type Check struct {
	Name    string `json:"name"`
	Pass    bool   `json:"pass"`
	Details string `json:"details,omitempty"`
}

// TestResult is the envelope returned by a pattern's self-test run.
type TestResult struct {
	Pattern string  `json:"pattern"`
	Status  string  `json:"status"` // PASS or FAIL
	Checks  []Check `json:"checks"`
}

// Finish sets Status from the accumulated checks.
func (t *TestResult) Finish() {
	t.Status = "PASS"
	for _, c := range t.Checks {
		if !c.Pass {
			t.Status = "FAIL"
			return
		}
	}
}

// AddCheck appends one assertion outcome.
func (t *TestResult) AddCheck(name string, pass bool, format string, args ...any) {
	t.Checks = append(t.Checks, Check{
		Name:    name,
		Pass:    pass,
		Details: fmt.Sprintf(format, args...),
	})
}

// Scenario runs a fixed demo/test sequence for one pattern.
type Scenario interface {
	Name() string
	Demo(ctx context.Context) DemoResult
	Test(ctx context.Context) TestResult
}

// Registry maps pattern names to scenarios. Built once at startup and
// read-only afterwards; handlers resolve by name without type switches.
type Registry struct {
	scenarios map[string]Scenario
}

// NewRegistry collects the given scenarios. Duplicate names are a wiring
// bug and reported as an error.
func NewRegistry(scenarios ...Scenario) (*Registry, error) {
	table := make(map[string]Scenario, len(scenarios))
	for _, s := range scenarios {
		if _, exists := table[s.Name()]; exists {
			return nil, fmt.Errorf("duplicate pattern scenario: %s", s.Name())
		}
		table[s.Name()] = s
	}
	return &Registry{scenarios: table}, nil
}

// Get returns the scenario registered under name.
func (r *Registry) Get(name string) (Scenario, bool) {
	s, ok := r.scenarios[name]
	return s, ok
}

// Names returns all registered pattern names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenarios))
	for n := range r.scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
