package compare

import (
	"fmt"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/calculation"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// Engine orchestrates scenario comparison on top of the calculation engine.
type Engine struct {
	Calc *calculation.Engine
}

// NewEngine creates a comparison engine.
func NewEngine(calc *calculation.Engine) *Engine {
	return &Engine{Calc: calc}
}

// evaluate runs one policy and packages the outcome.
func (e *Engine) evaluate(name string, project domain.ProjectParams, policy domain.PolicySettings) (Outcome, error) {
	proForma, err := e.Calc.Evaluate(project, policy)
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario %q: %w", name, err)
	}
	return Outcome{
		ScenarioName: name,
		Policy:       policy,
		ProForma:     proForma,
		Community:    e.Calc.AnalyzeCommunity(proForma, policy),
	}, nil
}

// Compare evaluates the configuration's base policy against its named
// scenarios. The base carries zero deltas; every alternative is diffed
// against it.
func (e *Engine) Compare(config *domain.Configuration, baseName string) (*ComparisonSet, error) {
	base, err := e.evaluate(baseName, config.Project, config.Policy)
	if err != nil {
		return nil, err
	}

	set := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &base,
		AlternativeResults: make([]Outcome, 0, len(config.Scenarios)),
	}
	for _, sc := range config.Scenarios {
		alt, err := e.evaluate(sc.Name, config.Project, sc.Policy)
		if err != nil {
			return nil, err
		}
		set.AlternativeResults = append(set.AlternativeResults, diffFromBase(alt, &base))
	}
	return set, nil
}

// Sweep evaluates the base policy plus every variant a generator produces.
func (e *Engine) Sweep(project domain.ProjectParams, base domain.PolicySettings, baseName string, variants []Variant) (*ComparisonSet, error) {
	baseOutcome, err := e.evaluate(baseName, project, base)
	if err != nil {
		return nil, err
	}

	set := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseOutcome,
		AlternativeResults: make([]Outcome, 0, len(variants)),
	}
	for _, v := range variants {
		alt, err := e.evaluate(v.Name, project, v.Policy)
		if err != nil {
			return nil, err
		}
		set.AlternativeResults = append(set.AlternativeResults, diffFromBase(alt, &baseOutcome))
	}
	return set, nil
}
