package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/calculation"
	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(calculation.NewEngine())
}

func TestCompare(t *testing.T) {
	engine := newTestEngine()

	strict := domain.DefaultPolicySettings()
	strict.AffordabilityPeriodYears = 30
	generous := domain.DefaultPolicySettings()
	generous.TapFeeReductionPct = decimal.NewFromInt(1)

	config := &domain.Configuration{
		Project: domain.DefaultProjectParams(),
		Policy:  domain.DefaultPolicySettings(),
		Scenarios: []domain.NamedScenario{
			{Name: "30-year term", Policy: strict},
			{Name: "full tap waiver", Policy: generous},
		},
	}

	set, err := engine.Compare(config, "current draft")
	require.NoError(t, err)

	assert.Equal(t, "current draft", set.BaseScenarioName)
	require.NotNil(t, set.BaseResult)
	require.Len(t, set.AlternativeResults, 2)

	// Base carries zero deltas.
	assert.True(t, set.BaseResult.NetGainDiffFromBase.IsZero())
	assert.True(t, set.BaseResult.CityCostDiffFromBase.IsZero())
	assert.Equal(t, 0, set.BaseResult.AffordableDiffFromBase)

	// A full tap waiver costs the city more and pays the developer more.
	full := set.AlternativeResults[1]
	assert.Equal(t, "full tap waiver", full.ScenarioName)
	assert.True(t, full.CityCostDiffFromBase.IsPositive())
	assert.True(t, full.NetGainDiffFromBase.IsPositive())
	assert.True(t, full.NetGainDiffFromBase.Equal(
		full.ProForma.NetDeveloperGain.Sub(set.BaseResult.ProForma.NetDeveloperGain)))
}

func TestCompareInvalidScenario(t *testing.T) {
	engine := newTestEngine()

	bad := domain.DefaultPolicySettings()
	bad.MinAffordablePct = decimal.NewFromInt(2)

	config := &domain.Configuration{
		Project:   domain.DefaultProjectParams(),
		Policy:    domain.DefaultPolicySettings(),
		Scenarios: []domain.NamedScenario{{Name: "broken", Policy: bad}},
	}

	_, err := engine.Compare(config, "base")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestSweepAffordabilityPeriod(t *testing.T) {
	engine := newTestEngine()
	base := domain.DefaultPolicySettings()

	variants := VaryAffordabilityPeriod(base, nil)
	require.Len(t, variants, 6)
	assert.Equal(t, "5-year affordability", variants[0].Name)
	assert.Equal(t, 50, variants[5].Policy.AffordabilityPeriodYears)

	set, err := engine.Sweep(domain.DefaultProjectParams(), base, "current draft", variants)
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 6)

	// Only the period varies, so unit counts match the base everywhere.
	for _, alt := range set.AlternativeResults {
		assert.Equal(t, 0, alt.AffordableDiffFromBase)
	}
}

func TestSweepRentalAMI(t *testing.T) {
	engine := newTestEngine()
	base := domain.DefaultPolicySettings()

	variants := VaryRentalAMI(base, nil)
	require.Len(t, variants, 5)
	assert.Equal(t, "60% rental AMI", variants[0].Name)
	assert.Equal(t, "100% rental AMI", variants[4].Name)

	set, err := engine.Sweep(domain.DefaultProjectParams(), base, "current draft", variants)
	require.NoError(t, err)

	// Deeper affordability (lower AMI) must never pay the developer more.
	prev := set.AlternativeResults[0].ProForma.NetDeveloperGain
	for _, alt := range set.AlternativeResults[1:] {
		assert.True(t, alt.ProForma.NetDeveloperGain.GreaterThanOrEqual(prev),
			"%s net gain fell below the deeper threshold", alt.ScenarioName)
		prev = alt.ProForma.NetDeveloperGain
	}
}

func TestSweepOwnershipAMI(t *testing.T) {
	engine := newTestEngine()

	base := domain.DefaultPolicySettings()
	base.OwnershipPct = decimal.NewFromInt(1)

	variants := VaryOwnershipAMI(base, nil)
	require.Len(t, variants, 3)

	set, err := engine.Sweep(domain.DefaultProjectParams(), base, "all ownership", variants)
	require.NoError(t, err)

	// Higher ownership AMI shrinks the sale gap, so the net gain rises.
	first := set.AlternativeResults[0].ProForma.NetDeveloperGain
	last := set.AlternativeResults[2].ProForma.NetDeveloperGain
	assert.True(t, last.GreaterThan(first))
}

func TestCompareMatchesDirectEvaluation(t *testing.T) {
	engine := newTestEngine()

	alt := domain.DefaultPolicySettings()
	alt.AffordabilityPeriodYears = 30

	config := &domain.Configuration{
		Project:   domain.DefaultProjectParams(),
		Policy:    domain.DefaultPolicySettings(),
		Scenarios: []domain.NamedScenario{{Name: "30-year term", Policy: alt}},
	}
	set, err := engine.Compare(config, "base")
	require.NoError(t, err)

	// Each outcome equals an independent evaluation of the same policy.
	direct, err := engine.Calc.Evaluate(config.Project, alt)
	require.NoError(t, err)
	got := set.AlternativeResults[0]
	assert.Equal(t, direct, got.ProForma)
	assert.Equal(t, engine.Calc.AnalyzeCommunity(direct, alt), got.Community)
}

func TestVariantsDoNotMutateBase(t *testing.T) {
	base := domain.DefaultPolicySettings()
	want := base

	_ = VaryAffordabilityPeriod(base, []int{1, 2, 3})
	_ = VaryRentalAMI(base, nil)
	_ = VaryOwnershipAMI(base, nil)

	assert.Equal(t, want, base)
}
