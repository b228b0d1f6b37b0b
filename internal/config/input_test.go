package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
project:
  base_units: 30
  construction_cost_per_unit: 250000
  land_dev_value_per_unit: 40000
policy:
  affordability_period_years: 20
  rental_ami_threshold: 0.70
scenarios:
  - name: longer term
    policy:
      affordability_period_years: 30
      rental_ami_threshold: 0.80
      ownership_ami_threshold: 1.0
      min_affordable_pct: 0.25
`)

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 30, config.Project.BaseUnits)
	assert.True(t, config.Project.ConstructionCostPerUnit.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, 20, config.Policy.AffordabilityPeriodYears)
	assert.True(t, config.Policy.RentalAMIThreshold.Equal(decimal.NewFromFloat(0.70)))

	// Unset project fields fill from defaults before validation.
	assert.False(t, config.Project.MarketSalePrice.IsZero())
	assert.NotEmpty(t, config.Project.UnitMix)

	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, "longer term", config.Scenarios[0].Name)
	assert.Equal(t, 30, config.Scenarios[0].Policy.AffordabilityPeriodYears)
}

func TestLoadFromFileDerivesValuation(t *testing.T) {
	path := writeConfig(t, `
project:
  base_units: 10
  construction_cost_per_unit: 200000
  construction_valuation: 0
`)

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, config.Project.ConstructionValuation.Equal(decimal.NewFromInt(2000000)),
		"got %s", config.Project.ConstructionValuation)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writeConfig(t, "project: [not a map")

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			"valid",
			func(c *domain.Configuration) {},
			"",
		},
		{
			"bad project",
			func(c *domain.Configuration) { c.Project.BaseUnits = 0 },
			"project validation failed",
		},
		{
			"bad policy",
			func(c *domain.Configuration) { c.Policy.TapFeeReductionPct = decimal.NewFromInt(2) },
			"policy validation failed",
		},
		{
			"unnamed scenario",
			func(c *domain.Configuration) {
				c.Scenarios = []domain.NamedScenario{{Policy: domain.DefaultPolicySettings()}}
			},
			"name is required",
		},
		{
			"duplicate scenario",
			func(c *domain.Configuration) {
				c.Scenarios = []domain.NamedScenario{
					{Name: "twice", Policy: domain.DefaultPolicySettings()},
					{Name: "twice", Policy: domain.DefaultPolicySettings()},
				}
			},
			"duplicate name",
		},
		{
			"bad scenario policy",
			func(c *domain.Configuration) {
				bad := domain.DefaultPolicySettings()
				bad.UseTaxRebatePct = decimal.NewFromInt(-1)
				c.Scenarios = []domain.NamedScenario{{Name: "broken", Policy: bad}}
			},
			"scenario 0 (broken)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &domain.Configuration{
				Project: domain.DefaultProjectParams(),
				Policy:  domain.DefaultPolicySettings(),
			}
			tt.mutate(config)

			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
