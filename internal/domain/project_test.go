package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProjectParams(t *testing.T) {
	p := DefaultProjectParams()

	assert.Equal(t, 20, p.BaseUnits)
	assert.True(t, p.ConstructionValuation.Equal(decimal.NewFromInt(9600000)))
	require.NoError(t, p.Validate())
}

func TestNormalizedFillsUnitMix(t *testing.T) {
	p := ProjectParams{BaseUnits: 10, ConstructionCostPerUnit: decimal.NewFromInt(200000)}

	n := p.Normalized()
	require.Len(t, n.UnitMix, 3)
	assert.True(t, n.UnitMix[TwoBedroom].Equal(decimal.NewFromFloat(0.60)))
}

func TestNormalizedDerivesValuation(t *testing.T) {
	p := ProjectParams{BaseUnits: 10, ConstructionCostPerUnit: decimal.NewFromInt(200000)}

	n := p.Normalized()
	assert.True(t, n.ConstructionValuation.Equal(decimal.NewFromInt(2000000)))

	// An explicit valuation survives normalization.
	p.ConstructionValuation = decimal.NewFromInt(5000000)
	n = p.Normalized()
	assert.True(t, n.ConstructionValuation.Equal(decimal.NewFromInt(5000000)))
}

func TestWeightedMarketRent(t *testing.T) {
	p := DefaultProjectParams()

	// 0.20*1211 + 0.60*1425 + 0.20*1710 = 1439.20
	want := decimal.NewFromFloat(1439.20)
	assert.True(t, p.WeightedMarketRent().Equal(want), "got %s", p.WeightedMarketRent())
}

func TestWeightedMarketRentSkipsUnpriced(t *testing.T) {
	p := DefaultProjectParams()
	delete(p.MarketRentByBedroom, ThreeBedroom)

	// 0.20*1211 + 0.60*1425 = 1097.20
	want := decimal.NewFromFloat(1097.20)
	assert.True(t, p.WeightedMarketRent().Equal(want))
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ProjectParams)
		wantField string
	}{
		{"valid", func(p *ProjectParams) {}, ""},
		{"zero units", func(p *ProjectParams) { p.BaseUnits = 0 }, "base_units"},
		{"negative cost", func(p *ProjectParams) {
			p.ConstructionCostPerUnit = decimal.NewFromInt(-1)
		}, "construction_cost_per_unit"},
		{"negative land", func(p *ProjectParams) {
			p.LandDevValuePerUnit = decimal.NewFromInt(-1)
		}, "land_dev_value_per_unit"},
		{"negative rent", func(p *ProjectParams) {
			p.MarketRentByBedroom[TwoBedroom] = decimal.NewFromInt(-500)
		}, "market_rent_by_bedroom.2BR"},
		{"mix share above one", func(p *ProjectParams) {
			p.UnitMix[OneBedroom] = decimal.NewFromInt(2)
		}, "unit_mix.1BR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProjectParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var perr *ParameterError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantField, perr.Field)
		})
	}
}
