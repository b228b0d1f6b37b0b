package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func TestWorksheet(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Worksheet(domain.DefaultProjectParams())
	require.NoError(t, err)
	require.Len(t, result.Cards, 4)

	byOption := make(map[WorksheetOption]WorksheetCard, 4)
	for _, card := range result.Cards {
		byOption[card.Option] = card
	}

	// No participation: base units only, nothing waived, nothing guaranteed.
	none := byOption[OptionNone]
	assert.Equal(t, "No Fast Track", none.Name)
	assert.Equal(t, 20, none.TotalUnits)
	assert.Equal(t, 20, none.MarketRateUnits)
	assert.Equal(t, 0, none.BonusUnits)
	assert.Equal(t, 0, none.AffordableUnits)
	assert.True(t, none.FeeWaivers.IsZero())
	assert.Nil(t, none.AddsValue, "worth-it does not apply without participation")

	// Light touch: 10% density bonus, no tap or use tax relief.
	light := byOption[OptionLight]
	assert.Equal(t, 2, light.BonusUnits)
	assert.Equal(t, 22, light.TotalUnits)
	assert.Equal(t, 6, light.AffordableUnits, "5 base + 1 bonus affordable")
	assert.Equal(t, 15, light.AffordabilityYears)
	require.NotNil(t, light.AddsValue)

	middle := byOption[OptionMiddle]
	assert.Equal(t, 4, middle.BonusUnits)
	assert.Equal(t, 7, middle.AffordableUnits)
	assert.Equal(t, 15, middle.AffordabilityYears)
	assert.True(t, middle.FeeWaivers.GreaterThan(light.FeeWaivers),
		"full incentives waive more than light touch")

	// Maximum matches middle except for the doubled term.
	maximum := byOption[OptionMaximum]
	assert.Equal(t, middle.BonusUnits, maximum.BonusUnits)
	assert.Equal(t, middle.AffordableUnits, maximum.AffordableUnits)
	assert.Equal(t, 30, maximum.AffordabilityYears)
	assert.True(t, maximum.FeeWaivers.Equal(middle.FeeWaivers))
	assert.Equal(t, 2*middle.UnitYears, maximum.UnitYears)
}

func TestWorksheetSmallProject(t *testing.T) {
	engine := newTestEngine()

	project := domain.DefaultProjectParams()
	project.BaseUnits = 10
	project.ConstructionValuation = decimal.NewFromInt(2000000)

	result, err := engine.Worksheet(project)
	require.NoError(t, err)

	for _, card := range result.Cards {
		if card.Option == OptionNone {
			assert.Equal(t, 10, card.TotalUnits)
			continue
		}
		assert.Equal(t, card.TotalUnits, card.AffordableUnits+card.MarketRateUnits)
	}
}

func TestWorksheetInvalidProject(t *testing.T) {
	engine := newTestEngine()

	project := domain.DefaultProjectParams()
	project.BaseUnits = -1

	_, err := engine.Worksheet(project)
	assert.Error(t, err)
}
