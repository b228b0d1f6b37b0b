package ami

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

func TestRentsAtTabulated(t *testing.T) {
	table := DefaultTable()

	row, err := table.RentsAt(decimal.NewFromFloat(0.80))
	require.NoError(t, err)

	assert.True(t, row[domain.OneBedroom].Equal(decimal.NewFromInt(1530)))
	assert.True(t, row[domain.TwoBedroom].Equal(decimal.NewFromInt(1836)))
	assert.True(t, row[domain.ThreeBedroom].Equal(decimal.NewFromInt(2122)))
}

func TestRentsAtScalesFromBase(t *testing.T) {
	table := DefaultTable()

	// 65% is not a published row, so each rent is 0.65 x the 100% row.
	row, err := table.RentsAt(decimal.NewFromFloat(0.65))
	require.NoError(t, err)

	want := decimal.NewFromFloat(0.65).Mul(decimal.NewFromInt(2295))
	assert.True(t, row[domain.TwoBedroom].Equal(want),
		"got %s, want %s", row[domain.TwoBedroom], want)
}

func TestRentsAtNoBaseRow(t *testing.T) {
	table := &Table{Rents: map[int]map[domain.Bedroom]decimal.Decimal{
		60: rentRow(1147, 1377, 1591),
	}}

	_, err := table.RentsAt(decimal.NewFromFloat(0.65))
	assert.Error(t, err)
}

func TestRent(t *testing.T) {
	table := DefaultTable()

	rent, err := table.Rent(decimal.NewFromFloat(0.60), domain.ThreeBedroom)
	require.NoError(t, err)
	assert.True(t, rent.Equal(decimal.NewFromInt(1591)))
}

func TestWeightedRent(t *testing.T) {
	table := DefaultTable()

	// All-2BR mix at 80% AMI is just the 2BR rent.
	mix := map[domain.Bedroom]decimal.Decimal{
		domain.TwoBedroom: decimal.NewFromInt(1),
	}
	rent, err := table.WeightedRent(decimal.NewFromFloat(0.80), mix)
	require.NoError(t, err)
	assert.True(t, rent.Equal(decimal.NewFromInt(1836)))
}

func TestWeightedRentDefaultMix(t *testing.T) {
	table := DefaultTable()

	rent, err := table.WeightedRent(decimal.NewFromInt(1), domain.DefaultUnitMix())
	require.NoError(t, err)

	// 0.20*1912 + 0.60*2295 + 0.20*2652 = 2289.80
	want := decimal.NewFromFloat(2289.80)
	assert.True(t, rent.Equal(want), "got %s, want %s", rent, want)
}

func TestPurchasePrice(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name string
		frac decimal.Decimal
		want decimal.Decimal
	}{
		{"tabulated 100%", decimal.NewFromInt(1), decimal.NewFromInt(256000)},
		{"tabulated 110%", decimal.NewFromFloat(1.10), decimal.NewFromInt(281000)},
		{"tabulated 120%", decimal.NewFromFloat(1.20), decimal.NewFromInt(307000)},
		{"scaled 80%", decimal.NewFromFloat(0.80), decimal.NewFromFloat(0.80).Mul(decimal.NewFromInt(256000))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.PurchasePrice(tt.frac)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestIncomeLimit(t *testing.T) {
	table := DefaultTable()

	limit, ok := table.IncomeLimit(decimal.NewFromFloat(0.80))
	require.True(t, ok)
	assert.True(t, limit.Equal(decimal.NewFromInt(65280)))

	_, ok = table.IncomeLimit(decimal.NewFromFloat(0.655))
	assert.False(t, ok)
}

func TestRentsMonotonicInAMI(t *testing.T) {
	table := DefaultTable()

	fracs := []decimal.Decimal{
		decimal.NewFromFloat(0.60),
		decimal.NewFromFloat(0.70),
		decimal.NewFromFloat(0.80),
		decimal.NewFromFloat(0.90),
		decimal.NewFromInt(1),
		decimal.NewFromFloat(1.10),
		decimal.NewFromFloat(1.20),
	}
	prev := decimal.Zero
	for _, frac := range fracs {
		rent, err := table.Rent(frac, domain.TwoBedroom)
		require.NoError(t, err)
		assert.True(t, rent.GreaterThan(prev), "rent at %s should exceed %s", frac, prev)
		prev = rent
	}
}
