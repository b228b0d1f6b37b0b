// Package ami holds the area-median-income indexed rent and price ceilings
// used to cap "affordable" units.
package ami

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// basePercent is the table row untabulated thresholds scale from.
const basePercent = 100

// Table maps AMI percentages to maximum rents by bedroom type, affordable
// purchase prices, and household income limits. Rows are keyed by whole AMI
// percent (60 = 60% AMI). The table is read-only after construction.
type Table struct {
	Rents               map[int]map[domain.Bedroom]decimal.Decimal
	PurchasePrices      map[int]decimal.Decimal
	IncomeLimits2Person map[int]decimal.Decimal
}

// DefaultTable returns the 2025 Delta County data: CHFA maximum rents by
// bedroom size, estimated affordable purchase prices (~4x annual income under
// standard mortgage qualification), and HUD 2-person household income limits.
func DefaultTable() *Table {
	return &Table{
		Rents: map[int]map[domain.Bedroom]decimal.Decimal{
			60:  rentRow(1147, 1377, 1591),
			70:  rentRow(1338, 1606, 1856),
			80:  rentRow(1530, 1836, 2122),
			90:  rentRow(1721, 2065, 2387),
			100: rentRow(1912, 2295, 2652),
			110: rentRow(2103, 2524, 2917),
			120: rentRow(2295, 2754, 3183),
		},
		PurchasePrices: map[int]decimal.Decimal{
			100: decimal.NewFromInt(256000),
			110: decimal.NewFromInt(281000),
			120: decimal.NewFromInt(307000),
		},
		IncomeLimits2Person: map[int]decimal.Decimal{
			60:  decimal.NewFromInt(48960),
			70:  decimal.NewFromInt(57120),
			80:  decimal.NewFromInt(65280),
			90:  decimal.NewFromInt(73440),
			100: decimal.NewFromInt(81600),
			110: decimal.NewFromInt(89760),
			120: decimal.NewFromInt(97920),
		},
	}
}

func rentRow(br1, br2, br3 int64) map[domain.Bedroom]decimal.Decimal {
	return map[domain.Bedroom]decimal.Decimal{
		domain.OneBedroom:   decimal.NewFromInt(br1),
		domain.TwoBedroom:   decimal.NewFromInt(br2),
		domain.ThreeBedroom: decimal.NewFromInt(br3),
	}
}

// percentKey converts an AMI fraction to a whole-percent row key. The second
// return is false when the fraction does not land on a whole percent.
func percentKey(frac decimal.Decimal) (int, bool) {
	pct := frac.Mul(decimal.NewFromInt(100))
	if !pct.IsInteger() {
		return 0, false
	}
	return int(pct.IntPart()), true
}

// RentsAt returns the rent row for the given AMI fraction. A tabulated
// fraction returns its row verbatim; anything else scales linearly from the
// 100%-AMI row (rent at f = f x rent at 100%), matching the published CHFA
// worksheet convention rather than interpolating between adjacent rows.
func (t *Table) RentsAt(frac decimal.Decimal) (map[domain.Bedroom]decimal.Decimal, error) {
	if key, ok := percentKey(frac); ok {
		if row, ok := t.Rents[key]; ok {
			return row, nil
		}
	}
	base, ok := t.Rents[basePercent]
	if !ok {
		return nil, fmt.Errorf("no rent data at %s%% AMI and no 100%% AMI row to scale from",
			frac.Mul(decimal.NewFromInt(100)).String())
	}
	scaled := make(map[domain.Bedroom]decimal.Decimal, len(base))
	for br, rent := range base {
		scaled[br] = frac.Mul(rent)
	}
	return scaled, nil
}

// Rent returns the maximum rent for one bedroom type at the given AMI
// fraction.
func (t *Table) Rent(frac decimal.Decimal, br domain.Bedroom) (decimal.Decimal, error) {
	row, err := t.RentsAt(frac)
	if err != nil {
		return decimal.Zero, err
	}
	rent, ok := row[br]
	if !ok {
		return decimal.Zero, fmt.Errorf("no %s rent at %s%% AMI",
			br, frac.Mul(decimal.NewFromInt(100)).String())
	}
	return rent, nil
}

// WeightedRent calculates the unit-mix weighted average maximum rent at the
// given AMI fraction. Mix entries without rent data are skipped, mirroring
// WeightedMarketRent on the project side.
func (t *Table) WeightedRent(frac decimal.Decimal, unitMix map[domain.Bedroom]decimal.Decimal) (decimal.Decimal, error) {
	row, err := t.RentsAt(frac)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for br, share := range unitMix {
		rent, ok := row[br]
		if !ok {
			continue
		}
		total = total.Add(rent.Mul(share))
	}
	return total, nil
}

// PurchasePrice estimates the affordable purchase price at the given AMI
// fraction, scaling untabulated fractions from the 100%-AMI price.
func (t *Table) PurchasePrice(frac decimal.Decimal) (decimal.Decimal, error) {
	if key, ok := percentKey(frac); ok {
		if price, ok := t.PurchasePrices[key]; ok {
			return price, nil
		}
	}
	base, ok := t.PurchasePrices[basePercent]
	if !ok {
		return decimal.Zero, fmt.Errorf("no purchase price at %s%% AMI and no 100%% AMI row to scale from",
			frac.Mul(decimal.NewFromInt(100)).String())
	}
	return frac.Mul(base), nil
}

// IncomeLimit returns the 2-person household income limit at a tabulated AMI
// fraction, for display alongside rent ceilings.
func (t *Table) IncomeLimit(frac decimal.Decimal) (decimal.Decimal, bool) {
	key, ok := percentKey(frac)
	if !ok {
		return decimal.Zero, false
	}
	limit, ok := t.IncomeLimits2Person[key]
	return limit, ok
}
