package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WesternSpaces/delta-fast-track-simulator/internal/domain"
)

// Variant is one single-lever deviation from a base policy.
type Variant struct {
	Name   string
	Policy domain.PolicySettings
}

// Default sweep values for the single-lever sensitivity runs.
var (
	DefaultPeriodYears = []int{5, 10, 15, 20, 30, 50}

	DefaultRentalAMIFracs = []decimal.Decimal{
		decimal.NewFromFloat(0.60),
		decimal.NewFromFloat(0.70),
		decimal.NewFromFloat(0.80),
		decimal.NewFromFloat(0.90),
		decimal.NewFromInt(1),
	}

	DefaultOwnershipAMIFracs = []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.NewFromFloat(1.10),
		decimal.NewFromFloat(1.20),
	}
)

// VaryAffordabilityPeriod builds one variant per affordability period, all
// other levers held at the base policy.
func VaryAffordabilityPeriod(base domain.PolicySettings, years []int) []Variant {
	if len(years) == 0 {
		years = DefaultPeriodYears
	}
	variants := make([]Variant, 0, len(years))
	for _, y := range years {
		policy := base
		policy.AffordabilityPeriodYears = y
		variants = append(variants, Variant{
			Name:   fmt.Sprintf("%d-year affordability", y),
			Policy: policy,
		})
	}
	return variants
}

// VaryRentalAMI builds one variant per rental AMI threshold.
func VaryRentalAMI(base domain.PolicySettings, fracs []decimal.Decimal) []Variant {
	if len(fracs) == 0 {
		fracs = DefaultRentalAMIFracs
	}
	variants := make([]Variant, 0, len(fracs))
	for _, f := range fracs {
		policy := base
		policy.RentalAMIThreshold = f
		variants = append(variants, Variant{
			Name:   fmt.Sprintf("%s%% rental AMI", f.Mul(decimal.NewFromInt(100)).String()),
			Policy: policy,
		})
	}
	return variants
}

// VaryOwnershipAMI builds one variant per ownership AMI threshold.
func VaryOwnershipAMI(base domain.PolicySettings, fracs []decimal.Decimal) []Variant {
	if len(fracs) == 0 {
		fracs = DefaultOwnershipAMIFracs
	}
	variants := make([]Variant, 0, len(fracs))
	for _, f := range fracs {
		policy := base
		policy.OwnershipAMIThreshold = f
		variants = append(variants, Variant{
			Name:   fmt.Sprintf("%s%% ownership AMI", f.Mul(decimal.NewFromInt(100)).String()),
			Policy: policy,
		})
	}
	return variants
}
