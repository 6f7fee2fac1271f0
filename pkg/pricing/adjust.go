package pricing

import (
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

const (
	// ExpectedMilesPerYear is the average-use baseline for the mileage
	// adjustment.
	ExpectedMilesPerYear = 12000

	// Every 10,000 miles of deviation from expected moves the value 3%,
	// clamped to ±15% total.
	mileageAdjustPer10k = 0.03
	mileageAdjustCap    = 0.15
)

// MileageAdjustment returns a price multiplier based on how far actual
// mileage deviates from the expected average for the vehicle's age. Mileage
// below expectation raises the multiplier above 1, mileage above lowers it,
// never by more than ±15%.
func MileageAdjustment(mileage, age int) float64 {
	if age <= 0 {
		age = 1
	}

	expected := age * ExpectedMilesPerYear
	fraction := -float64(mileage-expected) / 10000 * mileageAdjustPer10k

	if fraction > mileageAdjustCap {
		fraction = mileageAdjustCap
	}
	if fraction < -mileageAdjustCap {
		fraction = -mileageAdjustCap
	}

	return 1.0 + fraction
}

var conditionMultipliers = map[domain.Condition]float64{
	domain.ConditionExcellent: 1.10,
	domain.ConditionGood:      1.00,
	domain.ConditionFair:      0.88,
	domain.ConditionPoor:      0.72,
}

// ConditionMultiplier returns the price multiplier for a condition tier.
// Unrecognized conditions are treated as good.
func ConditionMultiplier(c domain.Condition) float64 {
	if m, ok := conditionMultipliers[domain.ParseCondition(string(c))]; ok {
		return m
	}
	return 1.00
}
