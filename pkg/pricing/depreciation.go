package pricing

// annualDepreciation holds the retention-loss rate for each of the first ten
// years of a vehicle's life. Beyond year ten a flat rate applies.
var annualDepreciation = [...]float64{
	0.20, // year 1
	0.15, // year 2
	0.10,
	0.10,
	0.10,
	0.07,
	0.07,
	0.05,
	0.05,
	0.05, // year 10
}

const (
	depreciationBeyondYear10 = 0.03
	// A vehicle is never modeled below 5% of its reference price through
	// age alone.
	minRetention = 0.05
)

// DepreciationFactor converts a vehicle age in whole years into the fraction
// of the reference price retained. Age zero or negative (a "future" model
// year) retains the full price. The factor is a multiplicative chain over
// the annual schedule, floored at minRetention.
func DepreciationFactor(age int) float64 {
	if age <= 0 {
		return 1.0
	}

	remaining := 1.0
	for i := 0; i < age && i < len(annualDepreciation); i++ {
		remaining *= 1.0 - annualDepreciation[i]
	}

	for extra := age - len(annualDepreciation); extra > 0; extra-- {
		remaining *= 1.0 - depreciationBeyondYear10
	}

	if remaining < minRetention {
		return minRetention
	}
	return remaining
}
