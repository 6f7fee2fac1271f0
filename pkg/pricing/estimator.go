package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// Price band shape and absolute floors. Low/high spread off the rounded
// market price, floors applied after rounding.
const (
	lowBandRatio  = 0.88
	highBandRatio = 1.12

	marketFloor = 500
	lowFloor    = 300
	highFloor   = 700
)

// Estimator computes fair market value estimates against a reference table.
// The current calendar year is injected at construction so identical inputs
// always produce identical output.
type Estimator struct {
	table       *ReferenceTable
	currentYear int
}

// EstimatorOption configures the Estimator.
type EstimatorOption func(*Estimator)

// WithTable overrides the packaged reference table, e.g. with a synthetic
// one in tests or a customer-supplied data file.
func WithTable(t *ReferenceTable) EstimatorOption {
	return func(e *Estimator) {
		e.table = t
	}
}

// NewEstimator creates an Estimator that computes vehicle age relative to
// currentYear.
func NewEstimator(currentYear int, opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		table:       DefaultTable(),
		currentYear: currentYear,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate produces a low/market/high price band for the described vehicle.
// It never fails: missing or malformed optional fields degrade gracefully
// (category fallback pricing, skipped mileage adjustment, neutral condition).
func (e *Estimator) Estimate(d domain.VehicleDescriptor) domain.PriceEstimate {
	age := e.currentYear - d.ModelYear
	if age < 0 {
		age = 0
	}

	condition := domain.ParseCondition(string(d.Condition))
	notes := make([]string, 0, 4)

	res := e.table.Resolve(d.Make, d.Model, d.ModelYear, d.BodyClass)
	switch {
	case res.Source == SourceCategory:
		notes = append(notes, fmt.Sprintf("MSRP estimated from vehicle category: $%s", dollars(res.Price)))
	case strings.Contains(res.Source, "fuzzy"):
		notes = append(notes, fmt.Sprintf("MSRP from partial model match (%s)", res.Source))
	case strings.Contains(res.Source, "extrapolated"):
		notes = append(notes, fmt.Sprintf("MSRP extrapolated from reference data (%s)", res.Source))
	default:
		notes = append(notes, fmt.Sprintf("MSRP from reference database: $%s", dollars(res.Price)))
	}

	depFactor := DepreciationFactor(age)
	value := res.Price * depFactor
	notes = append(notes, fmt.Sprintf("Depreciation factor: %.2f (age: %d years)", depFactor, age))

	if d.Mileage != nil && *d.Mileage > 0 {
		value *= MileageAdjustment(*d.Mileage, age)
		expected := max(age, 1) * ExpectedMilesPerYear
		if *d.Mileage > expected {
			notes = append(notes, fmt.Sprintf("Mileage above average (%s vs %s expected)",
				commas(*d.Mileage), commas(expected)))
		} else {
			notes = append(notes, fmt.Sprintf("Mileage below average (%s vs %s expected)",
				commas(*d.Mileage), commas(expected)))
		}
	} else {
		notes = append(notes, "No mileage provided; using average estimate")
	}

	condMult := ConditionMultiplier(condition)
	value *= condMult
	if condition != domain.ConditionGood {
		notes = append(notes, fmt.Sprintf("Condition adjustment: %s (%.2fx)", condition, condMult))
	}

	market := roundTo100(value)
	low := roundTo100(market * lowBandRatio)
	high := roundTo100(market * highBandRatio)

	market = math.Max(market, marketFloor)
	low = math.Max(low, lowFloor)
	high = math.Max(high, highFloor)

	return domain.PriceEstimate{
		Make:           d.Make,
		Model:          d.Model,
		Year:           d.ModelYear,
		Mileage:        d.Mileage,
		Condition:      condition,
		LowPrice:       low,
		MarketPrice:    market,
		HighPrice:      high,
		ReferencePrice: math.Round(res.Price),
		Confidence:     res.Confidence,
		Source:         res.Source,
		Notes:          notes,
	}
}

func roundTo100(v float64) float64 {
	return math.Round(v/100) * 100
}

// dollars formats a price with thousands separators and no cents.
func dollars(v float64) string {
	return commas(int(math.Round(v)))
}

func commas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
