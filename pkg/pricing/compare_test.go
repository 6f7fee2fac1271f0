package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// flatEstimator returns an estimator whose market price for "Test Car" at
// the current year is exactly 30000, making deviation math easy to pin.
func flatEstimator() *Estimator {
	table := NewReferenceTable(
		map[string]map[string]map[int]float64{
			"TEST": {"Car": {2024: 30000}},
		},
		map[string]float64{"default": 30000},
	)
	return NewEstimator(2024, WithTable(table))
}

func TestCompareToMarket_Overpriced(t *testing.T) {
	t.Parallel()

	res := flatEstimator().CompareToMarket(40000.0, "Test", "Car", 2024)

	require.True(t, res.ComparisonAvailable)
	assert.Equal(t, 40000.0, res.FinanceAmount)
	assert.Equal(t, 30000.0, res.MarketPrice)
	assert.InDelta(t, 33.3, res.DeviationPercent, 1e-9)
	assert.Equal(t, domain.AssessmentOverpriced, res.Assessment)
	assert.Contains(t, res.Message, "33% above market value")
}

func TestCompareToMarket_ClassificationBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   domain.Assessment
	}{
		{"exactly +15.0 is not overpriced", 34500, domain.AssessmentSlightlyAbove},
		{"+15.1 is overpriced", 34530, domain.AssessmentOverpriced},
		{"exactly +5.0 is fair", 31500, domain.AssessmentFair},
		{"+5.1 is slightly above", 31530, domain.AssessmentSlightlyAbove},
		{"exactly -10.0 is fair", 27000, domain.AssessmentFair},
		{"-10.1 is a good deal", 26970, domain.AssessmentGoodDeal},
		{"dead on market is fair", 30000, domain.AssessmentFair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := flatEstimator().CompareToMarket(tt.amount, "Test", "Car", 2024)
			require.True(t, res.ComparisonAvailable)
			assert.Equal(t, tt.want, res.Assessment)
		})
	}
}

func TestCompareToMarket_AmountCoercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount any
		want   float64
	}{
		{"float64", 31000.0, 31000},
		{"int", 31000, 31000},
		{"json number", json.Number("31000"), 31000},
		{"plain string", "31000", 31000},
		{"formatted string", "$31,000.50", 31000.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := flatEstimator().CompareToMarket(tt.amount, "Test", "Car", 2024)
			require.True(t, res.ComparisonAvailable)
			assert.Equal(t, tt.want, res.FinanceAmount)
		})
	}
}

func TestCompareToMarket_SoftFailures(t *testing.T) {
	t.Parallel()

	e := flatEstimator()

	tests := []struct {
		name   string
		amount any
		make   string
		model  string
		year   int
		reason string
	}{
		{"nil amount", nil, "Test", "Car", 2024, "Insufficient data"},
		{"empty string amount", "  ", "Test", "Car", 2024, "Insufficient data"},
		{"zero amount", 0.0, "Test", "Car", 2024, "Insufficient data"},
		{"missing make", 30000.0, "", "Car", 2024, "Insufficient data"},
		{"missing model", 30000.0, "Test", "", 2024, "Insufficient data"},
		{"missing year", 30000.0, "Test", "Car", 0, "Insufficient data"},
		{"non-numeric amount", "thirty grand", "Test", "Car", 2024, "Invalid finance amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := e.CompareToMarket(tt.amount, tt.make, tt.model, tt.year)
			assert.False(t, res.ComparisonAvailable)
			assert.Contains(t, res.Reason, tt.reason)
			assert.Empty(t, res.Assessment)
		})
	}
}

func TestCompareToMarket_UnknownVehicleStillCompares(t *testing.T) {
	t.Parallel()

	// Resolution never fails, so even an unknown vehicle produces a
	// comparison at category-fallback confidence.
	res := flatEstimator().CompareToMarket(25000.0, "Yugo", "GV", 2015)
	require.True(t, res.ComparisonAvailable)
	assert.Equal(t, ConfidenceCategory, res.Confidence)
}

func TestCompareToMarket_PriceRangeText(t *testing.T) {
	t.Parallel()

	res := flatEstimator().CompareToMarket(30000.0, "Test", "Car", 2024)
	require.True(t, res.ComparisonAvailable)
	// Band off a 30000 market: low 26400, high 33600.
	assert.Equal(t, "$26,400 - $33,600", res.PriceRange)
}
