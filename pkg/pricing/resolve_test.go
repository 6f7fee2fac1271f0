package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticTable builds a small fixed table so resolver behavior can be
// pinned without depending on the packaged data file.
func syntheticTable() *ReferenceTable {
	return NewReferenceTable(
		map[string]map[string]map[int]float64{
			"TOYOTA": {
				"Camry":       {2020: 25000, 2022: 26000},
				"Camry Hybrid": {2021: 28000},
				"Corolla":     {2020: 20000},
			},
			"HONDA": {
				"Civic": {2018: 21000, 2022: 23000},
			},
		},
		map[string]float64{
			"sedan":   28000,
			"truck":   38000,
			"default": 30000,
		},
	)
}

func TestResolve_ExactMatch(t *testing.T) {
	t.Parallel()

	res := syntheticTable().Resolve("Toyota", "Camry", 2020, "")
	assert.Equal(t, 25000.0, res.Price)
	assert.Equal(t, SourceExact, res.Source)
	assert.Equal(t, ConfidenceExact, res.Confidence)
}

func TestResolve_NormalizesMakeAndModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		make  string
		model string
	}{
		{"uppercase model", "TOYOTA", "CAMRY"},
		{"lowercase everything", "toyota", "camry"},
		{"surrounding whitespace", "  Toyota  ", "  Camry  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := syntheticTable().Resolve(tt.make, tt.model, 2020, "")
			assert.Equal(t, SourceExact, res.Source)
			assert.Equal(t, 25000.0, res.Price)
		})
	}
}

func TestResolve_NearestYearExtrapolation(t *testing.T) {
	t.Parallel()

	table := syntheticTable()

	// 2023 is nearest to 2022; one year forward adds 2%.
	res := table.Resolve("Toyota", "Camry", 2023, "")
	assert.InDelta(t, 26000*1.02, res.Price, 0.001)
	assert.Equal(t, "msrp_database_extrapolated_from_2022", res.Source)
	assert.Equal(t, ConfidenceExtrapolated, res.Confidence)

	// 2018 is two years before the 2020 entry; the adjustment compounds
	// downward.
	res = table.Resolve("Toyota", "Corolla", 2018, "")
	assert.InDelta(t, 20000/(1.02*1.02), res.Price, 0.001)
	assert.Equal(t, "msrp_database_extrapolated_from_2020", res.Source)
}

func TestResolve_NearestYearTieBreaksLow(t *testing.T) {
	t.Parallel()

	// 2021 sits exactly between the Camry's 2020 and 2022 entries; the
	// lower year must win regardless of map iteration order.
	res := syntheticTable().Resolve("Toyota", "Camry", 2021, "")
	assert.Equal(t, "msrp_database_extrapolated_from_2020", res.Source)
	assert.InDelta(t, 25000*1.02, res.Price, 0.001)
}

func TestResolve_FuzzyModelMatch(t *testing.T) {
	t.Parallel()

	table := syntheticTable()

	// "Camry LE" is not a key but contains "Camry". Models iterate in
	// sorted order, so "Camry" wins over "Camry Hybrid".
	res := table.Resolve("Toyota", "Camry LE", 2020, "")
	assert.Equal(t, 25000.0, res.Price)
	assert.Equal(t, "msrp_database_fuzzy_Camry", res.Source)
	assert.Equal(t, ConfidenceFuzzy, res.Confidence)
}

func TestResolve_FuzzyWithExtrapolationKeepsFuzzyConfidence(t *testing.T) {
	t.Parallel()

	res := syntheticTable().Resolve("Honda", "Civic Sport", 2020, "")
	assert.Equal(t, "msrp_database_fuzzy_Civic_extrapolated", res.Source)
	assert.Equal(t, ConfidenceFuzzy, res.Confidence)
	// Nearest to 2020 is 2018 (tie with 2022 broken low), adjusted +2%/yr.
	assert.InDelta(t, 21000*1.02*1.02, res.Price, 0.001)
}

func TestResolve_CategoryFallback(t *testing.T) {
	t.Parallel()

	table := syntheticTable()

	tests := []struct {
		name      string
		bodyClass string
		want      float64
	}{
		{"keyword substring match", "Crew Cab Truck 4x4", 38000},
		{"case-insensitive keyword", "SEDAN/Saloon", 28000},
		{"no keyword match", "rocket sled", 30000},
		{"empty body class", "", 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := table.Resolve("Yugo", "GV", 2015, tt.bodyClass)
			assert.Equal(t, tt.want, res.Price)
			assert.Equal(t, SourceCategory, res.Source)
			assert.Equal(t, ConfidenceCategory, res.Confidence)
		})
	}
}

func TestResolve_NeverFails(t *testing.T) {
	t.Parallel()

	res := syntheticTable().Resolve("", "", 0, "")
	assert.Positive(t, res.Price)
	assert.Equal(t, SourceCategory, res.Source)
}

func TestDefaultTable_PackagedData(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	require.NotNil(t, table)

	res := table.Resolve("Toyota", "Camry", 2020, "")
	assert.Equal(t, 25250.0, res.Price)
	assert.Equal(t, SourceExact, res.Source)

	// Unknown make falls through to the hatchback category entry.
	res = table.Resolve("Yugo", "GV", 2015, "hatchback")
	assert.Equal(t, 24000.0, res.Price)
	assert.Equal(t, SourceCategory, res.Source)
	assert.Equal(t, ConfidenceCategory, res.Confidence)
}

func TestConfidenceTiersAreOrdered(t *testing.T) {
	t.Parallel()

	assert.Greater(t, ConfidenceExact, ConfidenceExtrapolated)
	assert.Greater(t, ConfidenceExtrapolated, ConfidenceFuzzy)
	assert.Greater(t, ConfidenceFuzzy, ConfidenceCategory)
}
