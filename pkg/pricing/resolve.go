package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Provenance tags for resolved reference prices. The vocabulary is part of
// the contract: confidence tiers and downstream consumers key off it.
const (
	SourceExact    = "msrp_database"
	SourceCategory = "category_estimate"

	sourceExtrapolatedFmt      = "msrp_database_extrapolated_from_%d"
	sourceFuzzyFmt             = "msrp_database_fuzzy_%s"
	sourceFuzzyExtrapolatedFmt = "msrp_database_fuzzy_%s_extrapolated"
)

// Confidence tiers by resolution provenance.
const (
	ConfidenceExact        = 0.80
	ConfidenceExtrapolated = 0.65
	ConfidenceFuzzy        = 0.55
	ConfidenceCategory     = 0.35
)

// Annual inflation adjustment applied per year of distance when
// extrapolating a reference price to a year the table does not cover.
const inflationPerYear = 0.02

// Resolution is the result of a reference price lookup. Resolution never
// fails; the worst case degrades to the category fallback tier.
type Resolution struct {
	Price      float64
	Source     string
	Confidence float64
}

// Resolve finds the best-matching reference price for make/model/year,
// in strict precedence order: exact hit, nearest-year extrapolation, fuzzy
// model-name match, then category fallback keyed on bodyClass.
func (t *ReferenceTable) Resolve(vehicleMake, model string, year int, bodyClass string) Resolution {
	makeKey := NormalizeMake(vehicleMake)
	modelKey := NormalizeModel(model)

	if years := t.yearsFor(makeKey, modelKey); len(years) > 0 {
		price, source := resolveYear(years, year, "")
		conf := ConfidenceExact
		if source != SourceExact {
			conf = ConfidenceExtrapolated
		}
		return Resolution{Price: price, Source: source, Confidence: conf}
	}

	if price, source, ok := t.resolveFuzzy(makeKey, modelKey, year); ok {
		return Resolution{Price: price, Source: source, Confidence: ConfidenceFuzzy}
	}

	return Resolution{
		Price:      t.CategoryPrice(bodyClass),
		Source:     SourceCategory,
		Confidence: ConfidenceCategory,
	}
}

// resolveYear picks the exact year if present, otherwise the nearest covered
// year (ties → lowest year) with a compound ±2%/year inflation adjustment
// toward the requested year. fuzzyModel, when non-empty, switches the
// provenance vocabulary to the fuzzy variants.
func resolveYear(years map[int]float64, year int, fuzzyModel string) (float64, string) {
	if price, ok := years[year]; ok {
		if fuzzyModel != "" {
			return price, fmt.Sprintf(sourceFuzzyFmt, fuzzyModel)
		}
		return price, SourceExact
	}

	nearest := nearestYear(years, year)
	adjusted := years[nearest] * math.Pow(1+inflationPerYear, float64(year-nearest))
	if fuzzyModel != "" {
		return adjusted, fmt.Sprintf(sourceFuzzyExtrapolatedFmt, fuzzyModel)
	}
	return adjusted, fmt.Sprintf(sourceExtrapolatedFmt, nearest)
}

// nearestYear returns the covered year with minimum absolute distance from
// the requested year. Ties break toward the lower year so iteration order
// over the map never leaks into the result.
func nearestYear(years map[int]float64, year int) int {
	best := 0
	bestDist := math.MaxInt
	for y := range years {
		dist := y - year
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist || (dist == bestDist && y < best) {
			best = y
			bestDist = dist
		}
	}
	return best
}

// resolveFuzzy scans the make's models in sorted order and takes the first
// whose canonical name contains the requested model or vice versa,
// case-insensitively.
func (t *ReferenceTable) resolveFuzzy(makeKey, modelKey string, year int) (float64, string, bool) {
	wanted := strings.ToLower(modelKey)
	if wanted == "" {
		return 0, "", false
	}

	for _, canonical := range t.modelOrder[makeKey] {
		have := strings.ToLower(canonical)
		if strings.Contains(have, wanted) || strings.Contains(wanted, have) {
			price, source := resolveYear(t.makes[makeKey][canonical], year, canonical)
			return price, source, true
		}
	}
	return 0, "", false
}
