package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// Deviation classification thresholds, in percent. Evaluated in order;
// first match wins. Boundaries are exclusive: exactly +15% is not
// overpriced, exactly -10% is not a good deal.
const (
	overpricedAbovePct = 15
	slightlyAbovePct   = 5
	goodDealBelowPct   = -10
)

// CompareToMarket compares a contract's financed amount against the
// estimated market price for make/model/year. It fails soft: when the
// amount is missing or malformed, or the vehicle is not identifiable, the
// result carries ComparisonAvailable=false and a reason instead of an error.
func (e *Estimator) CompareToMarket(financeAmount any, vehicleMake, model string, year int) domain.DeviationAssessment {
	if financeAmount == nil || vehicleMake == "" || model == "" || year == 0 {
		return unavailable("Insufficient data for price comparison")
	}
	if s, isStr := financeAmount.(string); isStr && strings.TrimSpace(s) == "" {
		return unavailable("Insufficient data for price comparison")
	}

	amount, ok := parseAmount(financeAmount)
	if !ok {
		return unavailable("Invalid finance amount")
	}
	if amount == 0 {
		return unavailable("Insufficient data for price comparison")
	}

	est := e.Estimate(domain.VehicleDescriptor{
		Make:      vehicleMake,
		Model:     model,
		ModelYear: year,
	})

	// Rounded to one decimal before classification so the reported percent
	// and the classification can never disagree at a threshold boundary.
	deviation := math.Round((amount-est.MarketPrice)/est.MarketPrice*1000) / 10

	result := domain.DeviationAssessment{
		ComparisonAvailable: true,
		FinanceAmount:       amount,
		MarketPrice:         est.MarketPrice,
		PriceRange:          fmt.Sprintf("$%s - $%s", dollars(est.LowPrice), dollars(est.HighPrice)),
		DeviationPercent:    deviation,
		Confidence:          est.Confidence,
	}

	switch {
	case deviation > overpricedAbovePct:
		result.Assessment = domain.AssessmentOverpriced
		result.Message = fmt.Sprintf("Contract price is %.0f%% above market value", deviation)
	case deviation > slightlyAbovePct:
		result.Assessment = domain.AssessmentSlightlyAbove
		result.Message = fmt.Sprintf("Contract price is %.0f%% above market", deviation)
	case deviation < goodDealBelowPct:
		result.Assessment = domain.AssessmentGoodDeal
		result.Message = fmt.Sprintf("Contract price is %.0f%% below market", -deviation)
	default:
		result.Assessment = domain.AssessmentFair
		result.Message = "Contract price is within fair market range"
	}

	return result
}

func unavailable(reason string) domain.DeviationAssessment {
	return domain.DeviationAssessment{
		ComparisonAvailable: false,
		Reason:              reason,
	}
}

// parseAmount coerces the loosely-typed finance amount (extraction output
// may carry it as a number or a formatted string) into a float64.
func parseAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		cleaned := strings.TrimSpace(n)
		cleaned = strings.TrimPrefix(cleaned, "$")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
