// Package fairness scores a car financing contract's terms on a 0-100
// scale. The score starts at 100 and each unfavorable term deducts points;
// a market price comparison, when available, feeds in as one more factor.
package fairness

import (
	"fmt"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// APR deduction bands, in percent.
const (
	aprVeryHigh     = 18
	aprHigh         = 12
	aprAboveAverage = 8
)

// Per-factor deductions and bonuses.
const (
	deductAPRVeryHigh     = 30
	deductAPRHigh         = 20
	deductAPRAboveAverage = 10

	deductHeavyEarlyTermination        = 20
	deductUnquantifiedEarlyTermination = 15
	deductEarlyTermination             = 10

	deductVeryHighDocFee = 15
	deductHighDocFee     = 10
	deductHighProcFee    = 8

	deductPerRedFlag = 5
	maxRedFlagDeduct = 15
	bonusNoRedFlags  = 5

	deductOverpriced    = 20
	deductSlightlyAbove = 8
	bonusGoodDeal       = 5

	deductHeavyInterestBurden    = 10
	deductModerateInterestBurden = 5
)

// Fee thresholds in contract currency units.
const (
	heavyEarlyTerminationAmount = 10000
	veryHighDocFee              = 10000
	highDocFee                  = 5000
	highProcFee                 = 5000
)

// Total-interest-to-principal ratio thresholds.
const (
	heavyInterestRatio    = 0.30
	moderateInterestRatio = 0.20
)

// Score evaluates contract terms and an optional market price comparison
// into a FairnessReport. Malformed or missing fields simply skip their
// factor; scoring never fails.
func Score(terms domain.ContractTerms, comparison *domain.DeviationAssessment) domain.FairnessReport {
	score := 100
	var reasons []string

	score, reasons = applyAPR(terms, score, reasons)
	score, reasons = applyEarlyTermination(terms, score, reasons)
	score, reasons = applyFees(terms, score, reasons)
	score, reasons = applyRedFlags(terms, score, reasons)
	score, reasons = applyComparison(comparison, score, reasons)
	score, reasons = applyInterestBurden(terms, score, reasons)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	rating, summary := rate(score)

	return domain.FairnessReport{
		Score:   score,
		Rating:  rating,
		Summary: summary,
		Reasons: reasons,
	}
}

func applyAPR(terms domain.ContractTerms, score int, reasons []string) (int, []string) {
	if terms.APRPercent == nil {
		return score, reasons
	}
	apr := *terms.APRPercent

	switch {
	case apr > aprVeryHigh:
		return score - deductAPRVeryHigh,
			append(reasons, fmt.Sprintf("Very high interest rate (%.1f%%)", apr))
	case apr > aprHigh:
		return score - deductAPRHigh,
			append(reasons, fmt.Sprintf("High interest rate (%.1f%%)", apr))
	case apr > aprAboveAverage:
		return score - deductAPRAboveAverage,
			append(reasons, fmt.Sprintf("Above-average interest rate (%.1f%%)", apr))
	}
	return score, reasons
}

func applyEarlyTermination(terms domain.ContractTerms, score int, reasons []string) (int, []string) {
	penalty := terms.EarlyTerminationPenalty
	if penalty == "" || penalty == "No penalty" || penalty == "Not specified" {
		return score, reasons
	}

	if amount, ok := parseNumber(penalty); ok {
		if amount > heavyEarlyTerminationAmount {
			return score - deductHeavyEarlyTermination,
				append(reasons, fmt.Sprintf("Heavy early termination penalty (%.0f)", amount))
		}
		return score - deductEarlyTermination,
			append(reasons, "Early termination penalty present")
	}

	// Non-numeric penalty text still counts against the contract.
	return score - deductUnquantifiedEarlyTermination,
		append(reasons, "Early termination penalty present")
}

func applyFees(terms domain.ContractTerms, score int, reasons []string) (int, []string) {
	if terms.DocumentationFee != nil {
		switch fee := *terms.DocumentationFee; {
		case fee > veryHighDocFee:
			score -= deductVeryHighDocFee
			reasons = append(reasons, fmt.Sprintf("Very high documentation fee (%.0f)", fee))
		case fee > highDocFee:
			score -= deductHighDocFee
			reasons = append(reasons, fmt.Sprintf("High documentation fee (%.0f)", fee))
		}
	}

	if terms.ProcessingFee != nil && *terms.ProcessingFee > highProcFee {
		score -= deductHighProcFee
		reasons = append(reasons, fmt.Sprintf("High processing fee (%.0f)", *terms.ProcessingFee))
	}

	return score, reasons
}

func applyRedFlags(terms domain.ContractTerms, score int, reasons []string) (int, []string) {
	if len(terms.RedFlags) == 0 {
		return score + bonusNoRedFlags,
			append(reasons, "No red flags; positive indicator")
	}

	deduct := len(terms.RedFlags) * deductPerRedFlag
	if deduct > maxRedFlagDeduct {
		deduct = maxRedFlagDeduct
	}
	return score - deduct,
		append(reasons, fmt.Sprintf("%d red flag(s) detected", len(terms.RedFlags)))
}

func applyComparison(c *domain.DeviationAssessment, score int, reasons []string) (int, []string) {
	if c == nil || !c.ComparisonAvailable {
		return score, reasons
	}

	switch c.Assessment {
	case domain.AssessmentOverpriced:
		return score - deductOverpriced,
			append(reasons, fmt.Sprintf("Vehicle appears overpriced by %.0f%%", c.DeviationPercent))
	case domain.AssessmentSlightlyAbove:
		return score - deductSlightlyAbove,
			append(reasons, fmt.Sprintf("Price slightly above market by %.0f%%", c.DeviationPercent))
	case domain.AssessmentGoodDeal:
		return score + bonusGoodDeal,
			append(reasons, fmt.Sprintf("Price is %.0f%% below market; good deal", -c.DeviationPercent))
	}
	return score, reasons
}

func applyInterestBurden(terms domain.ContractTerms, score int, reasons []string) (int, []string) {
	if terms.MonthlyPayment == nil || terms.TermMonths == nil || *terms.TermMonths <= 0 {
		return score, reasons
	}

	finance, ok := parseNumber(terms.FinanceAmount)
	if !ok || finance <= 0 {
		return score, reasons
	}

	totalPaid := *terms.MonthlyPayment * float64(*terms.TermMonths)
	ratio := (totalPaid - finance) / finance

	switch {
	case ratio > heavyInterestRatio:
		return score - deductHeavyInterestBurden,
			append(reasons, fmt.Sprintf("Total interest is %.0f%% of principal", ratio*100))
	case ratio > moderateInterestRatio:
		return score - deductModerateInterestBurden,
			append(reasons, fmt.Sprintf("Moderate total interest (%.0f%% of principal)", ratio*100))
	}
	return score, reasons
}

// rate maps a final score to its rating band and summary line.
func rate(score int) (string, string) {
	switch {
	case score >= 85:
		return "Excellent", "This contract has fair terms and competitive pricing."
	case score >= 70:
		return "Good", "This contract is reasonable with minor areas for negotiation."
	case score >= 55:
		return "Fair", "This contract has some unfavorable terms. Consider negotiating."
	case score >= 40:
		return "Below Average", "Several concerning terms found. Strongly recommend negotiation."
	default:
		return "Poor", "This contract has multiple unfair terms. Seek better alternatives."
	}
}
