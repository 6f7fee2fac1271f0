// Package domain defines the core business types for car-price-advisor.
package domain

import (
	"strings"
	"time"
)

// Condition represents the qualitative condition of a vehicle.
type Condition string

// Condition constants.
const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// ParseCondition maps a raw condition string to a Condition.
// Matching is case-insensitive; anything unrecognized is treated as "good",
// which carries a neutral price multiplier.
func ParseCondition(raw string) Condition {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "excellent":
		return ConditionExcellent
	case "fair":
		return ConditionFair
	case "poor":
		return ConditionPoor
	default:
		return ConditionGood
	}
}

// VehicleDescriptor is the input to a price estimation. Mileage and
// BodyClass are optional; Condition defaults to good when empty.
type VehicleDescriptor struct {
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	ModelYear int       `json:"model_year"`
	Mileage   *int      `json:"mileage,omitempty"`
	Condition Condition `json:"condition,omitempty"`
	BodyClass string    `json:"body_class,omitempty"`
}

// PriceEstimate is the result of a price estimation: a low/market/high band
// with confidence, provenance, and human-readable adjustment notes.
type PriceEstimate struct {
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Mileage   *int      `json:"mileage,omitempty"`
	Condition Condition `json:"condition"`

	LowPrice       float64 `json:"low_price"`
	MarketPrice    float64 `json:"market_price"`
	HighPrice      float64 `json:"high_price"`
	ReferencePrice float64 `json:"msrp"`

	Confidence float64  `json:"confidence"`
	Source     string   `json:"source"`
	Notes      []string `json:"notes"`

	// Set only by the VIN-based entry point.
	VIN       string `json:"vin,omitempty"`
	VehicleID string `json:"vehicle_id,omitempty"`
}

// Assessment classifies how a contract's financed amount compares to the
// estimated market price.
type Assessment string

// Assessment constants.
const (
	AssessmentOverpriced    Assessment = "overpriced"
	AssessmentSlightlyAbove Assessment = "slightly_above_market"
	AssessmentFair          Assessment = "fair"
	AssessmentGoodDeal      Assessment = "good_deal"
)

// DeviationAssessment compares a contract's financed amount against the
// estimated market price. When ComparisonAvailable is false the comparison
// could not be made and Reason says why; all other fields are zero.
type DeviationAssessment struct {
	ComparisonAvailable bool   `json:"comparison_available"`
	Reason              string `json:"reason,omitempty"`

	FinanceAmount    float64    `json:"finance_amount,omitempty"`
	MarketPrice      float64    `json:"market_price,omitempty"`
	PriceRange       string     `json:"price_range,omitempty"`
	DeviationPercent float64    `json:"deviation_percent,omitempty"`
	Assessment       Assessment `json:"assessment,omitempty"`
	Confidence       float64    `json:"confidence,omitempty"`
	Message          string     `json:"message,omitempty"`
}

// ContractTerms holds the extracted financing terms consumed by the
// deviation assessor and the fairness scorer. Clause extraction itself
// happens upstream; these arrive here as plain data.
type ContractTerms struct {
	FinanceAmount  any      `json:"finance_amount,omitempty"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	TermMonths     *int     `json:"term_months,omitempty"`
	APRPercent     *float64 `json:"apr_percent,omitempty"`

	EarlyTerminationPenalty string   `json:"early_termination_penalty,omitempty"`
	DocumentationFee        *float64 `json:"documentation_fee,omitempty"`
	ProcessingFee           *float64 `json:"processing_fee,omitempty"`
	RedFlags                []string `json:"red_flags,omitempty"`

	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// Vehicle is a decoded VIN record persisted for reuse.
type Vehicle struct {
	ID        string    `json:"id"                   db:"id"`
	VIN       string    `json:"vin"                  db:"vin"`
	Make      string    `json:"make"                 db:"make"`
	Model     string    `json:"model"                db:"model"`
	ModelYear int       `json:"model_year"           db:"model_year"`
	Trim      string    `json:"trim,omitempty"       db:"trim"`
	BodyClass string    `json:"body_class,omitempty" db:"body_class"`
	Engine    string    `json:"engine,omitempty"     db:"engine"`
	FuelType  string    `json:"fuel_type,omitempty"  db:"fuel_type"`
	DriveType string    `json:"drive_type,omitempty" db:"drive_type"`
	CreatedAt time.Time `json:"created_at"           db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"           db:"updated_at"`
}

// Recall is a safety recall campaign attached to a vehicle.
type Recall struct {
	ID          string    `json:"id"                             db:"id"`
	VehicleID   string    `json:"vehicle_id"                     db:"vehicle_id"`
	Campaign    string    `json:"nhtsa_campaign"                 db:"nhtsa_campaign"`
	Component   string    `json:"component,omitempty"            db:"component"`
	Summary     string    `json:"summary,omitempty"              db:"summary"`
	Consequence string    `json:"consequence,omitempty"          db:"consequence"`
	Remedy      string    `json:"remedy,omitempty"               db:"remedy"`
	ReportedAt  string    `json:"report_received_date,omitempty" db:"report_received_date"`
	CreatedAt   time.Time `json:"created_at"                     db:"created_at"`
}

// StoredEstimate is a persisted price estimate keyed by an opaque ID.
type StoredEstimate struct {
	ID        string        `json:"id"                   db:"id"`
	VehicleID *string       `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Source    string        `json:"source"               db:"source"`
	Estimate  PriceEstimate `json:"estimate"             db:"estimate"`
	CreatedAt time.Time     `json:"created_at"           db:"created_at"`
}

// StoredAssessment is a persisted deviation assessment.
type StoredAssessment struct {
	ID         string              `json:"id"                    db:"id"`
	ContractID *string             `json:"contract_id,omitempty" db:"contract_id"`
	Assessment DeviationAssessment `json:"assessment"            db:"assessment"`
	CreatedAt  time.Time           `json:"created_at"            db:"created_at"`
}

// FairnessReport is the output of the contract fairness scorer.
type FairnessReport struct {
	Score   int      `json:"fairness_score"`
	Rating  string   `json:"rating"`
	Summary string   `json:"summary"`
	Reasons []string `json:"reasons"`
}
