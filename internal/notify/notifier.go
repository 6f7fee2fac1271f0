// Package notify defines the notification interface and implementations
// for contract assessment alerts.
package notify

import (
	"context"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// AssessmentAlert contains the data needed to send a contract alert.
type AssessmentAlert struct {
	VehicleName      string // e.g. "2020 TOYOTA Camry"
	VIN              string
	FinanceAmount    string
	MarketPrice      string
	PriceRange       string
	DeviationPercent float64
	Assessment       domain.Assessment
	Message          string
	FairnessScore    int
	FairnessRating   string
}

// Notifier defines the interface for sending assessment alerts.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AssessmentAlert) error
}
