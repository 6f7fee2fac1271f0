// Package store defines the datastore abstraction for car-price-advisor.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// EstimateQuery defines optional filters for estimate listings.
type EstimateQuery struct {
	VIN    *string
	Source *string
	Limit  int // default 50
	Offset int
}

// Store defines all data access operations for car-price-advisor.
type Store interface {
	// Vehicles
	UpsertVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicleByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, limit int) ([]domain.Vehicle, error)

	// Recalls
	ReplaceRecalls(ctx context.Context, vehicleID string, recalls []domain.Recall) error
	ListRecallsByVehicle(ctx context.Context, vehicleID string) ([]domain.Recall, error)

	// Estimates
	SaveEstimate(ctx context.Context, e *domain.StoredEstimate) error
	GetEstimate(ctx context.Context, id string) (*domain.StoredEstimate, error)
	ListEstimates(ctx context.Context, opts *EstimateQuery) ([]domain.StoredEstimate, int, error)

	// Assessments
	SaveAssessment(ctx context.Context, a *domain.StoredAssessment) error
	ListAssessments(ctx context.Context, limit int) ([]domain.StoredAssessment, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
