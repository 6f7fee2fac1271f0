// Package engine orchestrates VIN decoding, price estimation, contract
// assessment, recall tracking, and alerting.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dealwise/car-price-advisor/internal/metrics"
	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	"github.com/dealwise/car-price-advisor/internal/notify"
	"github.com/dealwise/car-price-advisor/internal/store"
	"github.com/dealwise/car-price-advisor/pkg/fairness"
	"github.com/dealwise/car-price-advisor/pkg/pricing"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

const defaultRecallRefreshBatch = 100

// Engine orchestrates estimation, VIN lookups, contract comparison, and
// recall refreshes over the injected dependencies.
type Engine struct {
	store     store.Store
	nhtsa     nhtsa.Client
	estimator *pricing.Estimator
	notifier  notify.Notifier
	log       *slog.Logger

	recallRefreshBatch int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	n nhtsa.Client,
	est *pricing.Estimator,
	notifier notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:              s,
		nhtsa:              n,
		estimator:          est,
		notifier:           notifier,
		log:                slog.Default(),
		recallRefreshBatch: defaultRecallRefreshBatch,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithRecallRefreshBatch sets how many vehicles a recall refresh cycle covers.
func WithRecallRefreshBatch(n int) EngineOption {
	return func(e *Engine) {
		e.recallRefreshBatch = n
	}
}

// EstimateVehicle produces a price estimate for a manually described vehicle
// and persists it. A storage failure is logged but does not fail the
// estimate; the caller still gets a usable result.
func (eng *Engine) EstimateVehicle(ctx context.Context, d domain.VehicleDescriptor) domain.PriceEstimate {
	est := eng.estimator.Estimate(d)

	metrics.EstimatesTotal.WithLabelValues(est.Source).Inc()
	metrics.EstimateConfidence.Observe(est.Confidence)

	eng.persistEstimate(ctx, &est, nil)

	return est
}

// EstimateByVIN decodes a VIN through NHTSA, persists the decoded vehicle,
// and estimates its price using the decoded identity plus the caller's
// mileage and condition.
func (eng *Engine) EstimateByVIN(
	ctx context.Context,
	vin string,
	mileage *int,
	condition domain.Condition,
) (domain.PriceEstimate, *domain.Vehicle, error) {
	decoded, err := eng.nhtsa.DecodeVIN(ctx, vin)
	if err != nil {
		return domain.PriceEstimate{}, nil, fmt.Errorf("decoding VIN: %w", err)
	}

	vehicle := vehicleFromDecode(decoded)
	if err := eng.store.UpsertVehicle(ctx, vehicle); err != nil {
		// The estimate is still useful without a vehicle record, but the
		// estimate must not reference a vehicle ID that was never stored.
		eng.log.Error("upserting vehicle failed", "vin", decoded.VIN, "error", err)
		vehicle.ID = ""
	}

	est := eng.estimator.Estimate(domain.VehicleDescriptor{
		Make:      decoded.Make,
		Model:     decoded.Model,
		ModelYear: decoded.ModelYear,
		Mileage:   mileage,
		Condition: condition,
		BodyClass: decoded.BodyClass,
	})
	est.VIN = decoded.VIN
	est.VehicleID = vehicle.ID

	metrics.EstimatesTotal.WithLabelValues(est.Source).Inc()
	metrics.EstimateConfidence.Observe(est.Confidence)

	var vehicleID *string
	if vehicle.ID != "" {
		vehicleID = &vehicle.ID
	}
	eng.persistEstimate(ctx, &est, vehicleID)

	return est, vehicle, nil
}

// LookupVehicle returns the stored vehicle for a VIN, decoding and persisting
// it on a cache miss. Stored recalls are returned alongside.
func (eng *Engine) LookupVehicle(ctx context.Context, vin string) (*domain.Vehicle, []domain.Recall, error) {
	vehicle, err := eng.store.GetVehicleByVIN(ctx, vin)
	if err == nil {
		recalls, rerr := eng.store.ListRecallsByVehicle(ctx, vehicle.ID)
		if rerr != nil {
			return nil, nil, fmt.Errorf("listing recalls: %w", rerr)
		}
		return vehicle, recalls, nil
	}

	decoded, derr := eng.nhtsa.DecodeVIN(ctx, vin)
	if derr != nil {
		return nil, nil, fmt.Errorf("decoding VIN: %w", derr)
	}

	vehicle = vehicleFromDecode(decoded)
	if err := eng.store.UpsertVehicle(ctx, vehicle); err != nil {
		return nil, nil, fmt.Errorf("upserting vehicle: %w", err)
	}

	recalls, err := eng.refreshVehicleRecalls(ctx, vehicle)
	if err != nil {
		// Recalls are supplementary; log and return the vehicle anyway.
		eng.log.Warn("fetching recalls failed", "vin", vin, "error", err)
		return vehicle, nil, nil
	}
	return vehicle, recalls, nil
}

// FetchRecalls returns fresh recall campaigns for a VIN, decoding the vehicle
// first if it is not yet stored. The stored recall set is replaced with the
// fetched one.
func (eng *Engine) FetchRecalls(ctx context.Context, vin string) (*domain.Vehicle, []domain.Recall, error) {
	vehicle, err := eng.store.GetVehicleByVIN(ctx, vin)
	if err != nil {
		decoded, derr := eng.nhtsa.DecodeVIN(ctx, vin)
		if derr != nil {
			return nil, nil, fmt.Errorf("decoding VIN: %w", derr)
		}
		vehicle = vehicleFromDecode(decoded)
		if uerr := eng.store.UpsertVehicle(ctx, vehicle); uerr != nil {
			return nil, nil, fmt.Errorf("upserting vehicle: %w", uerr)
		}
	}

	recalls, err := eng.refreshVehicleRecalls(ctx, vehicle)
	if err != nil {
		return nil, nil, err
	}
	return vehicle, recalls, nil
}

// CompareContract assesses a contract's financed amount against the market
// and scores the overall contract fairness. The assessment is persisted and
// an alert is fired for overpriced or good-deal outcomes.
func (eng *Engine) CompareContract(
	ctx context.Context,
	contractID *string,
	terms domain.ContractTerms,
) (domain.DeviationAssessment, domain.FairnessReport) {
	cmp := eng.estimator.CompareToMarket(terms.FinanceAmount, terms.Make, terms.Model, terms.Year)
	report := fairness.Score(terms, &cmp)

	label := "unavailable"
	if cmp.ComparisonAvailable {
		label = string(cmp.Assessment)
	}
	metrics.AssessmentsTotal.WithLabelValues(label).Inc()
	metrics.FairnessScoreDistribution.Observe(float64(report.Score))

	stored := &domain.StoredAssessment{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Assessment: cmp,
	}
	if err := eng.store.SaveAssessment(ctx, stored); err != nil {
		eng.log.Error("saving assessment failed", "error", err)
	}

	if cmp.Assessment == domain.AssessmentOverpriced || cmp.Assessment == domain.AssessmentGoodDeal {
		eng.fireAlert(ctx, terms, &cmp, &report)
	}

	return cmp, report
}

// RefreshRecalls re-fetches recall campaigns for the most recently updated
// vehicles. Per-vehicle failures are counted and logged; the cycle continues.
func (eng *Engine) RefreshRecalls(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecallRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	vehicles, err := eng.store.ListVehicles(ctx, eng.recallRefreshBatch)
	if err != nil {
		return fmt.Errorf("listing vehicles: %w", err)
	}

	var refreshed, failed int

	for i := range vehicles {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := eng.refreshVehicleRecalls(ctx, &vehicles[i]); err != nil {
			metrics.RecallRefreshErrorsTotal.Inc()
			eng.log.Error("refreshing recalls failed",
				"vin", vehicles[i].VIN,
				"error", err,
			)
			failed++
			continue
		}
		refreshed++
	}

	eng.log.Info("recall refresh complete",
		"vehicles", len(vehicles),
		"refreshed", refreshed,
		"failed", failed,
	)

	return nil
}

// refreshVehicleRecalls fetches campaigns from NHTSA and replaces the stored
// set for the vehicle.
func (eng *Engine) refreshVehicleRecalls(ctx context.Context, v *domain.Vehicle) ([]domain.Recall, error) {
	campaigns, err := eng.nhtsa.Recalls(ctx, v.Make, v.Model, v.ModelYear)
	if err != nil {
		return nil, fmt.Errorf("fetching recalls: %w", err)
	}

	recalls := make([]domain.Recall, 0, len(campaigns))
	for _, c := range campaigns {
		recalls = append(recalls, domain.Recall{
			VehicleID:   v.ID,
			Campaign:    c.CampaignNumber,
			Component:   c.Component,
			Summary:     c.Summary,
			Consequence: c.Consequence,
			Remedy:      c.Remedy,
			ReportedAt:  c.ReportReceivedDate,
		})
	}

	if v.ID != "" {
		if err := eng.store.ReplaceRecalls(ctx, v.ID, recalls); err != nil {
			return nil, fmt.Errorf("storing recalls: %w", err)
		}
	}

	return recalls, nil
}

// persistEstimate saves an estimate best-effort. The estimate stays valid
// even when storage is down, so failures only log.
func (eng *Engine) persistEstimate(ctx context.Context, est *domain.PriceEstimate, vehicleID *string) {
	stored := &domain.StoredEstimate{
		ID:        uuid.NewString(),
		VehicleID: vehicleID,
		Source:    est.Source,
		Estimate:  *est,
	}
	if err := eng.store.SaveEstimate(ctx, stored); err != nil {
		eng.log.Error("saving estimate failed", "source", est.Source, "error", err)
	}
}

func (eng *Engine) fireAlert(
	ctx context.Context,
	terms domain.ContractTerms,
	cmp *domain.DeviationAssessment,
	report *domain.FairnessReport,
) {
	alert := &notify.AssessmentAlert{
		VehicleName:      fmt.Sprintf("%d %s %s", terms.Year, terms.Make, terms.Model),
		FinanceAmount:    money(cmp.FinanceAmount),
		MarketPrice:      money(cmp.MarketPrice),
		PriceRange:       cmp.PriceRange,
		DeviationPercent: cmp.DeviationPercent,
		Assessment:       cmp.Assessment,
		Message:          cmp.Message,
		FairnessScore:    report.Score,
		FairnessRating:   report.Rating,
	}

	metrics.AlertsFiredTotal.Inc()
	if err := eng.notifier.SendAlert(ctx, alert); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("sending alert failed", "assessment", cmp.Assessment, "error", err)
	}
}

// vehicleFromDecode maps a vPIC decode onto a persistable vehicle record
// with a fresh ID. The store keeps the existing ID on VIN conflict.
func vehicleFromDecode(d *nhtsa.DecodedVehicle) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        uuid.NewString(),
		VIN:       d.VIN,
		Make:      d.Make,
		Model:     d.Model,
		ModelYear: d.ModelYear,
		Trim:      d.Trim,
		BodyClass: d.BodyClass,
		Engine:    d.Engine,
		FuelType:  d.FuelType,
		DriveType: d.DriveType,
	}
}

// money formats a dollar amount with thousands separators, e.g. "$42,500".
func money(v float64) string {
	n := int(v + 0.5)
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "$" + s
}
