package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertVehicle inserts or updates a vehicle by VIN, filling in the
// generated ID and timestamps on the passed struct.
func (s *PostgresStore) UpsertVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := pgx.NamedArgs{
		"vin":        v.VIN,
		"make":       v.Make,
		"model":      v.Model,
		"model_year": v.ModelYear,
		"trim":       v.Trim,
		"body_class": v.BodyClass,
		"engine":     v.Engine,
		"fuel_type":  v.FuelType,
		"drive_type": v.DriveType,
	}

	return s.pool.QueryRow(ctx, queryUpsertVehicle, args).Scan(
		&v.ID, &v.CreatedAt, &v.UpdatedAt,
	)
}

// GetVehicleByVIN retrieves a vehicle by VIN.
// Returns pgx.ErrNoRows when the VIN is unknown.
func (s *PostgresStore) GetVehicleByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := scanVehicle(s.pool.QueryRow(ctx, queryGetVehicleByVIN, vin), v)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListVehicles returns recently updated vehicles.
func (s *PostgresStore) ListVehicles(ctx context.Context, limit int) ([]domain.Vehicle, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListVehicles, limit)
	if err != nil {
		return nil, fmt.Errorf("querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := scanVehicle(rows, &v); err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}

	return vehicles, nil
}

// ReplaceRecalls atomically swaps the stored recall set for a vehicle.
// NHTSA returns the full campaign list on every fetch, so replace-all is
// simpler and safer than diffing.
func (s *PostgresStore) ReplaceRecalls(
	ctx context.Context,
	vehicleID string,
	recalls []domain.Recall,
) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, queryDeleteRecallsByVehicle, vehicleID); err != nil {
		return fmt.Errorf("deleting recalls: %w", err)
	}

	for _, r := range recalls {
		args := pgx.NamedArgs{
			"vehicle_id":           vehicleID,
			"nhtsa_campaign":       r.Campaign,
			"component":            r.Component,
			"summary":              r.Summary,
			"consequence":          r.Consequence,
			"remedy":               r.Remedy,
			"report_received_date": r.ReportedAt,
		}
		if _, err := tx.Exec(ctx, queryInsertRecall, args); err != nil {
			return fmt.Errorf("inserting recall %s: %w", r.Campaign, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing recalls: %w", err)
	}
	return nil
}

// ListRecallsByVehicle returns all stored recalls for a vehicle.
func (s *PostgresStore) ListRecallsByVehicle(
	ctx context.Context,
	vehicleID string,
) ([]domain.Recall, error) {
	rows, err := s.pool.Query(ctx, queryListRecallsByVehicle, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("querying recalls: %w", err)
	}
	defer rows.Close()

	var recalls []domain.Recall
	for rows.Next() {
		var r domain.Recall
		err := rows.Scan(
			&r.ID, &r.VehicleID, &r.Campaign,
			&r.Component, &r.Summary, &r.Consequence,
			&r.Remedy, &r.ReportedAt, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recall: %w", err)
		}
		recalls = append(recalls, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recalls: %w", err)
	}

	return recalls, nil
}

// SaveEstimate persists a computed estimate, filling in the generated ID
// and timestamp. The estimate payload is stored as JSONB; the VIN column
// is denormalized from the payload for filtering.
func (s *PostgresStore) SaveEstimate(ctx context.Context, e *domain.StoredEstimate) error {
	payload, err := json.Marshal(e.Estimate)
	if err != nil {
		return fmt.Errorf("marshaling estimate: %w", err)
	}

	var vin *string
	if e.Estimate.VIN != "" {
		vin = &e.Estimate.VIN
	}

	args := pgx.NamedArgs{
		"vehicle_id": e.VehicleID,
		"vin":        vin,
		"source":     e.Source,
		"estimate":   payload,
	}

	return s.pool.QueryRow(ctx, queryInsertEstimate, args).Scan(&e.ID, &e.CreatedAt)
}

// GetEstimate retrieves a stored estimate by ID.
func (s *PostgresStore) GetEstimate(ctx context.Context, id string) (*domain.StoredEstimate, error) {
	e := &domain.StoredEstimate{}
	if err := scanEstimate(s.pool.QueryRow(ctx, queryGetEstimate, id), e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEstimates queries stored estimates with optional filters, returning
// results and total count.
func (s *PostgresStore) ListEstimates(
	ctx context.Context,
	opts *EstimateQuery,
) ([]domain.StoredEstimate, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting estimates: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying estimates: %w", err)
	}
	defer rows.Close()

	var estimates []domain.StoredEstimate
	for rows.Next() {
		var e domain.StoredEstimate
		if err := scanEstimate(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("scanning estimate: %w", err)
		}
		estimates = append(estimates, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating estimates: %w", err)
	}

	return estimates, total, nil
}

// SaveAssessment persists a deviation assessment, filling in the generated
// ID and timestamp.
func (s *PostgresStore) SaveAssessment(ctx context.Context, a *domain.StoredAssessment) error {
	payload, err := json.Marshal(a.Assessment)
	if err != nil {
		return fmt.Errorf("marshaling assessment: %w", err)
	}

	args := pgx.NamedArgs{
		"contract_id": a.ContractID,
		"assessment":  payload,
	}

	return s.pool.QueryRow(ctx, queryInsertAssessment, args).Scan(&a.ID, &a.CreatedAt)
}

// ListAssessments returns the most recent stored assessments.
func (s *PostgresStore) ListAssessments(
	ctx context.Context,
	limit int,
) ([]domain.StoredAssessment, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListAssessments, limit)
	if err != nil {
		return nil, fmt.Errorf("querying assessments: %w", err)
	}
	defer rows.Close()

	var assessments []domain.StoredAssessment
	for rows.Next() {
		var a domain.StoredAssessment
		var payload []byte
		if err := rows.Scan(&a.ID, &a.ContractID, &payload, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		if err := json.Unmarshal(payload, &a.Assessment); err != nil {
			return nil, fmt.Errorf("unmarshaling assessment: %w", err)
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}

	return assessments, nil
}

// row abstracts pgx.Row and pgx.Rows for shared scan helpers.
type row interface {
	Scan(dest ...any) error
}

func scanVehicle(r row, v *domain.Vehicle) error {
	return r.Scan(
		&v.ID, &v.VIN, &v.Make, &v.Model, &v.ModelYear,
		&v.Trim, &v.BodyClass, &v.Engine,
		&v.FuelType, &v.DriveType,
		&v.CreatedAt, &v.UpdatedAt,
	)
}

func scanEstimate(r row, e *domain.StoredEstimate) error {
	var payload []byte
	if err := r.Scan(&e.ID, &e.VehicleID, &e.Source, &payload, &e.CreatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(payload, &e.Estimate); err != nil {
		return fmt.Errorf("unmarshaling estimate: %w", err)
	}
	return nil
}
