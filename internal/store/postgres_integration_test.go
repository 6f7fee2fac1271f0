//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dealwise/car-price-advisor/internal/store"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cpa_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testVehicle(vin string) *domain.Vehicle {
	return &domain.Vehicle{
		VIN:       vin,
		Make:      "TOYOTA",
		Model:     "Camry",
		ModelYear: 2020,
		Trim:      "LE",
		BodyClass: "Sedan/Saloon",
		Engine:    "A25A-FKS",
		FuelType:  "Gasoline",
		DriveType: "FWD",
	}
}

func testEstimate(vin string) *domain.StoredEstimate {
	return &domain.StoredEstimate{
		Source: "msrp_database",
		Estimate: domain.PriceEstimate{
			LowPrice:       12200,
			MarketPrice:    13900,
			HighPrice:      15600,
			ReferencePrice: 25250,
			Confidence:     0.80,
			Source:         "msrp_database",
			VIN:            vin,
		},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertVehicle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new vehicle", func(t *testing.T) {
		v := testVehicle("4T1C11AK5LU000001")
		require.NoError(t, s.UpsertVehicle(ctx, v))
		assert.NotEmpty(t, v.ID)
		assert.False(t, v.CreatedAt.IsZero())
		assert.False(t, v.UpdatedAt.IsZero())
	})

	t.Run("upsert with changed trim keeps identity", func(t *testing.T) {
		v := testVehicle("4T1C11AK5LU000002")
		require.NoError(t, s.UpsertVehicle(ctx, v))
		firstID := v.ID
		created := v.CreatedAt

		v2 := testVehicle("4T1C11AK5LU000002")
		v2.Trim = "XSE"
		require.NoError(t, s.UpsertVehicle(ctx, v2))

		assert.Equal(t, firstID, v2.ID)
		assert.Equal(t, created, v2.CreatedAt)

		got, err := s.GetVehicleByVIN(ctx, "4T1C11AK5LU000002")
		require.NoError(t, err)
		assert.Equal(t, "XSE", got.Trim)
	})
}

func TestPostgresStore_GetVehicleByVIN(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		v := testVehicle("4T1C11AK5LU000003")
		require.NoError(t, s.UpsertVehicle(ctx, v))

		got, err := s.GetVehicleByVIN(ctx, "4T1C11AK5LU000003")
		require.NoError(t, err)
		assert.Equal(t, v.ID, got.ID)
		assert.Equal(t, "Camry", got.Model)
		assert.Equal(t, 2020, got.ModelYear)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetVehicleByVIN(ctx, "NOPE")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestPostgresStore_ReplaceRecalls(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	v := testVehicle("4T1C11AK5LU000004")
	require.NoError(t, s.UpsertVehicle(ctx, v))

	first := []domain.Recall{
		{Campaign: "20V123000", Component: "FUEL SYSTEM", Summary: "Fuel pump may fail."},
		{Campaign: "20V456000", Component: "AIR BAGS"},
	}
	require.NoError(t, s.ReplaceRecalls(ctx, v.ID, first))

	got, err := s.ListRecallsByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, v.ID, got[0].VehicleID)

	// Replacing swaps the whole set.
	second := []domain.Recall{
		{Campaign: "21V789000", Component: "ELECTRICAL SYSTEM"},
	}
	require.NoError(t, s.ReplaceRecalls(ctx, v.ID, second))

	got, err = s.ListRecallsByVehicle(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "21V789000", got[0].Campaign)

	// Replacing with nil clears.
	require.NoError(t, s.ReplaceRecalls(ctx, v.ID, nil))
	got, err = s.ListRecallsByVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresStore_Estimates(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	v := testVehicle("4T1C11AK5LU000005")
	require.NoError(t, s.UpsertVehicle(ctx, v))

	e := testEstimate("4T1C11AK5LU000005")
	e.VehicleID = &v.ID
	require.NoError(t, s.SaveEstimate(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	t.Run("round trip", func(t *testing.T) {
		got, err := s.GetEstimate(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		require.NotNil(t, got.VehicleID)
		assert.Equal(t, v.ID, *got.VehicleID)
		assert.InDelta(t, 13900, got.Estimate.MarketPrice, 0.001)
		assert.Equal(t, "msrp_database", got.Estimate.Source)
	})

	t.Run("list filtered by vin", func(t *testing.T) {
		other := testEstimate("")
		other.Source = "category_estimate"
		other.Estimate.Source = "category_estimate"
		require.NoError(t, s.SaveEstimate(ctx, other))

		vin := "4T1C11AK5LU000005"
		got, total, err := s.ListEstimates(ctx, &store.EstimateQuery{VIN: &vin})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, e.ID, got[0].ID)
	})

	t.Run("list filtered by source", func(t *testing.T) {
		src := "category_estimate"
		got, total, err := s.ListEstimates(ctx, &store.EstimateQuery{Source: &src})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "category_estimate", got[0].Source)
	})

	t.Run("get not found", func(t *testing.T) {
		_, err := s.GetEstimate(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestPostgresStore_Assessments(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	a := &domain.StoredAssessment{
		Assessment: domain.DeviationAssessment{
			ComparisonAvailable: true,
			FinanceAmount:       40000,
			MarketPrice:         30000,
			DeviationPercent:    33.3,
			Assessment:          domain.AssessmentOverpriced,
			Confidence:          0.80,
		},
	}
	require.NoError(t, s.SaveAssessment(ctx, a))
	assert.NotEmpty(t, a.ID)

	got, err := s.ListAssessments(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, domain.AssessmentOverpriced, got[0].Assessment.Assessment)
	assert.InDelta(t, 33.3, got[0].Assessment.DeviationPercent, 0.001)
}
