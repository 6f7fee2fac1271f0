package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dealwise/car-price-advisor/internal/api/handlers"
	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	"github.com/dealwise/car-price-advisor/internal/store"
	storeMocks "github.com/dealwise/car-price-advisor/internal/store/mocks"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// stubEstimateService implements handlers.EstimateService for testing.
type stubEstimateService struct {
	est     domain.PriceEstimate
	vehicle *domain.Vehicle
	err     error

	gotDescriptor domain.VehicleDescriptor
	gotVIN        string
	gotMileage    *int
	gotCondition  domain.Condition
}

func (s *stubEstimateService) EstimateVehicle(_ context.Context, d domain.VehicleDescriptor) domain.PriceEstimate {
	s.gotDescriptor = d
	return s.est
}

func (s *stubEstimateService) EstimateByVIN(_ context.Context, vin string, mileage *int, condition domain.Condition) (domain.PriceEstimate, *domain.Vehicle, error) {
	s.gotVIN = vin
	s.gotMileage = mileage
	s.gotCondition = condition
	return s.est, s.vehicle, s.err
}

func testEstimate() domain.PriceEstimate {
	return domain.PriceEstimate{
		Make:        "Toyota",
		Model:       "Camry",
		Year:        2020,
		Condition:   domain.ConditionGood,
		LowPrice:    14500,
		MarketPrice: 16500,
		HighPrice:   18500,
		Confidence:  0.80,
		Source:      "msrp_database",
	}
}

func TestCreateEstimate_Success(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{est: testEstimate()}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Post("/api/v1/estimates", map[string]any{
		"make":       "Toyota",
		"model":      "Camry",
		"model_year": 2020,
		"mileage":    45000,
		"condition":  "fair",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"market_price":16500`)

	assert.Equal(t, "Toyota", svc.gotDescriptor.Make)
	require.NotNil(t, svc.gotDescriptor.Mileage)
	assert.Equal(t, 45000, *svc.gotDescriptor.Mileage)
	assert.Equal(t, domain.ConditionFair, svc.gotDescriptor.Condition)
}

func TestCreateEstimate_MissingMake(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{est: testEstimate()}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Post("/api/v1/estimates", map[string]any{
		"model":      "Camry",
		"model_year": 2020,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestEstimateByVIN_Success(t *testing.T) {
	t.Parallel()

	est := testEstimate()
	est.VIN = "4T1C11AK5LU123456"
	svc := &stubEstimateService{est: est, vehicle: &domain.Vehicle{ID: "veh-1"}}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/vin/4T1C11AK5LU123456?mileage=45000&condition=fair")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "4T1C11AK5LU123456")

	assert.Equal(t, "4T1C11AK5LU123456", svc.gotVIN)
	require.NotNil(t, svc.gotMileage)
	assert.Equal(t, 45000, *svc.gotMileage)
	assert.Equal(t, domain.ConditionFair, svc.gotCondition)
}

func TestEstimateByVIN_NoMileage(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{est: testEstimate()}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/vin/4T1C11AK5LU123456")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Nil(t, svc.gotMileage)
}

func TestEstimateByVIN_DecodeIncomplete(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{err: nhtsa.ErrDecodeIncomplete}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/vin/11111111111111111")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestEstimateByVIN_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{err: assert.AnError}
	ms := storeMocks.NewMockStore(t)
	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/vin/4T1C11AK5LU123456")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestListEstimates_Filters(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{}
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListEstimates(mock.Anything, mock.MatchedBy(func(q *store.EstimateQuery) bool {
			return q.VIN != nil && *q.VIN == "4T1C11AK5LU123456" &&
				q.Source != nil && *q.Source == "msrp_database" &&
				q.Limit == 10 && q.Offset == 20
		})).
		Return([]domain.StoredEstimate{
			{ID: "e1", Source: "msrp_database", Estimate: testEstimate()},
		}, 1, nil).
		Once()

	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates?vin=4T1C11AK5LU123456&source=msrp_database&limit=10&offset=20")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":1`)
	assert.Contains(t, resp.Body.String(), `"limit":10`)
}

func TestListEstimates_StoreError(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{}
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListEstimates(mock.Anything, mock.Anything).
		Return(nil, 0, assert.AnError).
		Once()

	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetEstimate_Success(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{}
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetEstimate(mock.Anything, "e1").
		Return(&domain.StoredEstimate{ID: "e1", Source: "msrp_database", Estimate: testEstimate()}, nil).
		Once()

	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/e1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "msrp_database")
}

func TestGetEstimate_NotFound(t *testing.T) {
	t.Parallel()

	svc := &stubEstimateService{}
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetEstimate(mock.Anything, "missing").
		Return(nil, assert.AnError).
		Once()

	h := handlers.NewEstimatesHandler(svc, ms)
	_, api := humatest.New(t)
	handlers.RegisterEstimateRoutes(api, h)

	resp := api.Get("/api/v1/estimates/missing")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
