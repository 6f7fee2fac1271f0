package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealwise/car-price-advisor/internal/api/handlers"
	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// stubVehicleService implements handlers.VehicleService for testing.
type stubVehicleService struct {
	vehicle *domain.Vehicle
	recalls []domain.Recall
	err     error

	gotVIN string
}

func (s *stubVehicleService) LookupVehicle(_ context.Context, vin string) (*domain.Vehicle, []domain.Recall, error) {
	s.gotVIN = vin
	return s.vehicle, s.recalls, s.err
}

func (s *stubVehicleService) FetchRecalls(_ context.Context, vin string) (*domain.Vehicle, []domain.Recall, error) {
	s.gotVIN = vin
	return s.vehicle, s.recalls, s.err
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:        "veh-1",
		VIN:       "4T1C11AK5LU123456",
		Make:      "TOYOTA",
		Model:     "Camry",
		ModelYear: 2020,
		BodyClass: "Sedan/Saloon",
	}
}

func TestGetVehicle_Success(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{
		vehicle: testVehicle(),
		recalls: []domain.Recall{{VehicleID: "veh-1", Campaign: "20V123000"}},
	}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"model":"Camry"`)
	assert.Contains(t, resp.Body.String(), "20V123000")
	assert.Equal(t, "4T1C11AK5LU123456", svc.gotVIN)
}

func TestGetVehicle_NoRecalls(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{vehicle: testVehicle()}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"recalls":[]`)
}

func TestGetVehicle_DecodeIncomplete(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{err: nhtsa.ErrDecodeIncomplete}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/11111111111111111")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetVehicle_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{err: assert.AnError}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetVehicle_VINTooShort(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{vehicle: testVehicle()}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/SHORT")
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetRecalls_Success(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{
		vehicle: testVehicle(),
		recalls: []domain.Recall{
			{VehicleID: "veh-1", Campaign: "20V123000", Component: "AIR BAGS"},
			{VehicleID: "veh-1", Campaign: "21V456000", Component: "FUEL SYSTEM"},
		},
	}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456/recalls")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":2`)
	assert.Contains(t, resp.Body.String(), "AIR BAGS")
}

func TestGetRecalls_Empty(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{vehicle: testVehicle()}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456/recalls")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":0`)
}

func TestGetRecalls_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &stubVehicleService{err: assert.AnError}
	h := handlers.NewVehiclesHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, h)

	resp := api.Get("/api/v1/vehicles/4T1C11AK5LU123456/recalls")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
