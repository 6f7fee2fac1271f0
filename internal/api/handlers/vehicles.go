package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// VehicleService defines the VIN lookup operations the API exposes.
type VehicleService interface {
	LookupVehicle(ctx context.Context, vin string) (*domain.Vehicle, []domain.Recall, error)
	FetchRecalls(ctx context.Context, vin string) (*domain.Vehicle, []domain.Recall, error)
}

// VehiclesHandler handles VIN lookup and recall endpoints.
type VehiclesHandler struct {
	svc VehicleService
}

// NewVehiclesHandler creates a new VehiclesHandler.
func NewVehiclesHandler(svc VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

// --- Input/Output types ---

// GetVehicleInput is the input for a VIN lookup.
type GetVehicleInput struct {
	VIN string `path:"vin" minLength:"11" maxLength:"17" doc:"Vehicle identification number"`
}

// GetVehicleOutput is the response for a VIN lookup.
type GetVehicleOutput struct {
	Body struct {
		Vehicle domain.Vehicle  `json:"vehicle"`
		Recalls []domain.Recall `json:"recalls"`
	}
}

// GetRecallsOutput is the response for a recall fetch.
type GetRecallsOutput struct {
	Body struct {
		VIN     string          `json:"vin"`
		Count   int             `json:"count"`
		Recalls []domain.Recall `json:"recalls"`
	}
}

// --- Handlers ---

// GetVehicle returns the decoded vehicle for a VIN, decoding it through
// NHTSA on a store miss.
func (h *VehiclesHandler) GetVehicle(
	ctx context.Context,
	input *GetVehicleInput,
) (*GetVehicleOutput, error) {
	vehicle, recalls, err := h.svc.LookupVehicle(ctx, input.VIN)
	if err != nil {
		if errors.Is(err, nhtsa.ErrDecodeIncomplete) {
			return nil, huma.Error422UnprocessableEntity("VIN could not be decoded: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("vehicle lookup failed: " + err.Error())
	}

	if recalls == nil {
		recalls = []domain.Recall{}
	}

	resp := &GetVehicleOutput{}
	resp.Body.Vehicle = *vehicle
	resp.Body.Recalls = recalls
	return resp, nil
}

// GetRecalls returns fresh recall campaigns for a VIN.
func (h *VehiclesHandler) GetRecalls(
	ctx context.Context,
	input *GetVehicleInput,
) (*GetRecallsOutput, error) {
	_, recalls, err := h.svc.FetchRecalls(ctx, input.VIN)
	if err != nil {
		if errors.Is(err, nhtsa.ErrDecodeIncomplete) {
			return nil, huma.Error422UnprocessableEntity("VIN could not be decoded: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("recall fetch failed: " + err.Error())
	}

	if recalls == nil {
		recalls = []domain.Recall{}
	}

	resp := &GetRecallsOutput{}
	resp.Body.VIN = input.VIN
	resp.Body.Count = len(recalls)
	resp.Body.Recalls = recalls
	return resp, nil
}

// RegisterVehicleRoutes registers vehicle endpoints with the Huma API.
func RegisterVehicleRoutes(api huma.API, h *VehiclesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{vin}",
		Summary:     "Look up a vehicle by VIN",
		Description: "Returns the decoded vehicle record and its known recalls, decoding the VIN " +
			"through NHTSA vPIC when it is not yet stored.",
		Tags:   []string{"vehicles"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle-recalls",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{vin}/recalls",
		Summary:     "Fetch recalls for a VIN",
		Description: "Fetches fresh recall campaigns from NHTSA for the vehicle and replaces the stored set.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetRecalls)
}
