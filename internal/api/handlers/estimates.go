package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealwise/car-price-advisor/internal/nhtsa"
	"github.com/dealwise/car-price-advisor/internal/store"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// EstimateService defines the estimation operations the API exposes.
type EstimateService interface {
	EstimateVehicle(ctx context.Context, d domain.VehicleDescriptor) domain.PriceEstimate
	EstimateByVIN(ctx context.Context, vin string, mileage *int, condition domain.Condition) (domain.PriceEstimate, *domain.Vehicle, error)
}

// EstimatesHandler handles price estimation endpoints.
type EstimatesHandler struct {
	svc   EstimateService
	store store.Store
}

// NewEstimatesHandler creates a new EstimatesHandler.
func NewEstimatesHandler(svc EstimateService, s store.Store) *EstimatesHandler {
	return &EstimatesHandler{svc: svc, store: s}
}

// --- Input/Output types ---

// CreateEstimateInput is the request body for a manual estimate.
type CreateEstimateInput struct {
	Body struct {
		Make      string `json:"make"       minLength:"1"  doc:"Vehicle make"                example:"Toyota"`
		Model     string `json:"model"      minLength:"1"  doc:"Vehicle model"               example:"Camry"`
		ModelYear int    `json:"model_year" minimum:"1900" doc:"Model year"                  example:"2020"  maximum:"2100"`
		Mileage   *int   `json:"mileage,omitempty"         doc:"Odometer reading in miles"   example:"45000" minimum:"0"`
		Condition string `json:"condition,omitempty"       doc:"Vehicle condition"           enum:"excellent,good,fair,poor,"`
		BodyClass string `json:"body_class,omitempty"      doc:"Body style fallback hint"    example:"Sedan"`
	}
}

// EstimateOutput is the response for a single estimate.
type EstimateOutput struct {
	Body domain.PriceEstimate
}

// EstimateByVINInput is the input for a VIN-based estimate.
type EstimateByVINInput struct {
	VIN       string `path:"vin"         minLength:"11" maxLength:"17" doc:"Vehicle identification number"`
	Mileage   int    `query:"mileage"    minimum:"0"                   doc:"Odometer reading in miles"`
	Condition string `query:"condition"  enum:"excellent,good,fair,poor," doc:"Vehicle condition"`
}

// ListEstimatesInput is the input for listing stored estimates.
type ListEstimatesInput struct {
	VIN    string `query:"vin"    doc:"Filter by VIN"`
	Source string `query:"source" doc:"Filter by estimate source"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListEstimatesOutput is the response for listing stored estimates.
type ListEstimatesOutput struct {
	Body struct {
		Estimates []domain.StoredEstimate `json:"estimates"`
		Total     int                     `json:"total"`
		Limit     int                     `json:"limit"`
		Offset    int                     `json:"offset"`
	}
}

// GetEstimateInput is the input for getting a stored estimate.
type GetEstimateInput struct {
	ID string `path:"id" doc:"Estimate UUID"`
}

// GetEstimateOutput is the response for getting a stored estimate.
type GetEstimateOutput struct {
	Body domain.StoredEstimate
}

// --- Handlers ---

// CreateEstimate produces a price band for a manually described vehicle.
func (h *EstimatesHandler) CreateEstimate(
	ctx context.Context,
	input *CreateEstimateInput,
) (*EstimateOutput, error) {
	est := h.svc.EstimateVehicle(ctx, domain.VehicleDescriptor{
		Make:      input.Body.Make,
		Model:     input.Body.Model,
		ModelYear: input.Body.ModelYear,
		Mileage:   input.Body.Mileage,
		Condition: domain.Condition(input.Body.Condition),
		BodyClass: input.Body.BodyClass,
	})

	return &EstimateOutput{Body: est}, nil
}

// EstimateByVIN decodes a VIN and produces a price band for the decoded
// vehicle.
func (h *EstimatesHandler) EstimateByVIN(
	ctx context.Context,
	input *EstimateByVINInput,
) (*EstimateOutput, error) {
	var mileage *int
	if input.Mileage > 0 {
		mileage = &input.Mileage
	}

	est, _, err := h.svc.EstimateByVIN(ctx, input.VIN, mileage, domain.Condition(input.Condition))
	if err != nil {
		if errors.Is(err, nhtsa.ErrDecodeIncomplete) {
			return nil, huma.Error422UnprocessableEntity("VIN could not be decoded: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("estimate failed: " + err.Error())
	}

	return &EstimateOutput{Body: est}, nil
}

// ListEstimates returns stored estimates with optional VIN and source filters.
func (h *EstimatesHandler) ListEstimates(
	ctx context.Context,
	input *ListEstimatesInput,
) (*ListEstimatesOutput, error) {
	q := &store.EstimateQuery{Offset: input.Offset}

	if input.VIN != "" {
		q.VIN = &input.VIN
	}
	if input.Source != "" {
		q.Source = &input.Source
	}
	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	estimates, total, err := h.store.ListEstimates(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("estimate query failed: " + err.Error())
	}

	resp := &ListEstimatesOutput{}
	resp.Body.Estimates = estimates
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetEstimate returns a single stored estimate by ID.
func (h *EstimatesHandler) GetEstimate(
	ctx context.Context,
	input *GetEstimateInput,
) (*GetEstimateOutput, error) {
	e, err := h.store.GetEstimate(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("estimate not found")
	}

	return &GetEstimateOutput{Body: *e}, nil
}

// RegisterEstimateRoutes registers estimation endpoints with the Huma API.
func RegisterEstimateRoutes(api huma.API, h *EstimatesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-estimate",
		Method:      http.MethodPost,
		Path:        "/api/v1/estimates",
		Summary:     "Estimate a vehicle price",
		Description: "Produces a low/market/high price band for a manually described vehicle.",
		Tags:        []string{"estimates"},
	}, h.CreateEstimate)

	huma.Register(api, huma.Operation{
		OperationID: "estimate-by-vin",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimates/vin/{vin}",
		Summary:     "Estimate a vehicle price by VIN",
		Description: "Decodes the VIN through NHTSA vPIC and produces a price band for the decoded vehicle.",
		Tags:        []string{"estimates"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.EstimateByVIN)

	huma.Register(api, huma.Operation{
		OperationID: "list-estimates",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimates",
		Summary:     "List stored estimates",
		Description: "Returns stored estimates with optional VIN and source filters.",
		Tags:        []string{"estimates"},
	}, h.ListEstimates)

	huma.Register(api, huma.Operation{
		OperationID: "get-estimate",
		Method:      http.MethodGet,
		Path:        "/api/v1/estimates/{id}",
		Summary:     "Get a stored estimate by ID",
		Description: "Returns a single stored estimate by its UUID.",
		Tags:        []string{"estimates"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetEstimate)
}
