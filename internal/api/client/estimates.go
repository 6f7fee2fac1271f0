package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// EstimateRequest is the body for a manual estimate.
type EstimateRequest struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	ModelYear int    `json:"model_year"`
	Mileage   *int   `json:"mileage,omitempty"`
	Condition string `json:"condition,omitempty"`
	BodyClass string `json:"body_class,omitempty"`
}

// EstimatesResponse wraps a paginated stored-estimate response.
type EstimatesResponse struct {
	Estimates []domain.StoredEstimate `json:"estimates"`
	Total     int                     `json:"total"`
}

// ListEstimatesParams defines query parameters for estimate listings.
type ListEstimatesParams struct {
	VIN    string
	Source string
	Limit  int
	Offset int
}

// CreateEstimate requests a price band for a manually described vehicle.
func (c *Client) CreateEstimate(ctx context.Context, req *EstimateRequest) (*domain.PriceEstimate, error) {
	var est domain.PriceEstimate
	if err := c.post(ctx, "/api/v1/estimates", req, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// EstimateByVIN requests a price band for a VIN-identified vehicle.
func (c *Client) EstimateByVIN(ctx context.Context, vin string, mileage int, condition string) (*domain.PriceEstimate, error) {
	q := url.Values{}
	if mileage > 0 {
		q.Set("mileage", strconv.Itoa(mileage))
	}
	if condition != "" {
		q.Set("condition", condition)
	}

	path := "/api/v1/estimates/vin/" + url.PathEscape(vin)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var est domain.PriceEstimate
	if err := c.get(ctx, path, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// ListEstimates returns stored estimates matching the given parameters.
func (c *Client) ListEstimates(ctx context.Context, params *ListEstimatesParams) (*EstimatesResponse, error) {
	q := url.Values{}
	if params.VIN != "" {
		q.Set("vin", params.VIN)
	}
	if params.Source != "" {
		q.Set("source", params.Source)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/estimates"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp EstimatesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEstimate returns a single stored estimate by ID.
func (c *Client) GetEstimate(ctx context.Context, id string) (*domain.StoredEstimate, error) {
	var e domain.StoredEstimate
	if err := c.get(ctx, fmt.Sprintf("/api/v1/estimates/%s", id), &e); err != nil {
		return nil, err
	}
	return &e, nil
}
