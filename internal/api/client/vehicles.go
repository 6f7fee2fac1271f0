package client

import (
	"context"
	"net/url"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// VehicleResponse wraps a VIN lookup response.
type VehicleResponse struct {
	Vehicle domain.Vehicle  `json:"vehicle"`
	Recalls []domain.Recall `json:"recalls"`
}

// RecallsResponse wraps a recall fetch response.
type RecallsResponse struct {
	VIN     string          `json:"vin"`
	Count   int             `json:"count"`
	Recalls []domain.Recall `json:"recalls"`
}

// GetVehicle returns the decoded vehicle and known recalls for a VIN.
func (c *Client) GetVehicle(ctx context.Context, vin string) (*VehicleResponse, error) {
	var resp VehicleResponse
	if err := c.get(ctx, "/api/v1/vehicles/"+url.PathEscape(vin), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRecalls fetches fresh recall campaigns for a VIN.
func (c *Client) GetRecalls(ctx context.Context, vin string) (*RecallsResponse, error) {
	var resp RecallsResponse
	if err := c.get(ctx, "/api/v1/vehicles/"+url.PathEscape(vin)+"/recalls", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshRecalls triggers a server-side recall refresh cycle.
func (c *Client) RefreshRecalls(ctx context.Context) error {
	return c.post(ctx, "/api/v1/recalls/refresh", nil, nil)
}
