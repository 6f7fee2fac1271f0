package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// ComparisonResponse wraps a contract comparison response.
type ComparisonResponse struct {
	Comparison domain.DeviationAssessment `json:"comparison"`
	Fairness   domain.FairnessReport      `json:"fairness"`
}

// CompareContract assesses contract terms against the market.
func (c *Client) CompareContract(ctx context.Context, contractID string, terms domain.ContractTerms) (*ComparisonResponse, error) {
	body := map[string]any{"terms": terms}
	if contractID != "" {
		body["contract_id"] = contractID
	}

	var resp ComparisonResponse
	if err := c.post(ctx, "/api/v1/comparisons", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListAssessments returns recent stored contract assessments.
func (c *Client) ListAssessments(ctx context.Context, limit int) ([]domain.StoredAssessment, error) {
	path := "/api/v1/comparisons"
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path += "?" + q.Encode()
	}

	var resp struct {
		Assessments []domain.StoredAssessment `json:"assessments"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Assessments, nil
}
