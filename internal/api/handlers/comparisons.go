package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealwise/car-price-advisor/internal/store"
	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

// ContractComparer defines the contract assessment operation the API exposes.
type ContractComparer interface {
	CompareContract(ctx context.Context, contractID *string, terms domain.ContractTerms) (domain.DeviationAssessment, domain.FairnessReport)
}

// ComparisonsHandler handles contract comparison endpoints.
type ComparisonsHandler struct {
	comparer ContractComparer
	store    store.Store
}

// NewComparisonsHandler creates a new ComparisonsHandler.
func NewComparisonsHandler(c ContractComparer, s store.Store) *ComparisonsHandler {
	return &ComparisonsHandler{comparer: c, store: s}
}

// --- Input/Output types ---

// CompareContractInput is the request body for a contract comparison.
type CompareContractInput struct {
	Body struct {
		ContractID string               `json:"contract_id,omitempty" doc:"Caller-side contract reference"`
		Terms      domain.ContractTerms `json:"terms"                 doc:"Extracted contract financing terms"`
	}
}

// CompareContractOutput is the response for a contract comparison.
type CompareContractOutput struct {
	Body struct {
		Comparison domain.DeviationAssessment `json:"comparison"`
		Fairness   domain.FairnessReport      `json:"fairness"`
	}
}

// ListAssessmentsInput is the input for listing stored assessments.
type ListAssessmentsInput struct {
	Limit int `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListAssessmentsOutput is the response for listing stored assessments.
type ListAssessmentsOutput struct {
	Body struct {
		Assessments []domain.StoredAssessment `json:"assessments"`
	}
}

// --- Handlers ---

// CompareContract assesses a contract's financed amount against market and
// scores overall contract fairness.
func (h *ComparisonsHandler) CompareContract(
	ctx context.Context,
	input *CompareContractInput,
) (*CompareContractOutput, error) {
	var contractID *string
	if input.Body.ContractID != "" {
		contractID = &input.Body.ContractID
	}

	cmp, report := h.comparer.CompareContract(ctx, contractID, input.Body.Terms)

	resp := &CompareContractOutput{}
	resp.Body.Comparison = cmp
	resp.Body.Fairness = report
	return resp, nil
}

// ListAssessments returns recent stored assessments.
func (h *ComparisonsHandler) ListAssessments(
	ctx context.Context,
	input *ListAssessmentsInput,
) (*ListAssessmentsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	assessments, err := h.store.ListAssessments(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("assessment query failed: " + err.Error())
	}

	if assessments == nil {
		assessments = []domain.StoredAssessment{}
	}

	resp := &ListAssessmentsOutput{}
	resp.Body.Assessments = assessments
	return resp, nil
}

// RegisterComparisonRoutes registers contract comparison endpoints with the
// Huma API.
func RegisterComparisonRoutes(api huma.API, h *ComparisonsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-contract",
		Method:      http.MethodPost,
		Path:        "/api/v1/comparisons",
		Summary:     "Compare a contract against market",
		Description: "Assesses the contract's financed amount against the estimated market price " +
			"and scores the overall contract fairness.",
		Tags: []string{"comparisons"},
	}, h.CompareContract)

	huma.Register(api, huma.Operation{
		OperationID: "list-assessments",
		Method:      http.MethodGet,
		Path:        "/api/v1/comparisons",
		Summary:     "List recent contract assessments",
		Description: "Returns the most recent stored contract assessments.",
		Tags:        []string{"comparisons"},
	}, h.ListAssessments)
}
