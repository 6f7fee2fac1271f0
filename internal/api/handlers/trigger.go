package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RecallRefresher defines the interface for triggering a recall refresh.
type RecallRefresher interface {
	RefreshRecalls(ctx context.Context) error
}

// RecallRefreshHandler handles manual recall refresh requests.
type RecallRefreshHandler struct {
	refresher RecallRefresher
}

// NewRecallRefreshHandler creates a new RecallRefreshHandler.
func NewRecallRefreshHandler(r RecallRefresher) *RecallRefreshHandler {
	return &RecallRefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the recall refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status string `json:"status" example:"recall refresh completed" doc:"Refresh status"`
	}
}

// Refresh triggers a recall refresh cycle over the stored vehicles.
func (h *RecallRefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	if err := h.refresher.RefreshRecalls(ctx); err != nil {
		return nil, huma.Error500InternalServerError("recall refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Status = "recall refresh completed"
	return resp, nil
}

// RegisterTriggerRoutes registers manual trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *RecallRefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-recalls",
		Method:      http.MethodPost,
		Path:        "/api/v1/recalls/refresh",
		Summary:     "Trigger a recall refresh",
		Description: "Re-fetches recall campaigns from NHTSA for the most recently updated vehicles.",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Refresh)
}
