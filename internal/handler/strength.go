package handler

import (
	"net/http"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// StrengthHandler handles HTTP requests for strength assessment.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Assess(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
