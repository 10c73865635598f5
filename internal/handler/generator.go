package handler

import (
	"log/slog"
	"net/http"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if !isValidationError(err) {
			slog.Error("password generation failed", "type", req.Type, "error", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
