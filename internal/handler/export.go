package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

// ExportHandler handles HTTP requests for password exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// HandleExport handles POST /api/v1/export?format=json|txt|yaml requests.
// The format defaults to json.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = service.FormatJSON
	}

	var req model.ExportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.service.Build(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	body, err := h.service.Encode(record, format)
	if err != nil {
		if !isValidationError(err) {
			slog.Error("export encoding failed", "format", format, "error", err)
		}
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", service.ContentType(format))
	w.Header().Set("Content-Disposition", "attachment; filename=password."+format)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
