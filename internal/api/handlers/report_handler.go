package handlers

import (
	"net/http"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
)

// ReportHandler handles admin report-management HTTP requests. Report
// creation lives on the station handler since it is a station sub-resource.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	reports, err := h.reportService.List(r.Context(), middleware.Role(r.Context()), status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// UpdateReportStatus handles PATCH /api/reports/{id}
func (h *ReportHandler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("id")
	if reportID == "" {
		respondWithError(w, http.StatusBadRequest, "report ID is required")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondWithAppError(w, err)
		return
	}

	report, err := h.reportService.SetStatus(r.Context(), middleware.Role(r.Context()), reportID, body.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
