package http

import (
	"net/http"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Coverage(w http.ResponseWriter, r *http.Request)
	Conflicts(w http.ResponseWriter, r *http.Request)
	Workload(w http.ResponseWriter, r *http.Request)
	Utilization(w http.ResponseWriter, r *http.Request)
	Capacity(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	analyticsService analytics.Service
}

func NewReportHandler(analyticsService analytics.Service) ReportHandler {
	return &ReportHandlerImpl{analyticsService: analyticsService}
}

// reportRequestFrom reads the shared report query parameters. Validation is
// left to the service.
func reportRequestFrom(r *http.Request) analytics.ReportRequest {
	q := r.URL.Query()

	req := analytics.ReportRequest{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if raw := q.Get("location"); raw != "" {
		req.Location = &raw
	}
	if raw := q.Get("team"); raw != "" {
		req.Team = &raw
	}
	return req
}

// Coverage implements ReportHandler.
func (h *ReportHandlerImpl) Coverage(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.BuildCoverageReport(r.Context(), reportRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Conflicts implements ReportHandler.
func (h *ReportHandlerImpl) Conflicts(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.BuildConflictReport(r.Context(), reportRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Workload implements ReportHandler.
func (h *ReportHandlerImpl) Workload(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.BuildWorkloadReport(r.Context(), reportRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Utilization implements ReportHandler.
func (h *ReportHandlerImpl) Utilization(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.BuildUtilizationReport(r.Context(), reportRequestFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Capacity implements ReportHandler.
func (h *ReportHandlerImpl) Capacity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var location, team *string
	if raw := q.Get("location"); raw != "" {
		location = &raw
	}
	if raw := q.Get("team"); raw != "" {
		team = &raw
	}

	report, err := h.analyticsService.BuildCapacityReport(r.Context(), location, team)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
