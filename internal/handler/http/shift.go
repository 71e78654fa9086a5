package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ValidateAssignment(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// rejected writes the response for an ineligible assignment: 409 with the
// verdict so clients can show the blocking shifts.
func rejected(w http.ResponseWriter, verdict shift.AssignmentVerdict) {
	response.ConflictWithData(w, "Assignment rejected: "+string(verdict.Reason), verdict.ToResponse())
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, verdict, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !verdict.Eligible {
		rejected(w, verdict)
		return
	}

	response.Created(w, "Shift created successfully", created.ToResponse())
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	found, err := h.shiftService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found.ToResponse())
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, verdict, err := h.shiftService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !verdict.Eligible {
		rejected(w, verdict)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", updated.ToResponse())
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// parseRangeFilter reads the common range query parameters. Omitted dates
// default to the current week.
func parseRangeFilter(r *http.Request) (shift.RangeFilter, error) {
	q := r.URL.Query()

	var filter shift.RangeFilter
	now := time.Now()
	filter.StartDate = now.AddDate(0, 0, -int(now.Weekday()))
	filter.EndDate = filter.StartDate.AddDate(0, 0, 6)

	if raw := q.Get("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return shift.RangeFilter{}, err
		}
		filter.StartDate = parsed
	}
	if raw := q.Get("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return shift.RangeFilter{}, err
		}
		filter.EndDate = parsed
	}
	if raw := q.Get("location"); raw != "" {
		filter.Location = &raw
	}
	if raw := q.Get("team"); raw != "" {
		filter.Team = &raw
	}
	if raw := q.Get("status"); raw != "" {
		filter.Statuses = []shift.Status{shift.Status(raw)}
	}
	return filter, nil
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRangeFilter(r)
	if err != nil {
		response.BadRequest(w, "Dates must be in YYYY-MM-DD format", nil)
		return
	}

	shifts, err := h.shiftService.ListInRange(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]shift.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, shifts[i].ToResponse())
	}
	response.Success(w, out)
}

// Assign implements ShiftHandler.
func (h *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	assigned, verdict, err := h.shiftService.Assign(r.Context(), id, req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !verdict.Eligible {
		rejected(w, verdict)
		return
	}

	response.SuccessWithMessage(w, "Shift assigned successfully", assigned.ToResponse())
}

// Unassign implements ShiftHandler.
func (h *ShiftHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	updated, err := h.shiftService.Unassign(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift unassigned successfully", updated.ToResponse())
}

// UpdateStatus implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.UpdateShiftStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShiftStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.shiftService.UpdateStatus(r.Context(), id, shift.Status(req.Status))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift status updated successfully", updated.ToResponse())
}

// ValidateAssignment implements ShiftHandler. Dry-run check: nothing is
// persisted either way.
func (h *ShiftHandlerImpl) ValidateAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	verdict, err := h.shiftService.ValidateAssignment(r.Context(), id, req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, verdict.ToResponse())
}
