package shift

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	RequiredRole   string   `json:"requiredRole"`
	RequiredSkills []string `json:"requiredSkills"`
	EmployeeID     *string  `json:"employeeId"`
	Location       string   `json:"location"`
	Team           string   `json:"team"`
	BreakDuration  float64  `json:"breakDuration"`
	HourlyRate     string   `json:"hourlyRate"`
	Notes          *string  `json:"notes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}
	if !employee.Role(r.RequiredRole).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "requiredRole",
			Message: "requiredRole must be one of manager, supervisor, employee, admin",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}
	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{
			Field:   "team",
			Message: "team is required",
		})
	}
	if r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "breakDuration",
			Message: "breakDuration must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Date           *string  `json:"date"`
	StartTime      *string  `json:"startTime"`
	EndTime        *string  `json:"endTime"`
	RequiredRole   *string  `json:"requiredRole"`
	RequiredSkills []string `json:"requiredSkills"`
	Location       *string  `json:"location"`
	Team           *string  `json:"team"`
	BreakDuration  *float64 `json:"breakDuration"`
	HourlyRate     *string  `json:"hourlyRate"`
	Notes          *string  `json:"notes"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}
	if r.RequiredRole != nil && !employee.Role(*r.RequiredRole).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "requiredRole",
			Message: "requiredRole must be one of manager, supervisor, employee, admin",
		})
	}
	if r.BreakDuration != nil && *r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "breakDuration",
			Message: "breakDuration must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateShiftStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of scheduled, in_progress, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VerdictResponse is the JSON shape of an assignment validation outcome.
type VerdictResponse struct {
	Eligible  bool            `json:"eligible"`
	Reason    string          `json:"reason"`
	Conflicts []ShiftResponse `json:"conflicts,omitempty"`
}

// ToResponse converts a verdict to its response shape.
func (v AssignmentVerdict) ToResponse() VerdictResponse {
	resp := VerdictResponse{
		Eligible: v.Eligible,
		Reason:   string(v.Reason),
	}
	for i := range v.Conflicts {
		resp.Conflicts = append(resp.Conflicts, v.Conflicts[i].ToResponse())
	}
	return resp
}

// ShiftResponse is the JSON shape returned to clients. Duration and overnight
// classification are derived on the way out rather than stored.
type ShiftResponse struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	IsOvernight    bool     `json:"isOvernight"`
	Duration       float64  `json:"duration"`
	RequiredRole   string   `json:"requiredRole"`
	RequiredSkills []string `json:"requiredSkills"`
	EmployeeID     *string  `json:"employeeId"`
	EmployeeName   *string  `json:"employeeName,omitempty"`
	Location       string   `json:"location"`
	Team           string   `json:"team"`
	Status         string   `json:"status"`
	BreakDuration  float64  `json:"breakDuration"`
	HourlyRate     string   `json:"hourlyRate"`
	Notes          *string  `json:"notes,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToResponse converts an entity to its response shape. Duration falls back to
// zero when the stored clock strings cannot be parsed.
func (s *Shift) ToResponse() ShiftResponse {
	duration, _ := s.DurationHours()
	return ShiftResponse{
		ID:             s.ID,
		Date:           s.Date.Format("2006-01-02"),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		IsOvernight:    s.IsOvernight(),
		Duration:       duration,
		RequiredRole:   string(s.RequiredRole),
		RequiredSkills: s.RequiredSkills,
		EmployeeID:     s.EmployeeID,
		EmployeeName:   s.EmployeeName,
		Location:       s.Location,
		Team:           s.Team,
		Status:         string(s.Status),
		BreakDuration:  s.BreakDuration,
		HourlyRate:     s.HourlyRate.String(),
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      s.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
