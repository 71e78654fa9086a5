package employee

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	Skills          []string         `json:"skills"`
	Team            string           `json:"team"`
	Location        string           `json:"location"`
	Availability    WeekAvailability `json:"availability"`
	EmploymentType  string           `json:"employmentType"`
	MaxHoursPerWeek float64          `json:"maxHoursPerWeek"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of manager, supervisor, employee, admin",
		})
	}
	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{
			Field:   "team",
			Message: "team is required",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}
	if !EmploymentType(r.EmploymentType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employmentType",
			Message: "employmentType must be one of full_time, part_time, contract, casual",
		})
	}
	if r.MaxHoursPerWeek < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "maxHoursPerWeek",
			Message: "maxHoursPerWeek must not be negative",
		})
	}
	for day, window := range r.Availability {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "availability",
				Message: "unknown weekday " + day,
			})
			continue
		}
		if window.Available && (!validator.IsValidClock(window.StartTime) || !validator.IsValidClock(window.EndTime)) {
			errs = append(errs, validator.ValidationError{
				Field:   "availability." + day,
				Message: "start_time and end_time must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName        *string          `json:"fullName"`
	Role            *string          `json:"role"`
	Skills          []string         `json:"skills"`
	Team            *string          `json:"team"`
	Location        *string          `json:"location"`
	Availability    WeekAvailability `json:"availability"`
	EmploymentType  *string          `json:"employmentType"`
	MaxHoursPerWeek *float64         `json:"maxHoursPerWeek"`
	IsActive        *bool            `json:"isActive"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}
	if r.Role != nil && !Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of manager, supervisor, employee, admin",
		})
	}
	if r.EmploymentType != nil && !EmploymentType(*r.EmploymentType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employmentType",
			Message: "employmentType must be one of full_time, part_time, contract, casual",
		})
	}
	if r.MaxHoursPerWeek != nil && *r.MaxHoursPerWeek < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "maxHoursPerWeek",
			Message: "maxHoursPerWeek must not be negative",
		})
	}
	for day := range r.Availability {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "availability",
				Message: "unknown weekday " + day,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	FullName        string           `json:"fullName"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	Skills          []string         `json:"skills"`
	Team            string           `json:"team"`
	Location        string           `json:"location"`
	Availability    WeekAvailability `json:"availability"`
	EmploymentType  string           `json:"employmentType"`
	MaxHoursPerWeek float64          `json:"maxHoursPerWeek"`
	IsActive        bool             `json:"isActive"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		FullName:        e.FullName,
		Email:           e.Email,
		Role:            string(e.Role),
		Skills:          e.Skills,
		Team:            e.Team,
		Location:        e.Location,
		Availability:    e.Availability,
		EmploymentType:  string(e.EmploymentType),
		MaxHoursPerWeek: e.MaxHoursPerWeek,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       e.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
