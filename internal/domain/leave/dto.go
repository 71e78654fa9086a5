package leave

import (
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID    string  `json:"employeeId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	HalfDay       bool    `json:"halfDay"`
	HalfDayPeriod *string `json:"halfDayPeriod"`
	Reason        string  `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if r.HalfDay {
		if r.HalfDayPeriod == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "halfDayPeriod",
				Message: "halfDayPeriod is required for half-day requests",
			})
		} else if *r.HalfDayPeriod != string(HalfDayMorning) && *r.HalfDayPeriod != string(HalfDayAfternoon) {
			errs = append(errs, validator.ValidationError{
				Field:   "halfDayPeriod",
				Message: "halfDayPeriod must be morning or afternoon",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusApproved, StatusRejected, StatusCancelled:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of approved, rejected, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  *string `json:"employeeName,omitempty"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalDays     int     `json:"totalDays"`
	HalfDay       bool    `json:"halfDay"`
	HalfDayPeriod *string `json:"halfDayPeriod,omitempty"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approvedBy,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func (l *LeaveRequest) ToResponse() LeaveRequestResponse {
	var period *string
	if l.HalfDayPeriod != nil {
		p := string(*l.HalfDayPeriod)
		period = &p
	}
	return LeaveRequestResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		TotalDays:     l.TotalDays(),
		HalfDay:       l.HalfDay,
		HalfDayPeriod: period,
		Reason:        l.Reason,
		Status:        string(l.Status),
		ApprovedBy:    l.ApprovedBy,
		CreatedAt:     l.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
