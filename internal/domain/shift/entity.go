package shift

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Shift entity. Date carries the calendar day only; StartTime and EndTime are
// "HH:MM" clock strings. A shift whose end clock is not after its start clock
// runs overnight into the following calendar day.
type Shift struct {
	ID        string
	Date      time.Time
	StartTime string
	EndTime   string

	RequiredRole   employee.Role
	RequiredSkills []string

	EmployeeID *string // nil while unassigned
	Location   string
	Team       string

	Status        Status
	BreakDuration float64 // hours, informational
	HourlyRate    decimal.Decimal
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ConflictStatuses are the statuses that count as conflict sources. Cancelled
// and completed shifts never block a new assignment.
var ConflictStatuses = []Status{StatusScheduled, StatusInProgress}

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo enforces the shift lifecycle:
// scheduled -> in_progress -> completed, or scheduled -> cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// IsAssigned reports whether the shift has an employee.
func (s *Shift) IsAssigned() bool {
	return s.EmployeeID != nil && *s.EmployeeID != ""
}

// CanReassign reports whether the assigned employee may still be changed.
// Assignment is frozen once the shift has started.
func (s *Shift) CanReassign() bool {
	return s.Status == StatusScheduled
}

// CanDelete reports whether the shift may be removed. Deletion is forbidden
// once work has started or finished.
func (s *Shift) CanDelete() bool {
	return s.Status != StatusInProgress && s.Status != StatusCompleted
}
