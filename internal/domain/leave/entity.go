package leave

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// HalfDayPeriod marks which half of the day a half-day request covers. It is
// informational only: conflict checks treat any half-day request as blocking
// the whole date.
type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "morning"
	HalfDayAfternoon HalfDayPeriod = "afternoon"
)

// LeaveRequest entity. StartDate..EndDate is a closed interval: both endpoint
// dates are days off.
type LeaveRequest struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time

	HalfDay       bool
	HalfDayPeriod *HalfDayPeriod

	Reason string
	Status Status

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// TotalDays is the inclusive day count of the request.
func (l *LeaveRequest) TotalDays() int {
	start := truncateToDate(l.StartDate)
	end := truncateToDate(l.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// ContainsDate reports whether the given calendar date falls inside the
// request's closed interval.
func (l *LeaveRequest) ContainsDate(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(l.StartDate)) && !d.After(truncateToDate(l.EndDate))
}

// OverlapsRange reports whether the request intersects the closed date range
// [start, end].
func (l *LeaveRequest) OverlapsRange(start, end time.Time) bool {
	return !truncateToDate(l.StartDate).After(truncateToDate(end)) &&
		!truncateToDate(l.EndDate).Before(truncateToDate(start))
}

// CanTransitionTo enforces the request lifecycle:
// pending -> approved | rejected | cancelled; an approved request may still be
// cancelled while its start date lies in the future.
func (l *LeaveRequest) CanTransitionTo(next Status, now time.Time) bool {
	switch l.Status {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled && truncateToDate(l.StartDate).After(truncateToDate(now))
	default:
		return false
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
