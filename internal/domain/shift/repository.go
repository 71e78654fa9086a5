package shift

import (
	"context"
	"time"
)

// RangeFilter bounds a bulk shift read. Location and Team are optional
// narrowing dimensions; Statuses limits which lifecycle states are returned
// (all states when empty).
type RangeFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Location  *string
	Team      *string
	Statuses  []Status
}

// Repository - interface for the shifts table
type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	// UpdateEmployee changes the assignment with an optimistic check against
	// updatedAt, closing the validate-then-persist race between two
	// concurrent assignment attempts.
	UpdateEmployee(ctx context.Context, id string, employeeID *string, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	ListInRange(ctx context.Context, filter RangeFilter) ([]Shift, error)
	// ListForEmployeeOnDate returns one employee's shifts on a calendar date
	// whose status is in statuses, excluding excludeID when non-nil. Used by
	// the targeted conflict scan.
	ListForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time, statuses []Status, excludeID *string) ([]Shift, error)
	// ListStartedBefore returns scheduled shifts whose start has passed;
	// ListEndedBefore returns in-progress shifts whose end has passed. Both
	// feed the status advancement job.
	ListStartedBefore(ctx context.Context, now time.Time) ([]Shift, error)
	ListEndedBefore(ctx context.Context, now time.Time) ([]Shift, error)
}
