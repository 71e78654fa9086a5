package shift

import "context"

// Service is the assignment-handling surface over shifts. Mutations that
// touch the employee reference return an AssignmentVerdict alongside the
// entity; callers persist nothing themselves and must treat an ineligible
// verdict as a rejected request, not an error.
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (Shift, AssignmentVerdict, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (Shift, AssignmentVerdict, error)
	Delete(ctx context.Context, id string) error
	ListInRange(ctx context.Context, filter RangeFilter) ([]Shift, error)

	Assign(ctx context.Context, shiftID, employeeID string) (Shift, AssignmentVerdict, error)
	Unassign(ctx context.Context, shiftID string) (Shift, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Shift, error)

	// ValidateAssignment is the dry-run form: same verdict, no writes.
	ValidateAssignment(ctx context.Context, shiftID, employeeID string) (AssignmentVerdict, error)
}
