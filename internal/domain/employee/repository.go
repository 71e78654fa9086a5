package employee

import "context"

// Repository - interface for the employees table
type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Update(ctx context.Context, e Employee) error
	// Deactivate soft-deletes: the row stays so historical shifts keep their
	// employee reference.
	Deactivate(ctx context.Context, id string) error

	// ListActive returns active employees, optionally narrowed by location
	// and team. Inactive employees are never returned here.
	ListActive(ctx context.Context, location, team *string) ([]Employee, error)
	List(ctx context.Context, includeInactive bool) ([]Employee, error)
}
