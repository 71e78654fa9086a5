package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, includeInactive bool) ([]Employee, error)
}
