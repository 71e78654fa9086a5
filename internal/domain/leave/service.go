package leave

import "context"

type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// Decide moves a request through its lifecycle. approvedBy records the
	// deciding user on approval.
	Decide(ctx context.Context, id string, req DecideLeaveRequest, approvedBy string) (LeaveRequest, error)
}
