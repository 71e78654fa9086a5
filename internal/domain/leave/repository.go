package leave

import (
	"context"
	"time"
)

// Repository - interface for the leave_requests table
type Repository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string) error

	// ListApprovedOverlapping returns approved requests intersecting the
	// closed date range [start, end], optionally narrowed to one employee.
	// This is the only read the conflict and analytics paths need.
	ListApprovedOverlapping(ctx context.Context, employeeID *string, start, end time.Time) ([]LeaveRequest, error)
}
