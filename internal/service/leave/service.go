package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
)

type leaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &leaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return leave.LeaveRequest{}, employee.ErrEmployeeInactive
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	var period *leave.HalfDayPeriod
	if req.HalfDay && req.HalfDayPeriod != nil {
		p := leave.HalfDayPeriod(*req.HalfDayPeriod)
		period = &p
	}

	entity := leave.LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		HalfDay:       req.HalfDay,
		HalfDayPeriod: period,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, entity)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (s *leaveServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	found, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return found, nil
}

func (s *leaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *leaveServiceImpl) Decide(ctx context.Context, id string, req leave.DecideLeaveRequest, approvedBy string) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	next := leave.Status(req.Status)
	if !existing.CanTransitionTo(next, time.Now()) {
		// Distinguish "already decided" from "approved leave already running"
		// so clients get the right message.
		if existing.Status == leave.StatusApproved {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyStarted
		}
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	var decider *string
	if next == leave.StatusApproved {
		decider = &approvedBy
	}
	if err := s.leaveRepo.UpdateStatus(ctx, id, next, decider); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return s.GetByID(ctx, id)
}
