package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type shiftServiceImpl struct {
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	leaveRepo    leave.Repository
}

func NewShiftService(shiftRepo shift.Repository, employeeRepo employee.Repository, leaveRepo leave.Repository) shift.Service {
	return &shiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
	}
}

// validate runs the assignment checks for a proposed shift/employee pair,
// fetching the snapshot the pure validator needs. excludeID keeps the shift
// under edit out of its own conflict set.
func (s *shiftServiceImpl) validate(ctx context.Context, proposed shift.Shift, employeeID string, excludeID *string) (shift.AssignmentVerdict, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return shift.IneligibleVerdict(shift.ReasonEmployeeNotFound), nil
		}
		return shift.AssignmentVerdict{}, fmt.Errorf("failed to get employee: %w", err)
	}

	sameDay, err := s.shiftRepo.ListForEmployeeOnDate(ctx, employeeID, proposed.Date, shift.ConflictStatuses, excludeID)
	if err != nil {
		return shift.AssignmentVerdict{}, fmt.Errorf("failed to get same-day shifts: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, &employeeID, proposed.Date, proposed.Date)
	if err != nil {
		return shift.AssignmentVerdict{}, fmt.Errorf("failed to get leave records: %w", err)
	}

	return ValidateAssignment(proposed, &emp, sameDay, leaves), nil
}

func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, shift.AssignmentVerdict, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	rate := decimal.Zero
	if req.HourlyRate != "" {
		parsed, err := decimal.NewFromString(req.HourlyRate)
		if err != nil {
			return shift.Shift{}, shift.AssignmentVerdict{}, fmt.Errorf("invalid hourly rate: %w", err)
		}
		rate = parsed
	}

	entity := shift.Shift{
		ID:             uuid.NewString(),
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RequiredRole:   employee.Role(req.RequiredRole),
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		Team:           req.Team,
		Status:         shift.StatusScheduled,
		BreakDuration:  req.BreakDuration,
		HourlyRate:     rate,
		Notes:          req.Notes,
	}

	verdict := shift.EligibleVerdict()
	if req.EmployeeID != nil && *req.EmployeeID != "" {
		var err error
		verdict, err = s.validate(ctx, entity, *req.EmployeeID, nil)
		if err != nil {
			return shift.Shift{}, shift.AssignmentVerdict{}, err
		}
		if !verdict.Eligible {
			return shift.Shift{}, verdict, nil
		}
		entity.EmployeeID = req.EmployeeID
	}

	created, err := s.shiftRepo.Create(ctx, entity)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, verdict, nil
}

func (s *shiftServiceImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return found, nil
}

func (s *shiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.Shift, shift.AssignmentVerdict, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}
	if existing.Status.IsTerminal() {
		return shift.Shift{}, shift.AssignmentVerdict{}, shift.ErrInvalidStatusChange
	}

	if req.Date != nil {
		existing.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}
	if req.RequiredRole != nil {
		existing.RequiredRole = employee.Role(*req.RequiredRole)
	}
	if req.RequiredSkills != nil {
		existing.RequiredSkills = req.RequiredSkills
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Team != nil {
		existing.Team = *req.Team
	}
	if req.BreakDuration != nil {
		existing.BreakDuration = *req.BreakDuration
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return shift.Shift{}, shift.AssignmentVerdict{}, fmt.Errorf("invalid hourly rate: %w", err)
		}
		existing.HourlyRate = rate
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	// Re-validate the current assignee against the edited times, excluding
	// the shift itself from its own conflict set.
	verdict := shift.EligibleVerdict()
	if existing.IsAssigned() {
		verdict, err = s.validate(ctx, existing, *existing.EmployeeID, &existing.ID)
		if err != nil {
			return shift.Shift{}, shift.AssignmentVerdict{}, err
		}
		if !verdict.Eligible {
			return shift.Shift{}, verdict, nil
		}
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, fmt.Errorf("failed to update shift: %w", err)
	}
	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}
	return updated, verdict, nil
}

func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !existing.CanDelete() {
		return shift.ErrShiftNotDeletable
	}
	return s.shiftRepo.Delete(ctx, id)
}

func (s *shiftServiceImpl) ListInRange(ctx context.Context, filter shift.RangeFilter) ([]shift.Shift, error) {
	return s.shiftRepo.ListInRange(ctx, filter)
}

func (s *shiftServiceImpl) Assign(ctx context.Context, shiftID, employeeID string) (shift.Shift, shift.AssignmentVerdict, error) {
	existing, err := s.GetByID(ctx, shiftID)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}
	if !existing.CanReassign() {
		return shift.Shift{}, shift.AssignmentVerdict{}, shift.ErrShiftNotReassignable
	}

	verdict, err := s.validate(ctx, existing, employeeID, &existing.ID)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}
	if !verdict.Eligible {
		return shift.Shift{}, verdict, nil
	}

	// The update matches zero rows if another writer changed the shift
	// after validation; the caller retries.
	if err := s.shiftRepo.UpdateEmployee(ctx, shiftID, &employeeID, existing.UpdatedAt); err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}

	updated, err := s.GetByID(ctx, shiftID)
	if err != nil {
		return shift.Shift{}, shift.AssignmentVerdict{}, err
	}
	return updated, verdict, nil
}

func (s *shiftServiceImpl) Unassign(ctx context.Context, shiftID string) (shift.Shift, error) {
	existing, err := s.GetByID(ctx, shiftID)
	if err != nil {
		return shift.Shift{}, err
	}
	if !existing.CanReassign() {
		return shift.Shift{}, shift.ErrShiftNotReassignable
	}

	if err := s.shiftRepo.UpdateEmployee(ctx, shiftID, nil, existing.UpdatedAt); err != nil {
		return shift.Shift{}, err
	}
	return s.GetByID(ctx, shiftID)
}

func (s *shiftServiceImpl) UpdateStatus(ctx context.Context, id string, status shift.Status) (shift.Shift, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return shift.Shift{}, err
	}
	if !existing.Status.CanTransitionTo(status) {
		return shift.Shift{}, shift.ErrInvalidStatusChange
	}

	if err := s.shiftRepo.UpdateStatus(ctx, id, status); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to update shift status: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *shiftServiceImpl) ValidateAssignment(ctx context.Context, shiftID, employeeID string) (shift.AssignmentVerdict, error) {
	existing, err := s.GetByID(ctx, shiftID)
	if err != nil {
		return shift.AssignmentVerdict{}, err
	}
	return s.validate(ctx, existing, employeeID, &existing.ID)
}
