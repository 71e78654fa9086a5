package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) && !errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, fmt.Errorf("failed to check email: %w", err)
	}

	availability := req.Availability
	if availability == nil {
		availability = employee.DefaultAvailability()
	}

	entity := employee.Employee{
		ID:              uuid.NewString(),
		FullName:        req.FullName,
		Email:           req.Email,
		Role:            employee.Role(req.Role),
		Skills:          req.Skills,
		Team:            req.Team,
		Location:        req.Location,
		Availability:    availability,
		EmploymentType:  employee.EmploymentType(req.EmploymentType),
		MaxHoursPerWeek: req.MaxHoursPerWeek,
		IsActive:        true,
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return found, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Role != nil {
		existing.Role = employee.Role(*req.Role)
	}
	if req.Skills != nil {
		existing.Skills = req.Skills
	}
	if req.Team != nil {
		existing.Team = *req.Team
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Availability != nil {
		existing.Availability = req.Availability
	}
	if req.EmploymentType != nil {
		existing.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.MaxHoursPerWeek != nil {
		existing.MaxHoursPerWeek = *req.MaxHoursPerWeek
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, existing); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *employeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Deactivate(ctx, id)
}

func (s *employeeServiceImpl) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx, includeInactive)
}
