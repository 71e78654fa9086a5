package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, full_name, email, role, skills, team, location,
		   availability, employment_type, max_hours_per_week, is_active,
		   created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FullName,
		&e.Email,
		&e.Role,
		&e.Skills,
		&e.Team,
		&e.Location,
		&e.Availability,
		&e.EmploymentType,
		&e.MaxHoursPerWeek,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, full_name, email, role, skills, team, location,
			availability, employment_type, max_hours_per_week, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		e.ID,
		e.UserID,
		e.FullName,
		e.Email,
		e.Role,
		e.Skills,
		e.Team,
		e.Location,
		e.Availability,
		e.EmploymentType,
		e.MaxHoursPerWeek,
		e.IsActive,
	))
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, email))
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, role = $2, skills = $3, team = $4, location = $5,
			availability = $6, employment_type = $7, max_hours_per_week = $8,
			is_active = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		e.FullName,
		e.Role,
		e.Skills,
		e.Team,
		e.Location,
		e.Availability,
		e.EmploymentType,
		e.MaxHoursPerWeek,
		e.IsActive,
		e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Deactivate implements employee.Repository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListActive implements employee.Repository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context, location, team *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE
		  AND ($1::text IS NULL OR location = $1)
		  AND ($2::text IS NULL OR team = $2)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, location, team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 OR is_active = TRUE)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
