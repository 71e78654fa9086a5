package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.date, s.start_time, s.end_time, s.required_role, s.required_skills,
		   s.employee_id, s.location, s.team, s.status, s.break_duration, s.hourly_rate,
		   s.notes, s.created_at, s.updated_at, e.full_name`

const shiftFrom = `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.RequiredRole,
		&s.RequiredSkills,
		&s.EmployeeID,
		&s.Location,
		&s.Team,
		&s.Status,
		&s.BreakDuration,
		&s.HourlyRate,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.EmployeeName,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func statusStrings(statuses []shift.Status) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}

// Create implements shift.Repository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, date, start_time, end_time, required_role, required_skills,
			employee_id, location, team, status, break_duration, hourly_rate, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, date, start_time, end_time, required_role, required_skills,
				  employee_id, location, team, status, break_duration, hourly_rate,
				  notes, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		s.ID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.RequiredRole,
		s.RequiredSkills,
		s.EmployeeID,
		s.Location,
		s.Team,
		s.Status,
		s.BreakDuration,
		s.HourlyRate,
		s.Notes,
	).Scan(
		&created.ID,
		&created.Date,
		&created.StartTime,
		&created.EndTime,
		&created.RequiredRole,
		&created.RequiredSkills,
		&created.EmployeeID,
		&created.Location,
		&created.Team,
		&created.Status,
		&created.BreakDuration,
		&created.HourlyRate,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	return created, nil
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.id = $1
	`

	return scanShift(q.QueryRow(ctx, query, id))
}

// Update implements shift.Repository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET date = $1, start_time = $2, end_time = $3, required_role = $4,
			required_skills = $5, location = $6, team = $7, break_duration = $8,
			hourly_rate = $9, notes = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.RequiredRole,
		s.RequiredSkills,
		s.Location,
		s.Team,
		s.BreakDuration,
		s.HourlyRate,
		s.Notes,
		s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// UpdateEmployee implements shift.Repository. The updated_at predicate is the
// optimistic concurrency check: a row another writer touched since the read
// matches zero rows.
func (r *shiftRepositoryImpl) UpdateEmployee(ctx context.Context, id string, employeeID *string, updatedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'scheduled' AND updated_at = $3
	`

	tag, err := q.Exec(ctx, query, employeeID, id, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftConcurrentlyEdited
	}
	return nil
}

// UpdateStatus implements shift.Repository.
func (r *shiftRepositoryImpl) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListInRange implements shift.Repository.
func (r *shiftRepositoryImpl) ListInRange(ctx context.Context, filter shift.RangeFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.date >= $1 AND s.date <= $2
		  AND ($3::text IS NULL OR s.location = $3)
		  AND ($4::text IS NULL OR s.team = $4)
		  AND (cardinality($5::text[]) = 0 OR s.status = ANY($5))
		ORDER BY s.date, s.start_time, s.id
	`

	rows, err := q.Query(ctx, query,
		filter.StartDate,
		filter.EndDate,
		filter.Location,
		filter.Team,
		statusStrings(filter.Statuses),
	)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}

// ListForEmployeeOnDate implements shift.Repository.
func (r *shiftRepositoryImpl) ListForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time, statuses []shift.Status, excludeID *string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.employee_id = $1
		  AND s.date = $2
		  AND (cardinality($3::text[]) = 0 OR s.status = ANY($3))
		  AND ($4::text IS NULL OR s.id <> $4)
		ORDER BY s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, employeeID, date, statusStrings(statuses), excludeID)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}

// ListStartedBefore implements shift.Repository. Overnight shifts end on the
// day after their date, so the end comparison folds the clock wrap in.
func (r *shiftRepositoryImpl) ListStartedBefore(ctx context.Context, now time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.status = 'scheduled'
		  AND s.date + s.start_time::time <= $1
		ORDER BY s.date, s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}

// ListEndedBefore implements shift.Repository.
func (r *shiftRepositoryImpl) ListEndedBefore(ctx context.Context, now time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + shiftFrom + `
		WHERE s.status = 'in_progress'
		  AND s.date
			+ CASE WHEN s.end_time <= s.start_time THEN INTERVAL '1 day' ELSE INTERVAL '0' END
			+ s.end_time::time <= $1
		ORDER BY s.date, s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return collectShifts(rows)
}
