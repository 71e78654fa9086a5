package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.start_date, l.end_date, l.half_day, l.half_day_period,
		   l.reason, l.status, l.approved_by, l.approved_at, l.created_at, l.updated_at,
		   e.full_name`

const leaveFrom = `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.StartDate,
		&l.EndDate,
		&l.HalfDay,
		&l.HalfDayPeriod,
		&l.Reason,
		&l.Status,
		&l.ApprovedBy,
		&l.ApprovedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return l, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

// Create implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, half_day, half_day_period, reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, start_date, end_date, half_day, half_day_period,
				  reason, status, approved_by, approved_at, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.StartDate,
		req.EndDate,
		req.HalfDay,
		req.HalfDayPeriod,
		req.Reason,
		req.Status,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.StartDate,
		&created.EndDate,
		&created.HalfDay,
		&created.HalfDayPeriod,
		&created.Reason,
		&created.Status,
		&created.ApprovedBy,
		&created.ApprovedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + leaveFrom + `
		WHERE l.id = $1
	`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// GetByEmployeeID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + leaveFrom + `
		WHERE l.employee_id = $1
		ORDER BY l.start_date DESC, l.id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}

// UpdateStatus implements leave.Repository. approved_at is set only when the
// decision carries a decider.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = $2,
			approved_at = CASE WHEN $2::text IS NULL THEN approved_at ELSE NOW() END,
			updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, status, approvedBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// ListApprovedOverlapping implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID *string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + leaveFrom + `
		WHERE l.status = 'approved'
		  AND l.start_date <= $2
		  AND l.end_date >= $1
		  AND ($3::text IS NULL OR l.employee_id = $3)
		ORDER BY l.start_date, l.id
	`

	rows, err := q.Query(ctx, query, start, end, employeeID)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}
