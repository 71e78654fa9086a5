package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/user"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, full_name, role, employee_id, google_id,
		   created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Role,
		&u.EmployeeID,
		&u.GoogleID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, employee_id, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.Role,
		u.EmployeeID,
		u.GoogleID,
	))
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByGoogleID implements user.Repository.
func (r *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE google_id = $1
	`

	return scanUser(q.QueryRow(ctx, query, googleID))
}

// Update implements user.Repository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, full_name = $3, role = $4,
			employee_id = $5, google_id = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.Role,
		u.EmployeeID,
		u.GoogleID,
		u.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
