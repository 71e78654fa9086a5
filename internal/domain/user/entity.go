package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash *string // nil for OAuth-only accounts
	FullName     string
	Role         Role
	EmployeeID   *string
	GoogleID     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// CanManageRoster reports whether the role may create shifts, decide leave
// requests and read analytics.
func (r Role) CanManageRoster() bool {
	return r == RoleAdmin || r == RoleManager
}
