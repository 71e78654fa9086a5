package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Employee struct {
	ID       string
	UserID   *string
	FullName string
	Email    string

	Role     Role
	Skills   []string
	Team     string
	Location string

	Availability    WeekAvailability
	EmploymentType  EmploymentType
	MaxHoursPerWeek float64

	// Soft delete: inactive employees are excluded from assignment and most
	// queries but keep their historical shift references.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
	RoleAdmin      Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleSupervisor, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeCasual   EmploymentType = "casual"
)

func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeCasual:
		return true
	}
	return false
}

// DayAvailability is one weekday's working window.
type DayAvailability struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// WeekAvailability maps lowercase weekday names ("monday" .. "sunday") to the
// employee's availability for that day. Stored as a JSONB column.
type WeekAvailability map[string]DayAvailability

// DefaultAvailability returns the standard week: Monday through Friday
// 09:00-17:00, weekends off.
func DefaultAvailability() WeekAvailability {
	week := make(WeekAvailability, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		available := d != time.Saturday && d != time.Sunday
		week[WeekdayKey(d)] = DayAvailability{
			StartTime: "09:00",
			EndTime:   "17:00",
			Available: available,
		}
	}
	return week
}

// WeekdayKey converts a time.Weekday to the map key used by WeekAvailability.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	default:
		return "saturday"
	}
}

// AvailableOn reports whether the employee works on the given date's weekday.
// A missing entry counts as unavailable.
func (e *Employee) AvailableOn(date time.Time) bool {
	day, ok := e.Availability[WeekdayKey(date.Weekday())]
	return ok && day.Available
}

// HasAnySkill reports whether the employee holds at least one of the required
// skills. An empty requirement always matches; the check is any-of, not
// all-of, so partial skill coverage is accepted.
func (e *Employee) HasAnySkill(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range e.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Value implements driver.Valuer for database storage
func (w WeekAvailability) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner for database retrieval
func (w *WeekAvailability) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WeekAvailability: invalid type")
	}

	return json.Unmarshal(bytes, w)
}
