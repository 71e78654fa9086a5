package analytics

import (
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/validator"
)

// ReportRequest is the shared query shape of every analytics report: an
// inclusive date range plus optional location/team filters.
type ReportRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Location  *string `json:"location"`
	Team      *string `json:"team"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed date range. Call only after Validate.
func (r *ReportRequest) Range() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

// RangeDays is the inclusive day count of the query window.
func (r *ReportRequest) RangeDays() int {
	start, end := r.Range()
	return int(end.Sub(start).Hours()/24) + 1
}

// ========================================
// COVERAGE REPORT
// ========================================

type CoverageRoleBreakdown struct {
	Role                    string  `json:"role"`
	TotalShifts             int     `json:"totalShifts"`
	TotalHours              float64 `json:"totalHours"`
	AssignedShifts          int     `json:"assignedShifts"`
	AssignedHours           float64 `json:"assignedHours"`
	UnassignedShifts        int     `json:"unassignedShifts"`
	UnassignedHours         float64 `json:"unassignedHours"`
	CoveragePercentage      float64 `json:"coveragePercentage"`
	HoursCoveragePercentage float64 `json:"hoursCoveragePercentage"`
}

type CoverageGroup struct {
	Date                    string                  `json:"date"`
	Location                string                  `json:"location"`
	Team                    string                  `json:"team"`
	Roles                   []CoverageRoleBreakdown `json:"roles"`
	TotalShifts             int                     `json:"totalShifts"`
	TotalHours              float64                 `json:"totalHours"`
	AssignedShifts          int                     `json:"assignedShifts"`
	AssignedHours           float64                 `json:"assignedHours"`
	UnassignedShifts        int                     `json:"unassignedShifts"`
	UnassignedHours         float64                 `json:"unassignedHours"`
	CoveragePercentage      float64                 `json:"coveragePercentage"`
	HoursCoveragePercentage float64                 `json:"hoursCoveragePercentage"`
}

type CoverageSummary struct {
	TotalShifts             int     `json:"totalShifts"`
	TotalHours              float64 `json:"totalHours"`
	AssignedShifts          int     `json:"assignedShifts"`
	AssignedHours           float64 `json:"assignedHours"`
	UnassignedShifts        int     `json:"unassignedShifts"`
	UnassignedHours         float64 `json:"unassignedHours"`
	CoveragePercentage      float64 `json:"coveragePercentage"`
	HoursCoveragePercentage float64 `json:"hoursCoveragePercentage"`
}

type CoverageReport struct {
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	GeneratedAt string          `json:"generatedAt"`
	Summary     CoverageSummary `json:"summary"`
	Groups      []CoverageGroup `json:"groups"`
}

// ========================================
// CONFLICT REPORT
// ========================================

// EmployeeConflicts lists one employee's mutually overlapping shifts.
// ConflictCount is a counterpart-overlap count: each shift contributes the
// number of other shifts it overlaps, so a mutual pair contributes 2.
type EmployeeConflicts struct {
	EmployeeID        string                `json:"employeeId"`
	EmployeeName      string                `json:"employeeName"`
	ConflictCount     int                   `json:"conflictCount"`
	TotalHours        float64               `json:"totalHours"`
	ConflictingShifts []shift.ShiftResponse `json:"conflictingShifts"`
}

// LeaveConflict is an approved leave request that intersects scheduled or
// in-progress shifts of the same employee.
type LeaveConflict struct {
	EmployeeID        string  `json:"employeeId"`
	EmployeeName      string  `json:"employeeName"`
	LeaveRequestID    string  `json:"leaveRequestId"`
	LeaveStartDate    string  `json:"leaveStartDate"`
	LeaveEndDate      string  `json:"leaveEndDate"`
	OverlappingShifts int     `json:"overlappingShifts"`
}

type ConflictReport struct {
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	GeneratedAt    string              `json:"generatedAt"`
	TotalConflicts int                 `json:"totalConflicts"`
	ShiftConflicts []EmployeeConflicts `json:"shiftConflicts"`
	LeaveConflicts []LeaveConflict     `json:"leaveConflicts"`
}

// ========================================
// WORKLOAD REPORT
// ========================================

type WorkloadRow struct {
	EmployeeID                    string  `json:"employeeId"`
	EmployeeName                  string  `json:"employeeName"`
	MaxHoursPerWeek               float64 `json:"maxHoursPerWeek"`
	TotalShifts                   int     `json:"totalShifts"`
	TotalHours                    float64 `json:"totalHours"`
	AverageShiftDuration          float64 `json:"averageShiftDuration"`
	OvernightShifts               int     `json:"overnightShifts"`
	WeekendShifts                 int     `json:"weekendShifts"`
	AverageHoursPerWeek           float64 `json:"averageHoursPerWeek"`
	UtilizationPercentage         float64 `json:"utilizationPercentage"`
	AdjustedUtilizationPercentage float64 `json:"adjustedUtilizationPercentage"`
	ApprovedLeaveDays             int     `json:"approvedLeaveDays"`
}

type WorkloadSummary struct {
	TotalEmployees     int `json:"totalEmployees"`
	OverUtilizedCount  int `json:"overUtilizedCount"`
	UnderUtilizedCount int `json:"underUtilizedCount"`
}

type WorkloadReport struct {
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	GeneratedAt string          `json:"generatedAt"`
	Summary     WorkloadSummary `json:"summary"`
	Employees   []WorkloadRow   `json:"employees"`
}

// ========================================
// UTILIZATION REPORT
// ========================================

type UtilizationRoleRow struct {
	Role                    string  `json:"role"`
	TotalHours              float64 `json:"totalHours"`
	TotalShifts             int     `json:"totalShifts"`
	EmployeeCount           int     `json:"employeeCount"`
	AverageHoursPerEmployee float64 `json:"averageHoursPerEmployee"`
}

type UtilizationGroup struct {
	Date                    string               `json:"date"`
	Location                string               `json:"location"`
	Team                    string               `json:"team"`
	Roles                   []UtilizationRoleRow `json:"roles"`
	TotalHours              float64              `json:"totalHours"`
	TotalShifts             int                  `json:"totalShifts"`
	EmployeeCount           int                  `json:"employeeCount"`
	AverageHoursPerEmployee float64              `json:"averageHoursPerEmployee"`
}

type UtilizationReport struct {
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	GeneratedAt string             `json:"generatedAt"`
	Groups      []UtilizationGroup `json:"groups"`
}

// CapacityGroup sums active employees' declared weekly maximums per
// (location, team, role), independent of scheduled shifts, for side-by-side
// capacity-vs-demand reporting.
type CapacityGroup struct {
	Location      string  `json:"location"`
	Team          string  `json:"team"`
	Role          string  `json:"role"`
	EmployeeCount int     `json:"employeeCount"`
	TotalCapacity float64 `json:"totalCapacity"`
}

type CapacityReport struct {
	GeneratedAt string          `json:"generatedAt"`
	Groups      []CapacityGroup `json:"groups"`
}
