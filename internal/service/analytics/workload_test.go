package analytics

import (
	"testing"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkloadPerEmployee(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", FullName: "Dana Field", MaxHoursPerWeek: 40},
	}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"), // Monday, 8h
		assignedShift("s2", 6, "09:00", "13:00", "e1"), // Tuesday, 4h
		assignedShift("s3", 10, "22:00", "06:00", "e1"), // Saturday overnight, 8h
	}

	report := BuildWorkload(weekRequest(), shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.Employees, 1)
	row := report.Employees[0]
	assert.Equal(t, "Dana Field", row.EmployeeName)
	assert.Equal(t, 3, row.TotalShifts)
	assert.InDelta(t, 20.0, row.TotalHours, 1e-9)
	assert.Equal(t, 1, row.OvernightShifts)
	assert.Equal(t, 1, row.WeekendShifts)
	assert.InDelta(t, 20.0/3, row.AverageShiftDuration, 1e-9)
	// One-week window: average per week equals the total.
	assert.InDelta(t, 20.0, row.AverageHoursPerWeek, 1e-9)
	assert.InDelta(t, 50.0, row.UtilizationPercentage, 1e-9)
	assert.InDelta(t, 50.0, row.AdjustedUtilizationPercentage, 1e-9)
}

func TestBuildWorkloadWeeksRoundUp(t *testing.T) {
	// A ten-day window counts as two weeks.
	req := analytics.ReportRequest{StartDate: "2024-02-05", EndDate: "2024-02-14"}
	employees := []employee.Employee{{ID: "e1", MaxHoursPerWeek: 40}}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 12, "09:00", "17:00", "e1"),
	}

	report := BuildWorkload(req, shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.Employees, 1)
	assert.InDelta(t, 8.0, report.Employees[0].AverageHoursPerWeek, 1e-9)
}

func TestBuildWorkloadNoDeclaredMaximum(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", FullName: "Casual Worker", MaxHoursPerWeek: 0}}
	shifts := []shift.Shift{assignedShift("s1", 5, "09:00", "17:00", "e1")}

	report := BuildWorkload(weekRequest(), shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.Employees, 1)
	row := report.Employees[0]
	// Denominator floored at 1 keeps the raw figure finite; the adjusted
	// figure is forced to zero because no maximum was declared.
	assert.InDelta(t, 800.0, row.UtilizationPercentage, 1e-9)
	assert.InDelta(t, 0.0, row.AdjustedUtilizationPercentage, 1e-9)
	assert.Equal(t, 1, report.Summary.OverUtilizedCount)
}

func TestBuildWorkloadAdjustedClamped(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", MaxHoursPerWeek: 10}}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 6, "09:00", "17:00", "e1"),
	}

	report := BuildWorkload(weekRequest(), shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.Employees, 1)
	row := report.Employees[0]
	assert.InDelta(t, 160.0, row.UtilizationPercentage, 1e-9)
	assert.InDelta(t, 100.0, row.AdjustedUtilizationPercentage, 1e-9)
}

func TestBuildWorkloadSummaryCounts(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", MaxHoursPerWeek: 10}, // will be over
		{ID: "e2", MaxHoursPerWeek: 40}, // will be under
	}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 6, "09:00", "17:00", "e1"),
		assignedShift("s3", 5, "09:00", "13:00", "e2"),
	}

	report := BuildWorkload(weekRequest(), shifts, employees, nil, testGeneratedAt)

	assert.Equal(t, 2, report.Summary.TotalEmployees)
	assert.Equal(t, 1, report.Summary.OverUtilizedCount)
	assert.Equal(t, 1, report.Summary.UnderUtilizedCount)
}

func TestBuildWorkloadApprovedLeaveDays(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", MaxHoursPerWeek: 40}}
	shifts := []shift.Shift{assignedShift("s1", 8, "09:00", "17:00", "e1")}
	leaves := []leave.LeaveRequest{
		{EmployeeID: "e1", StartDate: day(5), EndDate: day(7), Status: leave.StatusApproved}, // 3 days
		{EmployeeID: "e1", StartDate: day(9), EndDate: day(9), Status: leave.StatusPending},  // ignored
	}

	report := BuildWorkload(weekRequest(), shifts, employees, leaves, testGeneratedAt)

	require.Len(t, report.Employees, 1)
	assert.Equal(t, 3, report.Employees[0].ApprovedLeaveDays)
}

func TestBuildWorkloadIgnoresUnassigned(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "s1", Date: day(5), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
	}

	report := BuildWorkload(weekRequest(), shifts, nil, nil, testGeneratedAt)

	assert.Empty(t, report.Employees)
	assert.Equal(t, 0, report.Summary.TotalEmployees)
}
