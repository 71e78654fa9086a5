package analytics

import (
	"testing"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUtilizationDistinctEmployees(t *testing.T) {
	// e1 works two shifts in the same group and must count once.
	shifts := []shift.Shift{
		coverageShift("s1", 5, "barista", "downtown", "front", strPtr("e1")),
		coverageShift("s2", 5, "barista", "downtown", "front", strPtr("e1")),
		coverageShift("s3", 5, "barista", "downtown", "front", strPtr("e2")),
		coverageShift("s4", 5, "barista", "downtown", "front", nil),
	}

	report := BuildUtilization(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	require.Len(t, group.Roles, 1)
	role := group.Roles[0]
	assert.Equal(t, "barista", role.Role)
	assert.Equal(t, 4, role.TotalShifts)
	assert.InDelta(t, 32.0, role.TotalHours, 1e-9)
	assert.Equal(t, 2, role.EmployeeCount)
	assert.InDelta(t, 16.0, role.AverageHoursPerEmployee, 1e-9)
}

func TestBuildUtilizationCountsOncePerRole(t *testing.T) {
	shifts := []shift.Shift{
		coverageShift("s1", 5, "barista", "downtown", "front", strPtr("e1")),
		coverageShift("s2", 5, "register", "downtown", "front", strPtr("e1")),
	}

	report := BuildUtilization(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	require.Len(t, group.Roles, 2)
	// The group rollup sums the per-role distinct counts, so the same
	// employee appears once per role worked.
	assert.Equal(t, 2, group.EmployeeCount)
	assert.InDelta(t, 8.0, group.AverageHoursPerEmployee, 1e-9)
}

func TestBuildUtilizationNoAssignedEmployees(t *testing.T) {
	shifts := []shift.Shift{
		coverageShift("s1", 5, "barista", "downtown", "front", nil),
	}

	report := BuildUtilization(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	assert.Equal(t, 0, group.EmployeeCount)
	assert.InDelta(t, 0.0, group.AverageHoursPerEmployee, 1e-9)
	require.Len(t, group.Roles, 1)
	assert.InDelta(t, 0.0, group.Roles[0].AverageHoursPerEmployee, 1e-9)
}

func TestBuildUtilizationSkipsMalformed(t *testing.T) {
	bad := coverageShift("s1", 5, "barista", "downtown", "front", strPtr("e1"))
	bad.EndTime = "junk"
	shifts := []shift.Shift{
		bad,
		coverageShift("s2", 5, "barista", "downtown", "front", strPtr("e2")),
	}

	report := BuildUtilization(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	assert.Equal(t, 1, report.Groups[0].TotalShifts)
	assert.Equal(t, 1, report.Groups[0].EmployeeCount)
}

func TestBuildUtilizationSorting(t *testing.T) {
	shifts := []shift.Shift{
		coverageShift("s1", 6, "barista", "uptown", "front", strPtr("e1")),
		coverageShift("s2", 5, "register", "uptown", "front", strPtr("e2")),
		coverageShift("s3", 5, "barista", "downtown", "front", strPtr("e3")),
	}

	report := BuildUtilization(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 3)
	assert.Equal(t, "2024-02-05", report.Groups[0].Date)
	assert.Equal(t, "downtown", report.Groups[0].Location)
	assert.Equal(t, "uptown", report.Groups[1].Location)
	assert.Equal(t, "2024-02-06", report.Groups[2].Date)
}

func TestBuildCapacityActiveOnly(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Role: "barista", Location: "downtown", Team: "front", MaxHoursPerWeek: 40, IsActive: true},
		{ID: "e2", Role: "barista", Location: "downtown", Team: "front", MaxHoursPerWeek: 24, IsActive: true},
		{ID: "e3", Role: "barista", Location: "downtown", Team: "front", MaxHoursPerWeek: 40, IsActive: false},
	}

	report := BuildCapacity(employees, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	assert.Equal(t, 2, group.EmployeeCount)
	assert.InDelta(t, 64.0, group.TotalCapacity, 1e-9)
	assert.Equal(t, testGeneratedAt, report.GeneratedAt)
}

func TestBuildCapacitySorting(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Role: "register", Location: "uptown", Team: "front", MaxHoursPerWeek: 40, IsActive: true},
		{ID: "e2", Role: "barista", Location: "downtown", Team: "kitchen", MaxHoursPerWeek: 40, IsActive: true},
		{ID: "e3", Role: "barista", Location: "downtown", Team: "front", MaxHoursPerWeek: 40, IsActive: true},
	}

	report := BuildCapacity(employees, testGeneratedAt)

	require.Len(t, report.Groups, 3)
	assert.Equal(t, "downtown", report.Groups[0].Location)
	assert.Equal(t, "front", report.Groups[0].Team)
	assert.Equal(t, "kitchen", report.Groups[1].Team)
	assert.Equal(t, "uptown", report.Groups[2].Location)
}
