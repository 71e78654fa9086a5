package analytics

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeneratedAt = "2024-02-05T12:00:00Z"

func day(d int) time.Time {
	return time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func coverageShift(id string, d int, role, location, team string, employeeID *string) shift.Shift {
	return shift.Shift{
		ID:           id,
		Date:         day(d),
		StartTime:    "09:00",
		EndTime:      "17:00",
		RequiredRole: employee.Role(role),
		EmployeeID:   employeeID,
		Location:     location,
		Team:         team,
		Status:       shift.StatusScheduled,
	}
}

func weekRequest() analytics.ReportRequest {
	return analytics.ReportRequest{StartDate: "2024-02-05", EndDate: "2024-02-11"}
}

func TestBuildCoverageRatios(t *testing.T) {
	shifts := []shift.Shift{
		coverageShift("s1", 5, "employee", "downtown", "front", strPtr("e1")),
		coverageShift("s2", 5, "employee", "downtown", "front", strPtr("e2")),
		coverageShift("s3", 5, "employee", "downtown", "front", strPtr("e3")),
		coverageShift("s4", 5, "employee", "downtown", "front", nil),
	}

	report := BuildCoverage(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	assert.Equal(t, "2024-02-05", group.Date)
	assert.Equal(t, 4, group.TotalShifts)
	assert.Equal(t, 3, group.AssignedShifts)
	assert.Equal(t, 1, group.UnassignedShifts)
	assert.InDelta(t, 75.0, group.CoveragePercentage, 1e-9)
	assert.InDelta(t, 32.0, group.TotalHours, 1e-9)
	assert.InDelta(t, 24.0, group.AssignedHours, 1e-9)
	assert.InDelta(t, 75.0, group.HoursCoveragePercentage, 1e-9)

	assert.Equal(t, 4, report.Summary.TotalShifts)
	assert.InDelta(t, 75.0, report.Summary.CoveragePercentage, 1e-9)
}

func TestBuildCoverageEmptySnapshot(t *testing.T) {
	report := BuildCoverage(weekRequest(), nil, testGeneratedAt)

	assert.Empty(t, report.Groups)
	assert.Equal(t, 0, report.Summary.TotalShifts)
	// Zero shifts must report 0, never NaN.
	assert.InDelta(t, 0.0, report.Summary.CoveragePercentage, 1e-9)
	assert.InDelta(t, 0.0, report.Summary.HoursCoveragePercentage, 1e-9)
}

func TestBuildCoverageSplitsGroupsAndRoles(t *testing.T) {
	shifts := []shift.Shift{
		coverageShift("s1", 5, "employee", "downtown", "front", strPtr("e1")),
		coverageShift("s2", 5, "employee", "uptown", "front", nil),
		coverageShift("s3", 6, "employee", "downtown", "front", strPtr("e1")),
		coverageShift("s4", 5, "supervisor", "downtown", "front", nil),
	}

	report := BuildCoverage(weekRequest(), shifts, testGeneratedAt)

	require.Len(t, report.Groups, 3)
	// Sorted by date then location.
	assert.Equal(t, "2024-02-05", report.Groups[0].Date)
	assert.Equal(t, "downtown", report.Groups[0].Location)
	assert.Equal(t, "uptown", report.Groups[1].Location)
	assert.Equal(t, "2024-02-06", report.Groups[2].Date)

	// Roles sorted by name inside the first group.
	require.Len(t, report.Groups[0].Roles, 2)
	assert.Equal(t, "employee", report.Groups[0].Roles[0].Role)
	assert.Equal(t, "supervisor", report.Groups[0].Roles[1].Role)
}

func TestBuildCoverageSkipsMalformedShift(t *testing.T) {
	broken := coverageShift("bad", 5, "employee", "downtown", "front", nil)
	broken.StartTime = "junk"
	shifts := []shift.Shift{
		broken,
		coverageShift("s1", 5, "employee", "downtown", "front", strPtr("e1")),
	}

	report := BuildCoverage(weekRequest(), shifts, testGeneratedAt)

	assert.Equal(t, 1, report.Summary.TotalShifts)
}

func TestPercentageFloorsDenominator(t *testing.T) {
	assert.InDelta(t, 0.0, percentage(0, 0), 1e-9)
	assert.InDelta(t, 50.0, percentage(1, 2), 1e-9)
	// Fractional denominators below 1 are floored to 1.
	assert.InDelta(t, 50.0, percentage(0.5, 0.25), 1e-9)
}
