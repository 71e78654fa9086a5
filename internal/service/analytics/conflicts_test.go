package analytics

import (
	"testing"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedShift(id string, d int, start, end, employeeID string) shift.Shift {
	return shift.Shift{
		ID:         id,
		Date:       day(d),
		StartTime:  start,
		EndTime:    end,
		EmployeeID: &employeeID,
		Location:   "downtown",
		Team:       "front",
		Status:     shift.StatusScheduled,
	}
}

func TestScanShiftConflicts(t *testing.T) {
	t.Run("mutual pair counts twice", func(t *testing.T) {
		shifts := []shift.Shift{
			assignedShift("s1", 5, "09:00", "17:00", "e1"),
			assignedShift("s2", 5, "16:00", "20:00", "e1"),
		}
		conflicting, total := ScanShiftConflicts(shifts)
		assert.Len(t, conflicting, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("no overlap", func(t *testing.T) {
		shifts := []shift.Shift{
			assignedShift("s1", 5, "09:00", "12:00", "e1"),
			assignedShift("s2", 5, "12:00", "17:00", "e1"),
		}
		conflicting, total := ScanShiftConflicts(shifts)
		assert.Empty(t, conflicting)
		assert.Equal(t, 0, total)
	})

	t.Run("one shift overlapping two counts its counterparts", func(t *testing.T) {
		shifts := []shift.Shift{
			assignedShift("s1", 5, "09:00", "20:00", "e1"),
			assignedShift("s2", 5, "10:00", "12:00", "e1"),
			assignedShift("s3", 5, "14:00", "16:00", "e1"),
		}
		conflicting, total := ScanShiftConflicts(shifts)
		assert.Len(t, conflicting, 3)
		// s1 overlaps two, s2 and s3 each overlap one.
		assert.Equal(t, 4, total)
	})

	t.Run("malformed times skipped", func(t *testing.T) {
		broken := assignedShift("s1", 5, "junk", "17:00", "e1")
		shifts := []shift.Shift{
			broken,
			assignedShift("s2", 5, "09:00", "17:00", "e1"),
		}
		conflicting, total := ScanShiftConflicts(shifts)
		assert.Empty(t, conflicting)
		assert.Equal(t, 0, total)
	})

	t.Run("different dates do not conflict", func(t *testing.T) {
		shifts := []shift.Shift{
			assignedShift("s1", 5, "22:00", "06:00", "e1"),
			assignedShift("s2", 6, "04:00", "08:00", "e1"),
		}
		conflicting, total := ScanShiftConflicts(shifts)
		assert.Empty(t, conflicting)
		assert.Equal(t, 0, total)
	})
}

func TestBuildConflictsGroupsByEmployee(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", FullName: "Dana Field", IsActive: true},
		{ID: "e2", FullName: "Sam Rowe", IsActive: true},
	}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 5, "16:00", "20:00", "e1"),
		// e2's shifts are disjoint.
		assignedShift("s3", 5, "09:00", "12:00", "e2"),
		assignedShift("s4", 5, "13:00", "17:00", "e2"),
		// Unassigned shifts never appear in conflict rows.
		{ID: "s5", Date: day(5), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
	}

	report := BuildConflicts(weekRequest(), shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.ShiftConflicts, 1)
	row := report.ShiftConflicts[0]
	assert.Equal(t, "e1", row.EmployeeID)
	assert.Equal(t, "Dana Field", row.EmployeeName)
	assert.Equal(t, 2, row.ConflictCount)
	assert.Len(t, row.ConflictingShifts, 2)
	assert.Equal(t, 2, report.TotalConflicts)
}

func TestBuildConflictsSortsByCountThenHours(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", FullName: "Dana Field"},
		{ID: "e2", FullName: "Sam Rowe"},
	}
	shifts := []shift.Shift{
		// e1: one mutual pair (count 2).
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 5, "16:00", "20:00", "e1"),
		// e2: three mutually overlapping shifts (count 6).
		assignedShift("s3", 5, "09:00", "17:00", "e2"),
		assignedShift("s4", 5, "10:00", "16:00", "e2"),
		assignedShift("s5", 5, "11:00", "15:00", "e2"),
	}

	report := BuildConflicts(weekRequest(), shifts, employees, nil, testGeneratedAt)

	require.Len(t, report.ShiftConflicts, 2)
	assert.Equal(t, "e2", report.ShiftConflicts[0].EmployeeID)
	assert.Equal(t, 6, report.ShiftConflicts[0].ConflictCount)
	assert.Equal(t, "e1", report.ShiftConflicts[1].EmployeeID)
}

func TestBuildConflictsLeaveOverlap(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", FullName: "Dana Field"}}
	shifts := []shift.Shift{
		assignedShift("s1", 5, "09:00", "17:00", "e1"),
		assignedShift("s2", 7, "09:00", "17:00", "e1"),
	}
	leaves := []leave.LeaveRequest{
		{
			ID:         "l1",
			EmployeeID: "e1",
			StartDate:  day(4),
			EndDate:    day(6),
			Status:     leave.StatusApproved,
		},
	}

	report := BuildConflicts(weekRequest(), shifts, employees, leaves, testGeneratedAt)

	require.Len(t, report.LeaveConflicts, 1)
	lc := report.LeaveConflicts[0]
	assert.Equal(t, "l1", lc.LeaveRequestID)
	assert.Equal(t, 1, lc.OverlappingShifts)
	assert.Equal(t, "2024-02-04", lc.LeaveStartDate)
	// The disjoint shift pair contributes no shift conflicts; the total is
	// the single leave conflict.
	assert.Empty(t, report.ShiftConflicts)
	assert.Equal(t, 1, report.TotalConflicts)
}

func TestBuildConflictsSingleShiftEmployeeSkipped(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", FullName: "Dana Field"}}
	shifts := []shift.Shift{assignedShift("s1", 5, "09:00", "17:00", "e1")}

	report := BuildConflicts(weekRequest(), shifts, employees, nil, testGeneratedAt)

	assert.Empty(t, report.ShiftConflicts)
	assert.Equal(t, 0, report.TotalConflicts)
}
