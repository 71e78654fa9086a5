package shift

import (
	"testing"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC) // a Monday

func testShift(id, start, end string) shift.Shift {
	return shift.Shift{
		ID:        id,
		Date:      monday,
		StartTime: start,
		EndTime:   end,
		Status:    shift.StatusScheduled,
		Location:  "downtown",
		Team:      "front",
	}
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:           "emp-1",
		FullName:     "Dana Field",
		Role:         employee.RoleEmployee,
		Skills:       []string{"barista", "register"},
		IsActive:     true,
		Availability: employee.DefaultAvailability(),
	}
}

func TestValidateAssignmentEligible(t *testing.T) {
	verdict := ValidateAssignment(testShift("s1", "09:00", "17:00"), testEmployee(), nil, nil)

	assert.True(t, verdict.Eligible)
	assert.Equal(t, shift.ReasonEligible, verdict.Reason)
	assert.Empty(t, verdict.Conflicts)
}

func TestValidateAssignmentEmployeeMissing(t *testing.T) {
	verdict := ValidateAssignment(testShift("s1", "09:00", "17:00"), nil, nil, nil)

	assert.False(t, verdict.Eligible)
	assert.Equal(t, shift.ReasonEmployeeNotFound, verdict.Reason)
}

func TestValidateAssignmentEmployeeInactive(t *testing.T) {
	emp := testEmployee()
	emp.IsActive = false

	verdict := ValidateAssignment(testShift("s1", "09:00", "17:00"), emp, nil, nil)

	assert.False(t, verdict.Eligible)
	assert.Equal(t, shift.ReasonEmployeeInactive, verdict.Reason)
}

func TestValidateAssignmentOverlappingShiftRejected(t *testing.T) {
	existing := testShift("s1", "09:00", "17:00")
	proposed := testShift("s2", "16:00", "20:00")

	verdict := ValidateAssignment(proposed, testEmployee(), []shift.Shift{existing}, nil)

	assert.False(t, verdict.Eligible)
	assert.Equal(t, shift.ReasonConflictingShifts, verdict.Reason)
	require.Len(t, verdict.Conflicts, 1)
	assert.Equal(t, "s1", verdict.Conflicts[0].ID)
}

func TestValidateAssignmentBackToBackAccepted(t *testing.T) {
	existing := testShift("s1", "09:00", "17:00")
	proposed := testShift("s2", "17:00", "20:00")

	verdict := ValidateAssignment(proposed, testEmployee(), []shift.Shift{existing}, nil)

	assert.True(t, verdict.Eligible)
}

func TestValidateAssignmentSelfExcluded(t *testing.T) {
	// Editing a shift must not report the shift itself as its own conflict.
	edited := testShift("s1", "09:00", "18:00")
	stale := testShift("s1", "09:00", "17:00")

	verdict := ValidateAssignment(edited, testEmployee(), []shift.Shift{stale}, nil)

	assert.True(t, verdict.Eligible)
}

func TestValidateAssignmentMalformedCandidateSkipped(t *testing.T) {
	broken := testShift("s1", "junk", "17:00")
	proposed := testShift("s2", "09:00", "17:00")

	verdict := ValidateAssignment(proposed, testEmployee(), []shift.Shift{broken}, nil)

	assert.True(t, verdict.Eligible)
}

func TestValidateAssignmentUnavailableWeekday(t *testing.T) {
	proposed := testShift("s1", "09:00", "17:00")
	proposed.Date = time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC) // Saturday

	verdict := ValidateAssignment(proposed, testEmployee(), nil, nil)

	assert.False(t, verdict.Eligible)
	assert.Equal(t, shift.ReasonEmployeeUnavailableOnDay, verdict.Reason)
}

func TestValidateAssignmentSkills(t *testing.T) {
	emp := testEmployee()

	t.Run("no required skills always passes", func(t *testing.T) {
		verdict := ValidateAssignment(testShift("s1", "09:00", "17:00"), emp, nil, nil)
		assert.True(t, verdict.Eligible)
	})

	t.Run("any one matching skill passes", func(t *testing.T) {
		s := testShift("s1", "09:00", "17:00")
		s.RequiredSkills = []string{"forklift", "barista"}
		verdict := ValidateAssignment(s, emp, nil, nil)
		assert.True(t, verdict.Eligible)
	})

	t.Run("no matching skill fails", func(t *testing.T) {
		s := testShift("s1", "09:00", "17:00")
		s.RequiredSkills = []string{"forklift"}
		verdict := ValidateAssignment(s, emp, nil, nil)
		assert.False(t, verdict.Eligible)
		assert.Equal(t, shift.ReasonInsufficientSkills, verdict.Reason)
	})
}

func TestValidateAssignmentApprovedLeave(t *testing.T) {
	leaveFeb1to5 := leave.LeaveRequest{
		ID:         "l1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}

	t.Run("shift inside leave range rejected", func(t *testing.T) {
		s := testShift("s1", "09:00", "17:00")
		s.Date = time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC) // Friday
		verdict := ValidateAssignment(s, testEmployee(), nil, []leave.LeaveRequest{leaveFeb1to5})
		assert.False(t, verdict.Eligible)
		assert.Equal(t, shift.ReasonTimeOffConflict, verdict.Reason)
	})

	t.Run("shift after leave ends accepted", func(t *testing.T) {
		s := testShift("s1", "09:00", "17:00")
		s.Date = time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC) // Tuesday
		verdict := ValidateAssignment(s, testEmployee(), nil, []leave.LeaveRequest{leaveFeb1to5})
		assert.True(t, verdict.Eligible)
	})

	t.Run("pending leave does not block", func(t *testing.T) {
		pending := leaveFeb1to5
		pending.Status = leave.StatusPending
		s := testShift("s1", "09:00", "17:00")
		s.Date = time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)
		verdict := ValidateAssignment(s, testEmployee(), nil, []leave.LeaveRequest{pending})
		assert.True(t, verdict.Eligible)
	})

	t.Run("half-day leave blocks the whole date", func(t *testing.T) {
		halfDay := leaveFeb1to5
		halfDay.HalfDay = true
		period := leave.HalfDayMorning
		halfDay.HalfDayPeriod = &period
		s := testShift("s1", "13:00", "17:00") // afternoon shift, morning leave
		s.Date = time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)
		verdict := ValidateAssignment(s, testEmployee(), nil, []leave.LeaveRequest{halfDay})
		assert.False(t, verdict.Eligible)
		assert.Equal(t, shift.ReasonTimeOffConflict, verdict.Reason)
	})
}

func TestValidateAssignmentConflictBeatsAvailability(t *testing.T) {
	// Check order: conflicting shifts are reported before weekday
	// availability.
	emp := testEmployee()
	emp.Availability = employee.WeekAvailability{} // unavailable every day

	existing := testShift("s1", "09:00", "17:00")
	proposed := testShift("s2", "10:00", "12:00")

	verdict := ValidateAssignment(proposed, emp, []shift.Shift{existing}, nil)

	assert.Equal(t, shift.ReasonConflictingShifts, verdict.Reason)
}
