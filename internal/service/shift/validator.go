package shift

import (
	"log/slog"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// ValidateAssignment decides whether emp may work s, given the employee's
// other shifts on the same date (already filtered to scheduled/in-progress,
// with the shift under edit excluded) and their leave records. It is a pure
// read-only decision: the first failing check wins and nothing is persisted
// here.
//
// Check order: existence/active status, shift conflicts, weekday
// availability, skills, approved leave.
func ValidateAssignment(s shift.Shift, emp *employee.Employee, sameDayShifts []shift.Shift, leaves []leave.LeaveRequest) shift.AssignmentVerdict {
	if emp == nil {
		return shift.IneligibleVerdict(shift.ReasonEmployeeNotFound)
	}
	if !emp.IsActive {
		return shift.IneligibleVerdict(shift.ReasonEmployeeInactive)
	}

	if conflicts := findConflicts(s, sameDayShifts); len(conflicts) > 0 {
		verdict := shift.IneligibleVerdict(shift.ReasonConflictingShifts)
		verdict.Conflicts = conflicts
		return verdict
	}

	if !emp.AvailableOn(s.Date) {
		return shift.IneligibleVerdict(shift.ReasonEmployeeUnavailableOnDay)
	}

	if !emp.HasAnySkill(s.RequiredSkills) {
		return shift.IneligibleVerdict(shift.ReasonInsufficientSkills)
	}

	for _, l := range leaves {
		if l.Status == leave.StatusApproved && l.ContainsDate(s.Date) {
			return shift.IneligibleVerdict(shift.ReasonTimeOffConflict)
		}
	}

	return shift.EligibleVerdict()
}

// findConflicts is the targeted conflict scan: it tests the proposed shift's
// interval against each candidate. Candidates with malformed times are
// skipped with a logged anomaly.
func findConflicts(s shift.Shift, candidates []shift.Shift) []shift.Shift {
	proposed, err := s.Interval()
	if err != nil {
		slog.Warn("proposed shift has malformed times", "shift_id", s.ID, "error", err)
		return nil
	}

	var conflicts []shift.Shift
	for _, c := range candidates {
		if c.ID != "" && c.ID == s.ID {
			continue
		}
		iv, err := c.Interval()
		if err != nil {
			slog.Warn("skipping shift with malformed times", "shift_id", c.ID, "error", err)
			continue
		}
		if proposed.Overlaps(iv) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}
