package analytics

import (
	"log/slog"
	"sort"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// ScanShiftConflicts runs the bulk pairwise overlap scan over one employee's
// shifts. It returns the shifts that overlap at least one other shift in the
// set, plus the total counterpart-overlap count: each shift contributes the
// number of other shifts it overlaps, so a mutual pair of two shifts
// contributes 2 to the total. Shifts with unparsable times are skipped and
// logged rather than failing the scan.
func ScanShiftConflicts(shifts []shift.Shift) ([]shift.Shift, int) {
	intervals := make([]shift.Interval, len(shifts))
	valid := make([]bool, len(shifts))
	for i := range shifts {
		iv, err := shifts[i].Interval()
		if err != nil {
			slog.Warn("skipping shift with malformed times", "shift_id", shifts[i].ID, "error", err)
			continue
		}
		intervals[i] = iv
		valid[i] = true
	}

	var conflicting []shift.Shift
	total := 0
	for i := range shifts {
		if !valid[i] {
			continue
		}
		counterparts := 0
		for j := range shifts {
			if i == j || !valid[j] {
				continue
			}
			if intervals[i].Overlaps(intervals[j]) {
				counterparts++
			}
		}
		if counterparts > 0 {
			conflicting = append(conflicting, shifts[i])
			total += counterparts
		}
	}
	return conflicting, total
}

// BuildConflicts assembles the conflict report from a fetched snapshot.
// Shifts are expected to be scheduled or in-progress; leaves approved.
func BuildConflicts(req analytics.ReportRequest, shifts []shift.Shift, employees []employee.Employee, leaves []leave.LeaveRequest, generatedAt string) analytics.ConflictReport {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}

	// Group by assigned employee, keeping first-appearance order so ties in
	// the sort below stay deterministic.
	byEmployee := make(map[string][]shift.Shift)
	var order []string
	for _, s := range shifts {
		if !s.IsAssigned() {
			continue
		}
		id := *s.EmployeeID
		if _, seen := byEmployee[id]; !seen {
			order = append(order, id)
		}
		byEmployee[id] = append(byEmployee[id], s)
	}

	var rows []analytics.EmployeeConflicts
	for _, id := range order {
		group := byEmployee[id]
		// A single shift cannot conflict with itself.
		if len(group) < 2 {
			continue
		}
		conflicting, count := ScanShiftConflicts(group)
		if count == 0 {
			continue
		}
		row := analytics.EmployeeConflicts{
			EmployeeID:    id,
			EmployeeName:  names[id],
			ConflictCount: count,
		}
		for _, s := range conflicting {
			hours, err := s.DurationHours()
			if err == nil {
				row.TotalHours += hours
			}
			row.ConflictingShifts = append(row.ConflictingShifts, s.ToResponse())
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ConflictCount != rows[j].ConflictCount {
			return rows[i].ConflictCount > rows[j].ConflictCount
		}
		return rows[i].TotalHours > rows[j].TotalHours
	})

	leaveConflicts := scanLeaveConflicts(byEmployee, names, leaves)

	total := len(leaveConflicts)
	for _, row := range rows {
		total += row.ConflictCount
	}

	return analytics.ConflictReport{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		GeneratedAt:    generatedAt,
		TotalConflicts: total,
		ShiftConflicts: rows,
		LeaveConflicts: leaveConflicts,
	}
}

// scanLeaveConflicts tests every approved leave record against the same
// employee's shifts: a shift conflicts when its date falls inside the leave's
// closed date range.
func scanLeaveConflicts(byEmployee map[string][]shift.Shift, names map[string]string, leaves []leave.LeaveRequest) []analytics.LeaveConflict {
	var conflicts []analytics.LeaveConflict
	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		count := 0
		for _, s := range byEmployee[l.EmployeeID] {
			if l.ContainsDate(s.Date) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		conflicts = append(conflicts, analytics.LeaveConflict{
			EmployeeID:        l.EmployeeID,
			EmployeeName:      names[l.EmployeeID],
			LeaveRequestID:    l.ID,
			LeaveStartDate:    l.StartDate.Format("2006-01-02"),
			LeaveEndDate:      l.EndDate.Format("2006-01-02"),
			OverlappingShifts: count,
		})
	}
	return conflicts
}
