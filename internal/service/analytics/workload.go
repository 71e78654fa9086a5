package analytics

import (
	"log/slog"
	"math"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// BuildWorkload groups a shift snapshot by assigned employee and derives
// per-employee load and utilization. The weekly average divides total hours
// by the number of weeks the query window spans, rounded up, so short windows
// are not inflated. Utilization divides by the employee's declared weekly
// maximum with a floor of 1; the adjusted figure is clamped to 100 and forced
// to 0 for employees with no declared maximum.
func BuildWorkload(req analytics.ReportRequest, shifts []shift.Shift, employees []employee.Employee, leaves []leave.LeaveRequest, generatedAt string) analytics.WorkloadReport {
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	leaveDays := make(map[string]int)
	for _, l := range leaves {
		if l.Status == leave.StatusApproved {
			leaveDays[l.EmployeeID] += l.TotalDays()
		}
	}

	weeks := math.Ceil(float64(req.RangeDays()) / 7)
	if weeks < 1 {
		weeks = 1
	}

	rows := make(map[string]*analytics.WorkloadRow)
	var order []string
	for _, s := range shifts {
		if !s.IsAssigned() {
			continue
		}
		hours, err := s.DurationHours()
		if err != nil {
			slog.Warn("excluding shift with malformed times from workload", "shift_id", s.ID, "error", err)
			continue
		}
		id := *s.EmployeeID
		row, ok := rows[id]
		if !ok {
			row = &analytics.WorkloadRow{EmployeeID: id}
			if e, found := byID[id]; found {
				row.EmployeeName = e.FullName
				row.MaxHoursPerWeek = e.MaxHoursPerWeek
			}
			row.ApprovedLeaveDays = leaveDays[id]
			rows[id] = row
			order = append(order, id)
		}
		row.TotalShifts++
		row.TotalHours += hours
		if s.IsOvernight() {
			row.OvernightShifts++
		}
		if s.IsWeekend() {
			row.WeekendShifts++
		}
	}

	var summary analytics.WorkloadSummary
	result := make([]analytics.WorkloadRow, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if row.TotalShifts > 0 {
			row.AverageShiftDuration = row.TotalHours / float64(row.TotalShifts)
		}
		row.AverageHoursPerWeek = row.TotalHours / weeks

		denominator := row.MaxHoursPerWeek
		if denominator < 1 {
			denominator = 1
		}
		row.UtilizationPercentage = row.AverageHoursPerWeek / denominator * 100
		switch {
		case row.MaxHoursPerWeek <= 0:
			row.AdjustedUtilizationPercentage = 0
		case row.UtilizationPercentage > 100:
			row.AdjustedUtilizationPercentage = 100
		default:
			row.AdjustedUtilizationPercentage = row.UtilizationPercentage
		}

		summary.TotalEmployees++
		if row.UtilizationPercentage > 100 {
			summary.OverUtilizedCount++
		}
		if row.UtilizationPercentage < 50 {
			summary.UnderUtilizedCount++
		}

		result = append(result, *row)
	}

	return analytics.WorkloadReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: generatedAt,
		Summary:     summary,
		Employees:   result,
	}
}
