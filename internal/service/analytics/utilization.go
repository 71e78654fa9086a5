package analytics

import (
	"log/slog"
	"sort"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// BuildUtilization groups a shift snapshot by (date, location, team, role),
// counting distinct assigned employees per group rather than shifts, then
// rolls up per (date, location, team). The rollup sums the per-role distinct
// counts, so an employee working two roles in the same group counts once per
// role.
func BuildUtilization(req analytics.ReportRequest, shifts []shift.Shift, generatedAt string) analytics.UtilizationReport {
	type roleKey struct {
		coverageKey
		role string
	}
	type roleAgg struct {
		hours     float64
		shifts    int
		employees map[string]struct{}
	}

	aggs := make(map[roleKey]*roleAgg)
	var order []roleKey
	for _, s := range shifts {
		hours, err := s.DurationHours()
		if err != nil {
			slog.Warn("excluding shift with malformed times from utilization", "shift_id", s.ID, "error", err)
			continue
		}
		key := roleKey{
			coverageKey: coverageKey{
				date:     s.Date.Format("2006-01-02"),
				location: s.Location,
				team:     s.Team,
			},
			role: string(s.RequiredRole),
		}
		agg, ok := aggs[key]
		if !ok {
			agg = &roleAgg{employees: make(map[string]struct{})}
			aggs[key] = agg
			order = append(order, key)
		}
		agg.hours += hours
		agg.shifts++
		if s.IsAssigned() {
			agg.employees[*s.EmployeeID] = struct{}{}
		}
	}

	groups := make(map[coverageKey]*analytics.UtilizationGroup)
	var groupOrder []coverageKey
	for _, key := range order {
		agg := aggs[key]
		row := analytics.UtilizationRoleRow{
			Role:          key.role,
			TotalHours:    agg.hours,
			TotalShifts:   agg.shifts,
			EmployeeCount: len(agg.employees),
		}
		if row.EmployeeCount > 0 {
			row.AverageHoursPerEmployee = row.TotalHours / float64(row.EmployeeCount)
		}

		group, ok := groups[key.coverageKey]
		if !ok {
			group = &analytics.UtilizationGroup{
				Date:     key.date,
				Location: key.location,
				Team:     key.team,
			}
			groups[key.coverageKey] = group
			groupOrder = append(groupOrder, key.coverageKey)
		}
		group.Roles = append(group.Roles, row)
		group.TotalHours += row.TotalHours
		group.TotalShifts += row.TotalShifts
		group.EmployeeCount += row.EmployeeCount
	}

	result := make([]analytics.UtilizationGroup, 0, len(groupOrder))
	for _, key := range groupOrder {
		group := groups[key]
		if group.EmployeeCount > 0 {
			group.AverageHoursPerEmployee = group.TotalHours / float64(group.EmployeeCount)
		}
		sort.SliceStable(group.Roles, func(i, j int) bool {
			return group.Roles[i].Role < group.Roles[j].Role
		})
		result = append(result, *group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		return a.Team < b.Team
	})

	return analytics.UtilizationReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: generatedAt,
		Groups:      result,
	}
}

// BuildCapacity groups active employees by (location, team, role), summing
// their declared weekly maximums. It is independent of scheduled shifts.
func BuildCapacity(employees []employee.Employee, generatedAt string) analytics.CapacityReport {
	type capacityKey struct {
		location string
		team     string
		role     string
	}

	groups := make(map[capacityKey]*analytics.CapacityGroup)
	var order []capacityKey
	for _, e := range employees {
		if !e.IsActive {
			continue
		}
		key := capacityKey{location: e.Location, team: e.Team, role: string(e.Role)}
		group, ok := groups[key]
		if !ok {
			group = &analytics.CapacityGroup{
				Location: key.location,
				Team:     key.team,
				Role:     key.role,
			}
			groups[key] = group
			order = append(order, key)
		}
		group.EmployeeCount++
		group.TotalCapacity += e.MaxHoursPerWeek
	}

	result := make([]analytics.CapacityGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Role < b.Role
	})

	return analytics.CapacityReport{
		GeneratedAt: generatedAt,
		Groups:      result,
	}
}
