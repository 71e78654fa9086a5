package analytics

import (
	"log/slog"
	"sort"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

type coverageKey struct {
	date     string
	location string
	team     string
}

// percentage computes n/d*100 with the denominator floored at 1, so an empty
// group reports 0 instead of NaN.
func percentage(n, d float64) float64 {
	if d < 1 {
		d = 1
	}
	return n / d * 100
}

// BuildCoverage groups a shift snapshot by (date, location, team, role),
// rolls the role rows up per (date, location, team) and sums a range-level
// summary. Shifts with malformed times are excluded with a logged anomaly so
// one bad row cannot sink the whole report.
func BuildCoverage(req analytics.ReportRequest, shifts []shift.Shift, generatedAt string) analytics.CoverageReport {
	type roleKey struct {
		coverageKey
		role string
	}

	roleRows := make(map[roleKey]*analytics.CoverageRoleBreakdown)
	var roleOrder []roleKey
	for _, s := range shifts {
		hours, err := s.DurationHours()
		if err != nil {
			slog.Warn("excluding shift with malformed times from coverage", "shift_id", s.ID, "error", err)
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
		row, ok := roleRows[key]
		if !ok {
			row = &analytics.CoverageRoleBreakdown{Role: key.role}
			roleRows[key] = row
			roleOrder = append(roleOrder, key)
		}
		row.TotalShifts++
		row.TotalHours += hours
		if s.IsAssigned() {
			row.AssignedShifts++
			row.AssignedHours += hours
		} else {
			row.UnassignedShifts++
			row.UnassignedHours += hours
		}
	}

	groups := make(map[coverageKey]*analytics.CoverageGroup)
	var groupOrder []coverageKey
	for _, key := range roleOrder {
		row := roleRows[key]
		row.CoveragePercentage = percentage(float64(row.AssignedShifts), float64(row.TotalShifts))
		row.HoursCoveragePercentage = percentage(row.AssignedHours, row.TotalHours)

		group, ok := groups[key.coverageKey]
		if !ok {
			group = &analytics.CoverageGroup{
				Date:     key.date,
				Location: key.location,
				Team:     key.team,
			}
			groups[key.coverageKey] = group
			groupOrder = append(groupOrder, key.coverageKey)
		}
		group.Roles = append(group.Roles, *row)
		group.TotalShifts += row.TotalShifts
		group.TotalHours += row.TotalHours
		group.AssignedShifts += row.AssignedShifts
		group.AssignedHours += row.AssignedHours
		group.UnassignedShifts += row.UnassignedShifts
		group.UnassignedHours += row.UnassignedHours
	}

	var summary analytics.CoverageSummary
	result := make([]analytics.CoverageGroup, 0, len(groupOrder))
	for _, key := range groupOrder {
		group := groups[key]
		group.CoveragePercentage = percentage(float64(group.AssignedShifts), float64(group.TotalShifts))
		group.HoursCoveragePercentage = percentage(group.AssignedHours, group.TotalHours)
		sort.SliceStable(group.Roles, func(i, j int) bool {
			return group.Roles[i].Role < group.Roles[j].Role
		})

		summary.TotalShifts += group.TotalShifts
		summary.TotalHours += group.TotalHours
		summary.AssignedShifts += group.AssignedShifts
		summary.AssignedHours += group.AssignedHours
		summary.UnassignedShifts += group.UnassignedShifts
		summary.UnassignedHours += group.UnassignedHours

		result = append(result, *group)
	}
	summary.CoveragePercentage = percentage(float64(summary.AssignedShifts), float64(summary.TotalShifts))
	summary.HoursCoveragePercentage = percentage(summary.AssignedHours, summary.TotalHours)

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

	return analytics.CoverageReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: generatedAt,
		Summary:     summary,
		Groups:      result,
	}
}
