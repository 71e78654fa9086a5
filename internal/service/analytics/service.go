package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/analytics"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/employee"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/leave"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// analyticsServiceImpl fetches record snapshots through the repositories and
// delegates to the pure report builders. It holds no state between requests,
// so independent reports can run concurrently without coordination.
type analyticsServiceImpl struct {
	shiftRepo    shift.Repository
	employeeRepo employee.Repository
	leaveRepo    leave.Repository
}

func NewAnalyticsService(shiftRepo shift.Repository, employeeRepo employee.Repository, leaveRepo leave.Repository) analytics.Service {
	return &analyticsServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
	}
}

// reportStatuses are the lifecycle states that count toward coverage,
// workload and utilization. Cancelled shifts never contribute.
var reportStatuses = []shift.Status{shift.StatusScheduled, shift.StatusInProgress, shift.StatusCompleted}

func (s *analyticsServiceImpl) fetchShifts(ctx context.Context, req analytics.ReportRequest, statuses []shift.Status) ([]shift.Shift, error) {
	start, end := req.Range()
	return s.shiftRepo.ListInRange(ctx, shift.RangeFilter{
		StartDate: start,
		EndDate:   end,
		Location:  req.Location,
		Team:      req.Team,
		Statuses:  statuses,
	})
}

func (s *analyticsServiceImpl) BuildCoverageReport(ctx context.Context, req analytics.ReportRequest) (analytics.CoverageReport, error) {
	if err := req.Validate(); err != nil {
		return analytics.CoverageReport{}, err
	}

	shifts, err := s.fetchShifts(ctx, req, reportStatuses)
	if err != nil {
		return analytics.CoverageReport{}, fmt.Errorf("failed to get shift data: %w", err)
	}

	return BuildCoverage(req, shifts, time.Now().Format(time.RFC3339)), nil
}

func (s *analyticsServiceImpl) BuildConflictReport(ctx context.Context, req analytics.ReportRequest) (analytics.ConflictReport, error) {
	if err := req.Validate(); err != nil {
		return analytics.ConflictReport{}, err
	}

	// Only scheduled and in-progress shifts can conflict; cancelled and
	// completed shifts are not conflict sources.
	shifts, err := s.fetchShifts(ctx, req, shift.ConflictStatuses)
	if err != nil {
		return analytics.ConflictReport{}, fmt.Errorf("failed to get shift data: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return analytics.ConflictReport{}, fmt.Errorf("failed to get employee data: %w", err)
	}

	start, end := req.Range()
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, nil, start, end)
	if err != nil {
		return analytics.ConflictReport{}, fmt.Errorf("failed to get leave data: %w", err)
	}

	return BuildConflicts(req, shifts, employees, leaves, time.Now().Format(time.RFC3339)), nil
}

func (s *analyticsServiceImpl) BuildWorkloadReport(ctx context.Context, req analytics.ReportRequest) (analytics.WorkloadReport, error) {
	if err := req.Validate(); err != nil {
		return analytics.WorkloadReport{}, err
	}

	shifts, err := s.fetchShifts(ctx, req, reportStatuses)
	if err != nil {
		return analytics.WorkloadReport{}, fmt.Errorf("failed to get shift data: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return analytics.WorkloadReport{}, fmt.Errorf("failed to get employee data: %w", err)
	}

	start, end := req.Range()
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, nil, start, end)
	if err != nil {
		return analytics.WorkloadReport{}, fmt.Errorf("failed to get leave data: %w", err)
	}

	return BuildWorkload(req, shifts, employees, leaves, time.Now().Format(time.RFC3339)), nil
}

func (s *analyticsServiceImpl) BuildUtilizationReport(ctx context.Context, req analytics.ReportRequest) (analytics.UtilizationReport, error) {
	if err := req.Validate(); err != nil {
		return analytics.UtilizationReport{}, err
	}

	shifts, err := s.fetchShifts(ctx, req, reportStatuses)
	if err != nil {
		return analytics.UtilizationReport{}, fmt.Errorf("failed to get shift data: %w", err)
	}

	return BuildUtilization(req, shifts, time.Now().Format(time.RFC3339)), nil
}

func (s *analyticsServiceImpl) BuildCapacityReport(ctx context.Context, location, team *string) (analytics.CapacityReport, error) {
	employees, err := s.employeeRepo.ListActive(ctx, location, team)
	if err != nil {
		return analytics.CapacityReport{}, fmt.Errorf("failed to get employee data: %w", err)
	}

	return BuildCapacity(employees, time.Now().Format(time.RFC3339)), nil
}
