package analytics

import "context"

// Service builds the four range reports plus the capacity snapshot. Every
// report is deterministic for a given set of fetched records; the
// implementations fetch a snapshot and delegate to pure builders.
type Service interface {
	BuildCoverageReport(ctx context.Context, req ReportRequest) (CoverageReport, error)
	BuildConflictReport(ctx context.Context, req ReportRequest) (ConflictReport, error)
	BuildWorkloadReport(ctx context.Context, req ReportRequest) (WorkloadReport, error)
	BuildUtilizationReport(ctx context.Context, req ReportRequest) (UtilizationReport, error)
	BuildCapacityReport(ctx context.Context, location, team *string) (CapacityReport, error)
}
