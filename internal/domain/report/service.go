package report

import "context"

// ReportService assembles statistics into read-side reports.
type ReportService interface {
	// EmployeeSummary computes one employee's statistics over the last
	// req.Days calendar days.
	EmployeeSummary(ctx context.Context, req EmployeeSummaryRequest) (EmployeeSummary, error)

	// DepartmentReport runs the summary pipeline for every employee in a
	// designation and derives the department-wide average percentage.
	DepartmentReport(ctx context.Context, req DepartmentReportRequest) (DepartmentReport, error)

	// LateArrivals lists every late punch-in within the last req.Days days.
	LateArrivals(ctx context.Context, req LateArrivalsRequest) (LateArrivalsReport, error)

	// Overview aggregates the whole organization's records per status over
	// the last req.Days days.
	Overview(ctx context.Context, req OverviewRequest) (Overview, error)
}
