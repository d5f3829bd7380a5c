package report

import (
	"context"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/pkg/period"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// window picks the query range: the caller's explicit period when present,
// otherwise the trailing days anchored at now. Either way the range and the
// day count describe the same span.
func (s *ReportServiceImpl) window(p *period.Range, days int) period.Range {
	if p != nil {
		return *p
	}
	return period.LastNDays(s.now(), days)
}

// EmployeeSummary implements report.ReportService.
func (s *ReportServiceImpl) EmployeeSummary(ctx context.Context, req report.EmployeeSummaryRequest) (report.EmployeeSummary, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeSummary{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeSummary{}, err
	}

	rng := s.window(req.Period, req.Days)

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, rng.Start, rng.End)
	if err != nil {
		return report.EmployeeSummary{}, err
	}

	// The denominator is the requested calendar span, not the record count:
	// missing days are absences.
	stats := attendance.ComputeStatistics(records, req.Days)

	return report.EmployeeSummary{
		Employee:     employee.NewEmployeeResponse(emp),
		PeriodFrom:   rng.Start.Format("2006-01-02"),
		PeriodTo:     rng.End.Format("2006-01-02"),
		Days:         req.Days,
		TotalRecords: len(records),
		Statistics:   stats,
		Grade:        attendance.Grade(stats.PresentPercentage),
		Insight:      attendance.Insight(stats.PresentPercentage),
	}, nil
}

// DepartmentReport implements report.ReportService.
func (s *ReportServiceImpl) DepartmentReport(ctx context.Context, req report.DepartmentReportRequest) (report.DepartmentReport, error) {
	if err := req.Validate(); err != nil {
		return report.DepartmentReport{}, err
	}

	employees, err := s.EmployeeRepository.ListByDesignation(ctx, req.Designation)
	if err != nil {
		return report.DepartmentReport{}, err
	}
	if len(employees) == 0 {
		return report.DepartmentReport{}, employee.ErrDepartmentNotFound
	}

	rng := s.window(req.Period, req.Days)

	result := report.DepartmentReport{
		Designation:    req.Designation,
		PeriodFrom:     rng.Start.Format("2006-01-02"),
		PeriodTo:       rng.End.Format("2006-01-02"),
		Days:           req.Days,
		TotalEmployees: len(employees),
		Rows:           make([]report.DepartmentReportRow, 0, len(employees)),
	}

	totalPresent := 0
	for _, emp := range employees {
		records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, emp.ID.Hex(), rng.Start, rng.End)
		if err != nil {
			return report.DepartmentReport{}, err
		}

		stats := attendance.ComputeStatistics(records, req.Days)
		totalPresent += stats.PresentDays

		result.Rows = append(result.Rows, report.DepartmentReportRow{
			Employee:   employee.NewEmployeeResponse(emp),
			Statistics: stats,
		})
	}

	result.AveragePercentage = float64(totalPresent) / float64(len(employees)*req.Days) * 100

	return result, nil
}

// LateArrivals implements report.ReportService.
func (s *ReportServiceImpl) LateArrivals(ctx context.Context, req report.LateArrivalsRequest) (report.LateArrivalsReport, error) {
	if err := req.Validate(); err != nil {
		return report.LateArrivalsReport{}, err
	}

	rng := s.window(req.Period, req.Days)

	arrivals, err := s.AttendanceRepository.ListLateArrivals(ctx, rng.Start, rng.End)
	if err != nil {
		return report.LateArrivalsReport{}, err
	}

	return report.LateArrivalsReport{
		Days:     req.Days,
		Total:    len(arrivals),
		Arrivals: arrivals,
	}, nil
}

// Overview implements report.ReportService.
func (s *ReportServiceImpl) Overview(ctx context.Context, req report.OverviewRequest) (report.Overview, error) {
	if err := req.Validate(); err != nil {
		return report.Overview{}, err
	}

	rng := s.window(req.Period, req.Days)

	breakdown, err := s.AttendanceRepository.GroupByStatus(ctx, attendance.StatusFilter{
		Start:  rng.Start,
		End:    rng.End,
		Status: attendance.Status(req.Status),
	})
	if err != nil {
		return report.Overview{}, err
	}

	return report.Overview{
		Days:         req.Days,
		PeriodFrom:   rng.Start.Format("2006-01-02"),
		PeriodTo:     rng.End.Format("2006-01-02"),
		TotalRecords: breakdown.TotalRecords(),
		TotalHours:   breakdown.TotalHours(),
		ByStatus:     breakdown,
	}, nil
}
