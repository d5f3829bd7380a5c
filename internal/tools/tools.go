package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
)

// toolset binds the tool functions to the services they dispatch into.
type toolset struct {
	employees   employee.EmployeeService
	attendances attendance.AttendanceService
	reports     report.ReportService
}

func (t *toolset) searchEmployeeByEmail(ctx context.Context, input string) (string, Outcome) {
	email := strings.TrimSpace(input)

	resp, err := t.employees.GetByEmail(ctx, employee.LookupByEmailRequest{Email: email})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "❌ No employee found with email: " + email, OutcomeRejected
		}
		return renderError(err)
	}

	return formatEmployeeInfo(resp), OutcomeSuccess
}

func (t *toolset) searchEmployeeByID(ctx context.Context, input string) (string, Outcome) {
	id := strings.TrimSpace(input)

	resp, err := t.employees.GetByID(ctx, employee.LookupByIDRequest{EmployeeID: id})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "❌ No employee found with ID: " + id, OutcomeRejected
		}
		return renderError(err)
	}

	return formatEmployeeInfo(resp), OutcomeSuccess
}

func (t *toolset) searchEmployeesByDesignation(ctx context.Context, input string) (string, Outcome) {
	designation := strings.TrimSpace(input)

	resp, err := t.employees.ListByDesignation(ctx, employee.ListByDesignationRequest{Designation: designation})
	if err != nil {
		if errors.Is(err, employee.ErrDepartmentNotFound) {
			return "❌ No employees found in designation: " + designation, OutcomeRejected
		}
		return renderError(err)
	}

	return formatEmployeeList(resp), OutcomeSuccess
}

func (t *toolset) attendanceSummary(ctx context.Context, input string) (string, Outcome) {
	id, days, err := ParseIdentityAndDays(input, report.DefaultSummaryDays)
	if err != nil {
		return renderError(err)
	}

	summary, err := t.reports.EmployeeSummary(ctx, report.EmployeeSummaryRequest{EmployeeID: id, Days: days})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "❌ No employee found with ID: " + id, OutcomeRejected
		}
		return renderError(err)
	}

	if summary.TotalRecords == 0 {
		return fmt.Sprintf("📊 No attendance records found for %s in the last %d days.", summary.Employee.Name, days), OutcomeSuccess
	}

	return formatSummary(summary), OutcomeSuccess
}

func (t *toolset) markAttendance(ctx context.Context, input string) (string, Outcome) {
	id, punchIn, err := ParseIdentityAndTime(input)
	if err != nil {
		return renderError(err)
	}

	// Resolved up front so the conflict message can name the employee.
	emp, err := t.employees.GetByID(ctx, employee.LookupByIDRequest{EmployeeID: id})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "❌ No employee found with ID: " + id, OutcomeRejected
		}
		return renderError(err)
	}

	resp, err := t.attendances.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: id, PunchInTime: punchIn})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			return fmt.Sprintf("⚠️ Attendance already marked for %s today.", emp.Name), OutcomeWarning
		}
		return renderError(err)
	}

	return formatMark(resp), OutcomeSuccess
}

func (t *toolset) departmentReport(ctx context.Context, input string) (string, Outcome) {
	designation, days := ParseNameAndDays(input, report.DefaultSummaryDays)

	rep, err := t.reports.DepartmentReport(ctx, report.DepartmentReportRequest{Designation: designation, Days: days})
	if err != nil {
		if errors.Is(err, employee.ErrDepartmentNotFound) {
			return "❌ No employees found in designation: " + designation, OutcomeRejected
		}
		return renderError(err)
	}

	return formatDepartmentReport(rep), OutcomeSuccess
}

func (t *toolset) lateArrivals(ctx context.Context, input string) (string, Outcome) {
	days := ParseDays(input, report.DefaultLateArrivalDays)

	rep, err := t.reports.LateArrivals(ctx, report.LateArrivalsRequest{Days: days})
	if err != nil {
		return renderError(err)
	}

	if rep.Total == 0 {
		return fmt.Sprintf("✅ No late arrivals in the last %d days. Great!", days), OutcomeSuccess
	}

	return formatLateArrivals(rep), OutcomeSuccess
}

func (t *toolset) attendanceOverview(ctx context.Context, input string) (string, Outcome) {
	days := ParseDays(input, report.DefaultSummaryDays)

	overview, err := t.reports.Overview(ctx, report.OverviewRequest{Days: days})
	if err != nil {
		return renderError(err)
	}

	return formatOverview(overview), OutcomeSuccess
}
