package tools

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

type fakeEmployeeService struct {
	getByID           func(req employee.LookupByIDRequest) (employee.EmployeeResponse, error)
	getByEmail        func(req employee.LookupByEmailRequest) (employee.EmployeeResponse, error)
	listByDesignation func(req employee.ListByDesignationRequest) (employee.ListEmployeesResponse, error)
}

func (f *fakeEmployeeService) GetByID(_ context.Context, req employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
	return f.getByID(req)
}

func (f *fakeEmployeeService) GetByEmail(_ context.Context, req employee.LookupByEmailRequest) (employee.EmployeeResponse, error) {
	return f.getByEmail(req)
}

func (f *fakeEmployeeService) ListByDesignation(_ context.Context, req employee.ListByDesignationRequest) (employee.ListEmployeesResponse, error) {
	return f.listByDesignation(req)
}

type fakeAttendanceService struct {
	mark func(req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error)
}

func (f *fakeAttendanceService) Mark(_ context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	return f.mark(req)
}

type fakeReportService struct {
	employeeSummary  func(req report.EmployeeSummaryRequest) (report.EmployeeSummary, error)
	departmentReport func(req report.DepartmentReportRequest) (report.DepartmentReport, error)
	lateArrivals     func(req report.LateArrivalsRequest) (report.LateArrivalsReport, error)
	overview         func(req report.OverviewRequest) (report.Overview, error)
}

func (f *fakeReportService) EmployeeSummary(_ context.Context, req report.EmployeeSummaryRequest) (report.EmployeeSummary, error) {
	return f.employeeSummary(req)
}

func (f *fakeReportService) DepartmentReport(_ context.Context, req report.DepartmentReportRequest) (report.DepartmentReport, error) {
	return f.departmentReport(req)
}

func (f *fakeReportService) LateArrivals(_ context.Context, req report.LateArrivalsRequest) (report.LateArrivalsReport, error) {
	return f.lateArrivals(req)
}

func (f *fakeReportService) Overview(_ context.Context, req report.OverviewRequest) (report.Overview, error) {
	return f.overview(req)
}

func newTestRegistry(emp *fakeEmployeeService, att *fakeAttendanceService, rep *fakeReportService) *Registry {
	if emp == nil {
		emp = &fakeEmployeeService{}
	}
	if att == nil {
		att = &fakeAttendanceService{}
	}
	if rep == nil {
		rep = &fakeReportService{}
	}
	return NewRegistry(emp, att, rep)
}

func TestRegistryList(t *testing.T) {
	registry := newTestRegistry(nil, nil, nil)

	tools := registry.List()
	require.Len(t, tools, 8)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	assert.Equal(t, []string{
		"search_employee_by_email",
		"search_employee_by_id",
		"search_employees_by_designation",
		"get_employee_attendance_summary",
		"mark_attendance",
		"get_department_attendance_report",
		"get_late_arrivals",
		"get_attendance_overview",
	}, names)
}

func TestRegistryUnknownTool(t *testing.T) {
	registry := newTestRegistry(nil, nil, nil)

	_, err := registry.Invoke(context.Background(), "no_such_tool", "input")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestSearchEmployeeByID(t *testing.T) {
	emp := &fakeEmployeeService{
		getByID: func(req employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, validID, req.EmployeeID)
			return employee.EmployeeResponse{
				ID:          validID,
				Name:        "Maya Iyer",
				Email:       "maya@attendly.io",
				Role:        "employee",
				Designation: "Engineering",
			}, nil
		},
	}
	registry := newTestRegistry(emp, nil, nil)

	result, err := registry.Invoke(context.Background(), "search_employee_by_id", validID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Text, "👤 Employee Information"))
	assert.Contains(t, result.Text, "Maya Iyer")
	assert.Contains(t, result.Text, "🟢 Active")
}

func TestSearchEmployeeByIDNotFound(t *testing.T) {
	emp := &fakeEmployeeService{
		getByID: func(employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		},
	}
	registry := newTestRegistry(emp, nil, nil)

	result, err := registry.Invoke(context.Background(), "search_employee_by_id", validID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.Equal(t, "❌ No employee found with ID: "+validID, result.Text)
}

func TestSummaryCompositeDays(t *testing.T) {
	var gotDays int
	rep := &fakeReportService{
		employeeSummary: func(req report.EmployeeSummaryRequest) (report.EmployeeSummary, error) {
			gotDays = req.Days
			return report.EmployeeSummary{
				Employee:     employee.EmployeeResponse{Name: "Maya Iyer", Email: "maya@attendly.io"},
				Days:         req.Days,
				TotalRecords: 10,
				Statistics:   attendance.Statistics{PresentDays: 10, PresentPercentage: 16.7},
				Insight:      "Attendance needs improvement.",
			}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_employee_attendance_summary", validID+",60")
	require.NoError(t, err)
	assert.Equal(t, 60, gotDays)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, result.Text, "📊 Attendance Summary - Last 60 Days")
	assert.Contains(t, result.Text, "💡 Attendance needs improvement.")

	// An unparsable day count degrades to the default instead of failing.
	_, err = registry.Invoke(context.Background(), "get_employee_attendance_summary", validID+",notanumber")
	require.NoError(t, err)
	assert.Equal(t, report.DefaultSummaryDays, gotDays)
}

func TestSummaryMalformedID(t *testing.T) {
	registry := newTestRegistry(nil, nil, &fakeReportService{
		employeeSummary: func(report.EmployeeSummaryRequest) (report.EmployeeSummary, error) {
			t.Fatal("service must not be reached with a malformed ID")
			return report.EmployeeSummary{}, nil
		},
	})

	result, err := registry.Invoke(context.Background(), "get_employee_attendance_summary", "notanid,60")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Text, "❌"))
	assert.Contains(t, result.Text, "notanid")
}

func TestSummaryNoRecords(t *testing.T) {
	rep := &fakeReportService{
		employeeSummary: func(req report.EmployeeSummaryRequest) (report.EmployeeSummary, error) {
			return report.EmployeeSummary{
				Employee: employee.EmployeeResponse{Name: "Maya Iyer"},
				Days:     req.Days,
			}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_employee_attendance_summary", validID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, "📊 No attendance records found for Maya Iyer in the last 30 days.", result.Text)
}

func TestMarkAttendanceSuccess(t *testing.T) {
	emp := &fakeEmployeeService{
		getByID: func(employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: validID, Name: "Maya Iyer"}, nil
		},
	}
	att := &fakeAttendanceService{
		mark: func(req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
			assert.Equal(t, "09:45", req.PunchInTime)
			return attendance.MarkAttendanceResponse{
				EmployeeName: "Maya Iyer",
				Date:         "2025-06-18",
				PunchIn:      "09:45",
				Status:       attendance.StatusLate,
			}, nil
		},
	}
	registry := newTestRegistry(emp, att, nil)

	result, err := registry.Invoke(context.Background(), "mark_attendance", validID+",09:45")
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, result.Text, "✅ Attendance marked successfully!")
	assert.Contains(t, result.Text, "Status: Late")
	assert.Contains(t, result.Text, "⚠️ Note: Marked as late (punch-in after 09:30)")
}

func TestMarkAttendanceConflict(t *testing.T) {
	emp := &fakeEmployeeService{
		getByID: func(employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: validID, Name: "Maya Iyer"}, nil
		},
	}
	att := &fakeAttendanceService{
		mark: func(attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
			return attendance.MarkAttendanceResponse{}, attendance.ErrAlreadyMarked
		},
	}
	registry := newTestRegistry(emp, att, nil)

	result, err := registry.Invoke(context.Background(), "mark_attendance", validID)
	require.NoError(t, err)

	assert.Equal(t, OutcomeWarning, result.Outcome)
	assert.Equal(t, "⚠️ Attendance already marked for Maya Iyer today.", result.Text)
}

func TestMarkAttendanceInvalidTime(t *testing.T) {
	emp := &fakeEmployeeService{
		getByID: func(employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: validID, Name: "Maya Iyer"}, nil
		},
	}
	att := &fakeAttendanceService{
		mark: func(attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
			return attendance.MarkAttendanceResponse{}, validator.ValidationErrors{{
				Field:   "punch_in_time",
				Message: "punch_in_time must be in HH:MM format",
			}}
		},
	}
	registry := newTestRegistry(emp, att, nil)

	result, err := registry.Invoke(context.Background(), "mark_attendance", validID+",25:99")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Text, "❌"))
}

func TestDepartmentReportComposite(t *testing.T) {
	var gotReq report.DepartmentReportRequest
	rep := &fakeReportService{
		departmentReport: func(req report.DepartmentReportRequest) (report.DepartmentReport, error) {
			gotReq = req
			return report.DepartmentReport{
				Designation:    req.Designation,
				Days:           req.Days,
				TotalEmployees: 1,
				Rows: []report.DepartmentReportRow{{
					Employee:   employee.EmployeeResponse{Name: "Maya Iyer"},
					Statistics: attendance.Statistics{PresentDays: 40, LateDays: 3, PresentPercentage: 66.7},
				}},
				AveragePercentage: 66.7,
			}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_department_attendance_report", "Engineering,60")
	require.NoError(t, err)

	assert.Equal(t, "Engineering", gotReq.Designation)
	assert.Equal(t, 60, gotReq.Days)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, result.Text, "🏢 Department: Engineering")
	assert.Contains(t, result.Text, "Present: 40/60 days (66.7%)")
	assert.Contains(t, result.Text, "📈 Department Average: 66.7%")
}

func TestDepartmentReportUnknownDesignation(t *testing.T) {
	rep := &fakeReportService{
		departmentReport: func(report.DepartmentReportRequest) (report.DepartmentReport, error) {
			return report.DepartmentReport{}, employee.ErrDepartmentNotFound
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_department_attendance_report", "Astrology")
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, result.Outcome)
	assert.Equal(t, "❌ No employees found in designation: Astrology", result.Text)
}

func TestLateArrivals(t *testing.T) {
	rep := &fakeReportService{
		lateArrivals: func(req report.LateArrivalsRequest) (report.LateArrivalsReport, error) {
			return report.LateArrivalsReport{
				Days:  req.Days,
				Total: 1,
				Arrivals: []attendance.LateArrival{{
					EmployeeName:  "Maya Iyer",
					EmployeeEmail: "maya@attendly.io",
					Date:          "2025-06-17",
					PunchIn:       "10:05",
				}},
			}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_late_arrivals", "7")
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, result.Text, "⏰ Late Arrivals - Last 7 Days")
	assert.Contains(t, result.Text, "Maya Iyer (maya@attendly.io)")
	assert.Contains(t, result.Text, "Date: 2025-06-17, Punch In: 10:05")
}

func TestLateArrivalsEmpty(t *testing.T) {
	rep := &fakeReportService{
		lateArrivals: func(req report.LateArrivalsRequest) (report.LateArrivalsReport, error) {
			return report.LateArrivalsReport{Days: req.Days}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_late_arrivals", "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, "✅ No late arrivals in the last 7 days. Great!", result.Text)
}

func TestStoreUnavailableBecomesWarning(t *testing.T) {
	rep := &fakeReportService{
		lateArrivals: func(report.LateArrivalsRequest) (report.LateArrivalsReport, error) {
			return report.LateArrivalsReport{}, fmt.Errorf("failed to list late arrivals: %w: connection refused", database.ErrUnavailable)
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_late_arrivals", "7")
	require.NoError(t, err)

	assert.Equal(t, OutcomeWarning, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Text, "⚠️"))
}

func TestOverview(t *testing.T) {
	rep := &fakeReportService{
		overview: func(req report.OverviewRequest) (report.Overview, error) {
			return report.Overview{
				Days:         req.Days,
				PeriodFrom:   "2025-05-19",
				PeriodTo:     "2025-06-18",
				TotalRecords: 42,
				TotalHours:   310.5,
				ByStatus: attendance.StatusBreakdown{
					attendance.StatusPresent: {Count: 30, TotalHours: 240},
					attendance.StatusLate:    {Count: 12, TotalHours: 70.5},
				},
			}, nil
		},
	}
	registry := newTestRegistry(nil, nil, rep)

	result, err := registry.Invoke(context.Background(), "get_attendance_overview", "")
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, result.Text, "📊 Attendance Overview - Last 30 Days")
	assert.Contains(t, result.Text, "🗂️ Total Records: 42")

	// Present must render before Late regardless of map ordering.
	presentIdx := strings.Index(result.Text, "• Present:")
	lateIdx := strings.Index(result.Text, "• Late:")
	require.NotEqual(t, -1, presentIdx)
	require.NotEqual(t, -1, lateIdx)
	assert.Less(t, presentIdx, lateIdx)
}
