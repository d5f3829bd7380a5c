package tools

import (
	"context"
	"errors"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
)

var ErrUnknownTool = errors.New("unknown tool")

// Outcome classifies a tool result for callers that need more than prose:
// the text is for the end user, the outcome is for the dispatcher.
type Outcome string

const (
	// OutcomeSuccess means the tool produced the answer it was asked for.
	OutcomeSuccess Outcome = "success"
	// OutcomeRejected means the input was invalid or referenced nothing.
	OutcomeRejected Outcome = "rejected"
	// OutcomeWarning means an operational problem: a conflict or an
	// unreachable store. Retrying may help; fixing the input will not.
	OutcomeWarning Outcome = "warning"
)

// Result is one tool invocation's outcome and rendered text.
type Result struct {
	Tool    string  `json:"tool"`
	Outcome Outcome `json:"outcome"`
	Text    string  `json:"text"`
}

// ToolFunc takes the raw composite argument string and renders a result.
// It never returns an error: every failure becomes classified text.
type ToolFunc func(ctx context.Context, input string) (string, Outcome)

// Tool is one dispatchable operation with its planner-facing description.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	run ToolFunc
}

// Registry holds the fixed tool catalog. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

func NewRegistry(
	employees employee.EmployeeService,
	attendances attendance.AttendanceService,
	reports report.ReportService,
) *Registry {
	t := &toolset{
		employees:   employees,
		attendances: attendances,
		reports:     reports,
	}

	tools := []Tool{
		{
			Name:        "search_employee_by_email",
			Description: "Search for an employee by email address. Input: a valid email address. Returns the full profile with name, role, designation, contact details and status.",
			run:         t.searchEmployeeByEmail,
		},
		{
			Name:        "search_employee_by_id",
			Description: "Search for an employee by their unique ID. Input: a 24-character hexadecimal string. Returns the full profile with name, role, designation, contact details and status.",
			run:         t.searchEmployeeByID,
		},
		{
			Name:        "search_employees_by_designation",
			Description: "Find all employees in a department or designation. Input: the designation name. Returns each employee's name, email and phone number.",
			run:         t.searchEmployeesByDesignation,
		},
		{
			Name:        "get_employee_attendance_summary",
			Description: "Attendance summary for one employee. Input: \"id\" or \"id,days\" (default 30 days). Returns present, absent, late and work-from-home days, total and average hours, and the attendance percentage.",
			run:         t.attendanceSummary,
		},
		{
			Name:        "mark_attendance",
			Description: "Mark today's attendance for an employee. Input: \"id\" or \"id,HH:MM\" (defaults to the current time). Punch-ins after 09:30 are marked Late. Returns a confirmation with date, punch-in time and status.",
			run:         t.markAttendance,
		},
		{
			Name:        "get_department_attendance_report",
			Description: "Attendance report for a whole department. Input: \"designation\" or \"designation,days\" (default 30 days). Returns per-employee statistics and the department-wide average percentage.",
			run:         t.departmentReport,
		},
		{
			Name:        "get_late_arrivals",
			Description: "List every late punch-in across the organization. Input: number of days to look back (default 7). Returns employee names, emails, dates and punch-in times.",
			run:         t.lateArrivals,
		},
		{
			Name:        "get_attendance_overview",
			Description: "Organization-wide attendance breakdown by status. Input: number of days to look back (default 30). Returns record counts and worked hours per status.",
			run:         t.attendanceOverview,
		},
	}

	byName := make(map[string]int, len(tools))
	for i, tool := range tools {
		byName[tool.Name] = i
	}

	return &Registry{tools: tools, byName: byName}
}

// List returns the catalog in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Invoke dispatches one tool by name. ErrUnknownTool is the only error;
// everything a tool itself encounters is rendered into the Result.
func (r *Registry) Invoke(ctx context.Context, name, input string) (Result, error) {
	i, ok := r.byName[name]
	if !ok {
		return Result{}, ErrUnknownTool
	}

	text, outcome := r.tools[i].run(ctx, input)

	return Result{Tool: name, Outcome: outcome, Text: text}, nil
}
