package tools

import (
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// renderError turns an unhandled service error into classified text. Tool
// functions deal with the errors that need input context (not-found,
// conflicts) themselves; this is the shared tail of every tool.
func renderError(err error) (string, Outcome) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return "❌ " + verrs.Error(), OutcomeRejected
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		return "❌ Invalid employee ID format.", OutcomeRejected
	case errors.Is(err, attendance.ErrInvalidPunchTime):
		return "❌ Invalid time format. Please use HH:MM format.", OutcomeRejected
	case errors.Is(err, database.ErrUnavailable):
		return "⚠️ Could not reach the attendance store. Please try again later.", OutcomeWarning
	default:
		return "⚠️ An unexpected error occurred. Please try again.", OutcomeWarning
	}
}

func formatEmployeeInfo(e employee.EmployeeResponse) string {
	var b strings.Builder

	b.WriteString("👤 Employee Information\n\n")
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Email: %s\n", e.Email)
	fmt.Fprintf(&b, "Role: %s\n", e.Role)

	if e.Designation != "" {
		fmt.Fprintf(&b, "Designation: %s\n", e.Designation)
	}
	if e.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", e.Phone)
	}
	if e.DateOfJoining != "" {
		fmt.Fprintf(&b, "Date of Joining: %s\n", e.DateOfJoining)
	}
	if e.DateOfBirth != "" {
		fmt.Fprintf(&b, "Date of Birth: %s\n", e.DateOfBirth)
	}
	if e.BloodGroup != "" {
		fmt.Fprintf(&b, "Blood Group: %s\n", e.BloodGroup)
	}
	if e.EmergencyContactNumber != "" {
		fmt.Fprintf(&b, "Emergency Contact: %s\n", e.EmergencyContactNumber)
	}

	if e.IsDisabled {
		b.WriteString("\nStatus: 🔴 Disabled")
	} else {
		b.WriteString("\nStatus: 🟢 Active")
	}
	if e.IsWorkFromHome {
		b.WriteString(" | 🏠 Work From Home")
	}

	return b.String()
}

func formatEmployeeList(resp employee.ListEmployeesResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "👥 Employees in %s (%d total):\n\n", resp.Designation, resp.Total)

	for i, e := range resp.Employees {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, e.Name, e.Email)
		if e.Phone != "" {
			fmt.Fprintf(&b, "   📞 %s\n", e.Phone)
		}
	}

	return b.String()
}

func formatSummary(s report.EmployeeSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Attendance Summary - Last %d Days\n\n", s.Days)
	fmt.Fprintf(&b, "👤 Employee: %s (%s)\n", s.Employee.Name, s.Employee.Email)
	fmt.Fprintf(&b, "📅 Period: %s to %s\n\n", s.PeriodFrom, s.PeriodTo)

	fmt.Fprintf(&b, "✅ Present: %d days (%.1f%%)\n", s.Statistics.PresentDays, s.Statistics.PresentPercentage)
	fmt.Fprintf(&b, "❌ Absent: %d days\n", s.Statistics.AbsentDays)
	fmt.Fprintf(&b, "⏰ Late Arrivals: %d times\n", s.Statistics.LateDays)
	fmt.Fprintf(&b, "🏠 Work From Home: %d days\n", s.Statistics.WFHDays)
	fmt.Fprintf(&b, "⏱️ Total Hours: %.1f hours\n", s.Statistics.TotalHours)
	fmt.Fprintf(&b, "📈 Average: %.1f hours/day\n\n", s.Statistics.AvgHours)

	b.WriteString("💡 " + s.Insight)

	return b.String()
}

func formatMark(resp attendance.MarkAttendanceResponse) string {
	var b strings.Builder

	b.WriteString("✅ Attendance marked successfully!\n\n")
	fmt.Fprintf(&b, "👤 Employee: %s\n", resp.EmployeeName)
	fmt.Fprintf(&b, "📅 Date: %s\n", resp.Date)
	fmt.Fprintf(&b, "⏰ Punch In: %s\n", resp.PunchIn)
	fmt.Fprintf(&b, "📊 Status: %s\n", resp.Status)

	if resp.Status == attendance.StatusLate {
		fmt.Fprintf(&b, "\n⚠️ Note: Marked as late (punch-in after %s)", attendance.StandardStartTime)
	}

	return b.String()
}

func formatDepartmentReport(rep report.DepartmentReport) string {
	var b strings.Builder

	b.WriteString("📊 Department Attendance Report\n\n")
	fmt.Fprintf(&b, "🏢 Department: %s\n", rep.Designation)
	fmt.Fprintf(&b, "📅 Period: %s to %s\n", rep.PeriodFrom, rep.PeriodTo)
	fmt.Fprintf(&b, "👥 Total Employees: %d\n\n", rep.TotalEmployees)

	b.WriteString("📋 Individual Statistics:\n\n")

	for _, row := range rep.Rows {
		fmt.Fprintf(&b, "• %s\n", row.Employee.Name)
		fmt.Fprintf(&b, "  Present: %d/%d days (%.1f%%)\n", row.Statistics.PresentDays, rep.Days, row.Statistics.PresentPercentage)
		fmt.Fprintf(&b, "  Late: %d times\n\n", row.Statistics.LateDays)
	}

	fmt.Fprintf(&b, "📈 Department Average: %.1f%%\n", rep.AveragePercentage)

	return b.String()
}

func formatLateArrivals(rep report.LateArrivalsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "⏰ Late Arrivals - Last %d Days\n\n", rep.Days)
	fmt.Fprintf(&b, "Total: %d instances\n\n", rep.Total)

	for _, arrival := range rep.Arrivals {
		fmt.Fprintf(&b, "• %s (%s)\n", arrival.EmployeeName, arrival.EmployeeEmail)
		fmt.Fprintf(&b, "  Date: %s, Punch In: %s\n\n", arrival.Date, arrival.PunchIn)
	}

	return b.String()
}

// overviewOrder fixes the rendering order of status buckets; map iteration
// order would make the output flap between invocations.
var overviewOrder = []attendance.Status{
	attendance.StatusPresent,
	attendance.StatusLate,
	attendance.StatusAbsent,
	attendance.StatusLeave,
}

func formatOverview(o report.Overview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Attendance Overview - Last %d Days\n\n", o.Days)
	fmt.Fprintf(&b, "📅 Period: %s to %s\n", o.PeriodFrom, o.PeriodTo)
	fmt.Fprintf(&b, "🗂️ Total Records: %d\n", o.TotalRecords)
	fmt.Fprintf(&b, "⏱️ Total Hours: %.1f\n\n", o.TotalHours)

	for _, status := range overviewOrder {
		agg, ok := o.ByStatus[status]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• %s: %d records, %.1f hours\n", status, agg.Count, agg.TotalHours)
	}

	return b.String()
}
