package report

import (
	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/period"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

const (
	// DefaultSummaryDays is the lookback window when a caller supplies no
	// usable day count.
	DefaultSummaryDays = 30
	// DefaultLateArrivalDays is the shorter default for the late-arrivals
	// listing.
	DefaultLateArrivalDays = 7
)

type EmployeeSummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
	// Period optionally pins the exact query window. When set it wins and
	// Days is derived from it, so the statistics denominator always matches
	// the span the records were queried over.
	Period *period.Range `json:"-"`
}

func (r *EmployeeSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidObjectID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a 24-character hexadecimal string",
		})
	}

	if r.Period != nil {
		r.Days = r.Period.Days()
	} else if r.Days <= 0 {
		r.Days = DefaultSummaryDays
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentReportRequest struct {
	Designation string        `json:"designation"`
	Days        int           `json:"days"`
	Period      *period.Range `json:"-"`
}

func (r *DepartmentReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if r.Period != nil {
		r.Days = r.Period.Days()
	} else if r.Days <= 0 {
		r.Days = DefaultSummaryDays
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LateArrivalsRequest struct {
	Days   int           `json:"days"`
	Period *period.Range `json:"-"`
}

func (r *LateArrivalsRequest) Validate() error {
	if r.Period != nil {
		r.Days = r.Period.Days()
	} else if r.Days <= 0 {
		r.Days = DefaultLateArrivalDays
	}
	return nil
}

// EmployeeSummary binds one employee, the resolved period and the computed
// statistics into a single result. No further computation happens past here.
type EmployeeSummary struct {
	Employee     employee.EmployeeResponse `json:"employee"`
	PeriodFrom   string                    `json:"period_from"`
	PeriodTo     string                    `json:"period_to"`
	Days         int                       `json:"days"`
	TotalRecords int                       `json:"total_records"`
	Statistics   attendance.Statistics     `json:"statistics"`
	Grade        string                    `json:"grade"`
	Insight      string                    `json:"insight"`
}

// DepartmentReportRow is one employee's statistics inside a department
// report.
type DepartmentReportRow struct {
	Employee   employee.EmployeeResponse `json:"employee"`
	Statistics attendance.Statistics     `json:"statistics"`
}

// DepartmentReport aggregates per-employee statistics for a designation.
// Rows keep repository order; callers must not rely on any sort order.
type DepartmentReport struct {
	Designation       string                `json:"designation"`
	PeriodFrom        string                `json:"period_from"`
	PeriodTo          string                `json:"period_to"`
	Days              int                   `json:"days"`
	TotalEmployees    int                   `json:"total_employees"`
	Rows              []DepartmentReportRow `json:"rows"`
	AveragePercentage float64               `json:"average_percentage"`
}

type LateArrivalsReport struct {
	Days     int                      `json:"days"`
	Total    int                      `json:"total"`
	Arrivals []attendance.LateArrival `json:"arrivals"`
}

type OverviewRequest struct {
	Days int `json:"days"`
	// Status narrows the breakdown to a single status. Empty means all.
	Status string        `json:"status,omitempty"`
	Period *period.Range `json:"-"`
}

func (r *OverviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != "" && !validator.IsInSlice(r.Status, attendance.StatusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Late, Absent, Leave",
		})
	}

	if r.Period != nil {
		r.Days = r.Period.Days()
	} else if r.Days <= 0 {
		r.Days = DefaultSummaryDays
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Overview is the organization-wide status breakdown over a period,
// produced by the store's grouping primitive rather than per-record walks.
type Overview struct {
	Days         int                        `json:"days"`
	PeriodFrom   string                     `json:"period_from"`
	PeriodTo     string                     `json:"period_to"`
	TotalRecords int64                      `json:"total_records"`
	TotalHours   float64                    `json:"total_hours"`
	ByStatus     attendance.StatusBreakdown `json:"by_status"`
}
