package attendance

import (
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	// PunchInTime is an optional HH:MM wall-clock time. Empty means "now".
	PunchInTime string `json:"punch_in_time,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
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

	// PunchInTime is checked by the service when it parses the clock time,
	// so malformed times are rejected exactly once.

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkAttendanceResponse struct {
	AttendanceID string `json:"attendance_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	PunchIn      string `json:"punch_in"`
	Status       Status `json:"status"`
}

// StatusAggregate is one bucket of a status grouping: how many records carry
// the status and the summed worked hours across them.
type StatusAggregate struct {
	Count      int64   `json:"count"`
	TotalHours float64 `json:"total_hours"`
}

// StatusBreakdown maps each status present in a filtered record set to its
// aggregate. Callers combine buckets into totals.
type StatusBreakdown map[Status]StatusAggregate

// TotalRecords sums record counts across every status bucket.
func (b StatusBreakdown) TotalRecords() int64 {
	var total int64
	for _, agg := range b {
		total += agg.Count
	}
	return total
}

// TotalHours sums worked hours across every status bucket.
func (b StatusBreakdown) TotalHours() float64 {
	var total float64
	for _, agg := range b {
		total += agg.TotalHours
	}
	return total
}

// LateArrival is one late punch-in joined with the owning employee, as
// produced by the late-arrivals lookup.
type LateArrival struct {
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
	PunchIn       string `json:"punch_in"`
}
