package attendance

import (
	"context"
	"time"
)

// StatusFilter narrows a status grouping. Zero-value fields are ignored.
type StatusFilter struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
	Status     Status
}

// AttendanceRepository defines data access methods for attendance records.
// Date parameters are compared at calendar-day granularity; callers must
// normalize to day boundaries before calling.
type AttendanceRepository interface {
	// Create inserts a new attendance record. A second insert for the same
	// (employee, day) fails against the store's uniqueness constraint and is
	// reported as ErrAlreadyMarked, which makes the existence-check-then-
	// insert sequence safe under concurrency.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on one
	// calendar day. Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployeeAndRange retrieves records within [start, end] inclusive,
	// ordered by date descending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// GroupByStatus aggregates the filtered record set per distinct status:
	// a count and a summed hours value per bucket. Hours stored as numeric
	// strings are coerced; non-numeric values are skipped silently.
	GroupByStatus(ctx context.Context, filter StatusFilter) (StatusBreakdown, error)

	// ListLateArrivals retrieves Late records within [start, end] joined with
	// the owning employee, newest first.
	ListLateArrivals(ctx context.Context, start, end time.Time) ([]LateArrival, error)
}
