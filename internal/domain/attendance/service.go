package attendance

import "context"

// AttendanceService defines the attendance write path.
type AttendanceService interface {
	// Mark records today's attendance for an employee. Marking is
	// idempotent-by-rejection: a second submission for the same day returns
	// ErrAlreadyMarked and leaves the store untouched. Status is fixed at
	// creation from the punch-in time against the 09:30 cutoff.
	Mark(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)
}
