package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrAlreadyMarked    = errors.New("attendance already marked for today")
	ErrInvalidPunchTime = errors.New("invalid punch-in time, expected HH:MM")
)
