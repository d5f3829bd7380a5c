package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID format", nil)
	case errors.Is(err, employee.ErrInvalidEmail):
		BadRequest(w, "Invalid email address", nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "No employees found in that designation")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidPunchTime):
		BadRequest(w, "Invalid punch-in time, expected HH:MM", nil)
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for today")

	// Storage errors
	case errors.Is(err, database.ErrUnavailable):
		ServiceUnavailable(w, "Attendance store is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
