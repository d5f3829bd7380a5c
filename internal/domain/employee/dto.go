package employee

import (
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

type LookupByIDRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *LookupByIDRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LookupByEmailRequest struct {
	Email string `json:"email"`
}

func (r *LookupByEmailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListByDesignationRequest struct {
	Designation string `json:"designation"`
}

func (r *ListByDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NewEmployeeResponse maps a stored employee to its outward shape. The
// password hash never leaves the repository layer.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                     e.ID.Hex(),
		Name:                   e.Name,
		Email:                  e.Email,
		Role:                   e.Role,
		Designation:            e.Designation,
		Phone:                  e.Phone,
		DateOfJoining:          e.DateOfJoining,
		DateOfBirth:            e.DateOfBirth,
		BloodGroup:             e.BloodGroup,
		EmergencyContactNumber: e.EmergencyContactNumber,
		IsDisabled:             e.IsDisabled,
		IsWorkFromHome:         e.IsWorkFromHome,
	}
}

type EmployeeResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Role                   string `json:"role"`
	Designation            string `json:"designation"`
	Phone                  string `json:"phone,omitempty"`
	DateOfJoining          string `json:"date_of_joining,omitempty"`
	DateOfBirth            string `json:"date_of_birth,omitempty"`
	BloodGroup             string `json:"blood_group,omitempty"`
	EmergencyContactNumber string `json:"emergency_contact_number,omitempty"`
	IsDisabled             bool   `json:"is_disabled"`
	IsWorkFromHome         bool   `json:"is_work_from_home"`
}

type ListEmployeesResponse struct {
	Designation string             `json:"designation"`
	Total       int                `json:"total"`
	Employees   []EmployeeResponse `json:"employees"`
}
