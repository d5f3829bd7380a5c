package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("no employees found in department")
	ErrInvalidEmployeeID  = errors.New("invalid employee ID format")
	ErrInvalidEmail       = errors.New("invalid email address")
)
