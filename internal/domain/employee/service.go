package employee

import "context"

// EmployeeService defines read-side business logic over employee profiles.
// Profiles are created and mutated by the HR onboarding system, not here.
type EmployeeService interface {
	// GetByID looks up a single employee by its 24-hex identity.
	GetByID(ctx context.Context, req LookupByIDRequest) (EmployeeResponse, error)

	// GetByEmail looks up a single employee by email.
	GetByEmail(ctx context.Context, req LookupByEmailRequest) (EmployeeResponse, error)

	// ListByDesignation lists every employee in a department.
	ListByDesignation(ctx context.Context, req ListByDesignationRequest) (ListEmployeesResponse, error)
}
