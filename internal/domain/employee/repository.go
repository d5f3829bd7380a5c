package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
// Soft-deleted employees are invisible to every method.
type EmployeeRepository interface {
	// GetByID retrieves an employee by its 24-hex identity.
	// Returns ErrEmployeeNotFound when no live document matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by its unique email address.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListByDesignation retrieves every employee in a department.
	// Order is whatever the store returns; callers must not rely on it.
	ListByDesignation(ctx context.Context, designation string) ([]Employee, error)
}
