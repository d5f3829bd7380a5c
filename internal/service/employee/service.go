package employee

import (
	"context"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, req employee.LookupByIDRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(emp), nil
}

// GetByEmail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByEmail(ctx context.Context, req employee.LookupByEmailRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(emp), nil
}

// ListByDesignation implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDesignation(ctx context.Context, req employee.ListByDesignationRequest) (employee.ListEmployeesResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, err := s.EmployeeRepository.ListByDesignation(ctx, req.Designation)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	if len(employees) == 0 {
		return employee.ListEmployeesResponse{}, employee.ErrDepartmentNotFound
	}

	resp := employee.ListEmployeesResponse{
		Designation: req.Designation,
		Total:       len(employees),
		Employees:   make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.NewEmployeeResponse(emp))
	}

	return resp, nil
}
