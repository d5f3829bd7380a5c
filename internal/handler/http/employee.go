package http

import (
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req := employee.LookupByIDRequest{
		EmployeeID: chi.URLParam(r, "id"),
	}

	result, err := h.employeeService.GetByID(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search implements EmployeeHandler. Exactly one of the email and
// designation query parameters selects the lookup; email wins when both
// are present.
func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		result, err := h.employeeService.GetByEmail(r.Context(), employee.LookupByEmailRequest{Email: email})
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	if designation := r.URL.Query().Get("designation"); designation != "" {
		result, err := h.employeeService.ListByDesignation(r.Context(), employee.ListByDesignationRequest{Designation: designation})
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	response.BadRequest(w, "Query parameter 'email' or 'designation' is required", nil)
}
