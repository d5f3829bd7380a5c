package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/report"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly/attendly-backend-go/internal/pkg/period"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	DepartmentReport(w http.ResponseWriter, r *http.Request)
	LateArrivals(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// queryWindow extracts the lookback window from the request. An explicit
// days parameter wins; otherwise a period token ("this month", "last 7
// days", an explicit date) is resolved against the current time into a
// concrete range, so the queried span and the day count never drift apart.
// Zero days with no range means "let the service apply its default".
func queryWindow(r *http.Request) (int, *period.Range) {
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n, nil
		}
	}

	if token := r.URL.Query().Get("period"); token != "" {
		rng := period.Resolve(token, time.Now())
		return rng.Days(), &rng
	}

	return 0, nil
}

// EmployeeSummary implements ReportHandler.
func (h *reportHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	days, rng := queryWindow(r)
	req := report.EmployeeSummaryRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Days:       days,
		Period:     rng,
	}

	result, err := h.reportService.EmployeeSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentReport implements ReportHandler.
func (h *reportHandlerImpl) DepartmentReport(w http.ResponseWriter, r *http.Request) {
	days, rng := queryWindow(r)
	req := report.DepartmentReportRequest{
		Designation: chi.URLParam(r, "designation"),
		Days:        days,
		Period:      rng,
	}

	result, err := h.reportService.DepartmentReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LateArrivals implements ReportHandler.
func (h *reportHandlerImpl) LateArrivals(w http.ResponseWriter, r *http.Request) {
	days, rng := queryWindow(r)
	req := report.LateArrivalsRequest{
		Days:   days,
		Period: rng,
	}

	result, err := h.reportService.LateArrivals(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overview implements ReportHandler.
func (h *reportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	days, rng := queryWindow(r)
	req := report.OverviewRequest{
		Days:   days,
		Status: r.URL.Query().Get("status"),
		Period: rng,
	}

	result, err := h.reportService.Overview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
