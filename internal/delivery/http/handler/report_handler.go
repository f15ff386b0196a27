package handler

import (
	"net/http"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// FinanceOverview handles the finance overview report
// @Summary Finance overview
// @Description Income/expense totals, per-day series and per-category sums for a date range
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/finance/overview [get]
func (h *ReportHandler) FinanceOverview(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	report, err := h.reportUsecase.FinanceOverview(r.Context(), start, end)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build finance overview")
		}
		return
	}

	response.Success(w, http.StatusOK, "Finance overview retrieved successfully", report)
}

// AttendanceStats handles the patient attendance report
// @Summary Attendance statistics
// @Description Attendance totals, distinct patients and per-day series for a date range
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD, inclusive)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports/attendances/patients [get]
func (h *ReportHandler) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	report, err := h.reportUsecase.AttendanceStats(r.Context(), start, end)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build attendance statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attendance statistics retrieved successfully", report)
}
