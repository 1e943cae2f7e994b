package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
	"github.com/hrportal/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Upsert implements AttendanceHandler.
func (h *attendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.UpsertDailyRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", result)
}

// GetMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	result, err := h.attendanceService.GetMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	result, err := h.attendanceService.MonthlySummary(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements AttendanceHandler.
func (h *attendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.Approve(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved successfully", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	err := h.attendanceService.Delete(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

func parseYearMonth(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, false
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, false
	}

	return year, month, true
}
