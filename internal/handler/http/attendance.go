package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/handler/http/response"
	"github.com/talentia-hr/attendance-engine/internal/pkg/validator"
	attendanceService "github.com/talentia-hr/attendance-engine/internal/service/attendance"
)

type AttendanceHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.Service
}

func NewAttendanceHandler(svc attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

// Refresh implements AttendanceHandler. Every GET runs a full resolution
// pass; the engine is stateless, so "list" and "refresh" are the same
// operation.
func (h *attendanceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" && !validator.IsValidDate(date) {
		response.BadRequest(w, "Invalid date parameter", map[string]string{"date": "must be YYYY-MM-DD"})
		return
	}

	filter := attendance.RecordFilter{
		UserID: r.URL.Query().Get("user_id"),
		Role:   r.URL.Query().Get("role"),
	}

	view, err := h.attendanceService.Refresh(r.Context(), date, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if validator.IsEmpty(raw) {
		response.BadRequest(w, "Record id is required", nil)
		return
	}

	// Store-assigned ids are numeric; anything else is a synthetic
	// backfill key and never deletable.
	if !validator.IsNumeric(raw) {
		response.HandleError(w, attendance.ErrSyntheticRecord)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), attendance.ParseID(raw)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
