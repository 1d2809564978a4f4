package http

import (
	"net/http"

	"github.com/talentia-hr/attendance-engine/internal/handler/http/response"
	scheduleService "github.com/talentia-hr/attendance-engine/internal/service/schedule"
)

type ScheduleHandler interface {
	ListWithAttendance(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService scheduleService.Service
}

func NewScheduleHandler(svc scheduleService.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: svc}
}

// ListWithAttendance implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListWithAttendance(w http.ResponseWriter, r *http.Request) {
	views, err := h.scheduleService.ListWithAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, views)
}
