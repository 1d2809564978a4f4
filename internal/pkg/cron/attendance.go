package cron

import (
	"context"
	"errors"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	attendanceService "github.com/talentia-hr/attendance-engine/internal/service/attendance"
)

// AttendanceJobs wires the absence backfill into the scheduler so gaps are
// filled even on days when nobody opens the dashboard after the cutoff.
type AttendanceJobs struct {
	attendanceSvc attendanceService.Service
}

func NewAttendanceJobs(attendanceSvc attendanceService.Service) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_absences", 15*time.Minute, j.BackfillAbsences)
}

// BackfillAbsences runs one backfill pass. The service itself enforces the
// 19:00 Manila cutoff and the per-user existence check, so overlapping with
// a dashboard-triggered pass is harmless.
func (j *AttendanceJobs) BackfillAbsences(ctx context.Context) error {
	err := j.attendanceSvc.RunBackfill(ctx)
	if errors.Is(err, attendance.ErrRefreshInProgress) {
		// A dashboard refresh is doing the same work right now.
		return nil
	}
	return err
}
