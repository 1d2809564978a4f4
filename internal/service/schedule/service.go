package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/domain/schedule"
	"github.com/talentia-hr/attendance-engine/internal/pkg/clock"
	"github.com/talentia-hr/attendance-engine/internal/pkg/timeclock"
)

// Service derives a schedule-anchored attendance view: each recurring
// schedule is paired with its most recent tap event and a display status
// under the same holiday/exemption precedence the record resolver uses.
type Service interface {
	ListWithAttendance(ctx context.Context) ([]schedule.ScheduleResponse, error)
}

type ServiceImpl struct {
	scheduleRepo  schedule.Repository
	exemptionRepo exemption.Repository
	holidayRepo   holiday.Repository
	clock         clock.Clock
}

func NewService(
	scheduleRepo schedule.Repository,
	exemptionRepo exemption.Repository,
	holidayRepo holiday.Repository,
	clk clock.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		scheduleRepo:  scheduleRepo,
		exemptionRepo: exemptionRepo,
		holidayRepo:   holidayRepo,
		clock:         clk,
	}
}

// ListWithAttendance implements Service.
func (s *ServiceImpl) ListWithAttendance(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	if len(schedules) == 0 {
		return []schedule.ScheduleResponse{}, nil
	}

	scheduleIDs := make([]string, 0, len(schedules))
	for _, sc := range schedules {
		scheduleIDs = append(scheduleIDs, sc.ID)
	}

	records, err := s.scheduleRepo.ListClassRecordsBySchedules(ctx, scheduleIDs)
	if err != nil {
		// Degrade to "no events": every schedule renders Absent unless a
		// holiday or exemption covers today.
		slog.Error("failed to load class attendance records", "error", err)
		records = nil
	}

	latest := latestByScheduleID(records)
	today := timeclock.CivilDate(s.clock.NowUTC())

	// Reference dates and owners for the batched index loads.
	dateSet := map[string]time.Time{timeclock.DateKey(today): today}
	userIDs := make([]string, 0, len(schedules))
	for _, sc := range schedules {
		userIDs = append(userIDs, sc.UserID)
		if rec, ok := latest[sc.ID]; ok {
			dateSet[timeclock.DateKey(rec.AttDate)] = rec.AttDate
		}
	}
	dates := make([]time.Time, 0, len(dateSet))
	for _, d := range dateSet {
		dates = append(dates, d)
	}

	var holidayIdx *holiday.Index
	if hols, err := s.holidayRepo.ListActiveByDates(ctx, dates); err != nil {
		slog.Error("failed to load holidays for schedule view", "error", err)
	} else {
		holidayIdx = holiday.NewIndex(hols)
	}

	var exemptionIdx *exemption.Index
	if exs, err := s.exemptionRepo.ListByUsersAndDates(ctx, userIDs, dates); err != nil {
		slog.Error("failed to load exemptions for schedule view", "error", err)
	} else {
		exemptionIdx = exemption.NewIndex(exs)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sc := range schedules {
		rec, matched := latest[sc.ID]

		refDate := today
		if matched {
			refDate = rec.AttDate
		}

		status := attendance.StatusAbsent
		switch {
		case holidayIdx.Contains(refDate):
			status = attendance.StatusExempted
		case exempted(exemptionIdx, sc.UserID, refDate):
			status = attendance.StatusExempted
		case matched:
			// The event's own status field is adopted verbatim.
			status = rec.Status
		}

		responses = append(responses, schedule.ScheduleResponse{
			ID:            sc.ID,
			UserID:        sc.UserID,
			UserName:      sc.UserName,
			DayOfWeek:     sc.DayOfWeek,
			StartTime:     sc.StartTime,
			EndTime:       sc.EndTime,
			Subject:       sc.Subject,
			Room:          sc.Room,
			ReferenceDate: refDate.Format("2006-01-02"),
			Status:        status,
		})
	}

	return responses, nil
}

// latestByScheduleID keeps only the most recent event per schedule.
func latestByScheduleID(records []schedule.ClassRecord) map[string]schedule.ClassRecord {
	latest := make(map[string]schedule.ClassRecord, len(records))
	for _, rec := range records {
		if cur, ok := latest[rec.ScheduleID]; !ok || rec.AttDate.After(cur.AttDate) {
			latest[rec.ScheduleID] = rec
		}
	}
	return latest
}

func exempted(idx *exemption.Index, userID string, date time.Time) bool {
	_, ok := idx.Lookup(userID, date)
	return ok
}
