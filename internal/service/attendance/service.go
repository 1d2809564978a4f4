package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/domain/user"
	"github.com/talentia-hr/attendance-engine/internal/pkg/clock"
	"github.com/talentia-hr/attendance-engine/internal/pkg/timeclock"
)

// Service runs the resolution pipeline: fetch rows, build the lookup
// indexes, classify every row, and backfill synthetic absences for the
// current day. Stateless across invocations; everything is recomputed per
// refresh.
type Service interface {
	// Refresh runs one full pipeline pass for the given civil date and
	// returns the classified dashboard view. An empty date means Manila
	// today. Concurrent refreshes are rejected with ErrRefreshInProgress.
	Refresh(ctx context.Context, date string, filter attendance.RecordFilter) (attendance.DashboardView, error)

	// Delete removes one persisted attendance row. Synthetic backfill ids
	// are refused.
	Delete(ctx context.Context, id attendance.RecordID) error

	// RunBackfill executes the absence backfill alone, for the cron path.
	RunBackfill(ctx context.Context) error
}

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	exemptionRepo  exemption.Repository
	holidayRepo    holiday.Repository
	userRepo       user.Repository
	clock          clock.Clock
	trackedRoles   []user.Role

	// Serializes refreshes; a pass superseded by a newer one simply has
	// its results overwritten, so a plain in-flight guard is enough.
	refreshMu sync.Mutex
}

func NewService(
	attendanceRepo attendance.Repository,
	exemptionRepo exemption.Repository,
	holidayRepo holiday.Repository,
	userRepo user.Repository,
	clk clock.Clock,
	trackedRoles []user.Role,
) *ServiceImpl {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		exemptionRepo:  exemptionRepo,
		holidayRepo:    holidayRepo,
		userRepo:       userRepo,
		clock:          clk,
		trackedRoles:   trackedRoles,
	}
}

// Refresh implements Service.
func (s *ServiceImpl) Refresh(ctx context.Context, date string, filter attendance.RecordFilter) (attendance.DashboardView, error) {
	if !s.refreshMu.TryLock() {
		return attendance.DashboardView{}, attendance.ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	now := s.clock.NowUTC()
	today := timeclock.CivilDate(now)

	target := today
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			return attendance.DashboardView{}, attendance.ErrInvalidDate
		}
		target = parsed
	}

	records, err := s.attendanceRepo.ListByDate(ctx, target, filter)
	if err != nil {
		return attendance.DashboardView{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	// The backfill's existence check needs the full day's record set; a
	// filtered pass only sees a subset, so it never backfills. The cron
	// job and unfiltered refreshes cover those days.
	runBackfill := target.Equal(today) && filter == (attendance.RecordFilter{})

	// Rows alone only cover users who tapped; the backfill also needs the
	// tracked roster. Roster load failure is not fatal for resolution,
	// only for backfill.
	var roster []user.User
	if runBackfill {
		roster, err = s.userRepo.ListByRoles(ctx, s.trackedRoles)
		if err != nil {
			slog.Error("failed to load tracked roster, skipping backfill", "error", err)
			roster = nil
		}
	}

	holidays, exemptions := s.buildIndexes(ctx, records, roster, target)

	backfilled := 0
	if runBackfill && roster != nil {
		records, backfilled = s.backfillAbsences(ctx, now, records, roster, holidays, exemptions)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resolved := attendance.ResolvedRecord{
			Record:  rec,
			Status:  resolveStatus(rec, holidays, exemptions),
			Session: classifySession(rec),
		}
		responses = append(responses, resolved.Response())
	}

	return attendance.DashboardView{
		Date:       target.Format("2006-01-02"),
		Records:    responses,
		Backfilled: backfilled,
	}, nil
}

// buildIndexes loads the holiday and exemption indexes for one pass, one
// batched query each. A failed load degrades to an empty index so the
// pipeline proceeds with non-exempting defaults.
func (s *ServiceImpl) buildIndexes(ctx context.Context, records []attendance.Record, roster []user.User, target time.Time) (*holiday.Index, *exemption.Index) {
	dateSet := map[string]time.Time{timeclock.DateKey(target): target}
	userSet := make(map[string]struct{}, len(records)+len(roster))
	for _, rec := range records {
		dateSet[timeclock.DateKey(rec.Date)] = rec.Date
		userSet[rec.UserID] = struct{}{}
	}
	for _, u := range roster {
		userSet[u.ID] = struct{}{}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for _, d := range dateSet {
		dates = append(dates, d)
	}
	userIDs := make([]string, 0, len(userSet))
	for id := range userSet {
		userIDs = append(userIDs, id)
	}

	var holidayIdx *holiday.Index
	hols, err := s.holidayRepo.ListActiveByDates(ctx, dates)
	if err != nil {
		slog.Error("failed to load holidays, resolving without them", "error", err)
	} else {
		holidayIdx = holiday.NewIndex(hols)
	}

	var exemptionIdx *exemption.Index
	exs, err := s.exemptionRepo.ListByUsersAndDates(ctx, userIDs, dates)
	if err != nil {
		slog.Error("failed to load exemptions, resolving without them", "error", err)
	} else {
		exemptionIdx = exemption.NewIndex(exs)
	}

	return holidayIdx, exemptionIdx
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id attendance.RecordID) error {
	if id.IsSynthetic() {
		return attendance.ErrSyntheticRecord
	}

	if err := s.attendanceRepo.Delete(ctx, id.Persisted()); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}
