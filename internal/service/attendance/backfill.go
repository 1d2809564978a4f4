package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/domain/user"
	"github.com/talentia-hr/attendance-engine/internal/pkg/timeclock"
)

const (
	backfillPenalty = "auto-absent"
	backfillNote    = "No time in/out recorded for this day"
)

// backfillAbsences inserts one synthetic Absent record for every tracked
// user with no attendance row today, once the Manila clock has passed the
// end-of-day cutoff. Inserted records are appended to the in-memory slice
// so a second pass within the same execution cannot double-insert; across
// executions the existence of the persisted row makes the job a no-op.
func (s *ServiceImpl) backfillAbsences(
	ctx context.Context,
	now time.Time,
	records []attendance.Record,
	roster []user.User,
	holidays *holiday.Index,
	exemptions *exemption.Index,
) ([]attendance.Record, int) {
	today := timeclock.CivilDate(now)

	// Nobody is marked absent on a holiday.
	if h, ok := holidays.Get(today); ok {
		slog.Debug("skipping backfill on holiday", "title", h.Title, "date", timeclock.DateKey(today))
		return records, 0
	}

	if timeclock.MinutesSinceMidnight(now) < endOfDay {
		return records, 0
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.Date.Equal(today) {
			seen[rec.UserID] = struct{}{}
		}
	}

	exempted := exemptions.UserIDsOn(today)

	inserted := 0
	for _, u := range roster {
		if _, ok := exempted[u.ID]; ok {
			continue
		}
		if _, ok := seen[u.ID]; ok {
			continue
		}

		absent := false
		notes := backfillNote
		penalty := backfillPenalty
		rec := attendance.Record{
			ID:       attendance.SyntheticID(u.ID, today),
			UserID:   u.ID,
			UserName: u.FullName,
			UserRole: string(u.Role),
			Date:     today,
			Present:  &absent,
			Notes:    &notes,
			Penalty:  &penalty,
		}

		if err := s.attendanceRepo.Insert(ctx, rec); err != nil {
			// One user's failure must not starve the rest of the batch.
			slog.Error("failed to backfill absence", "user_id", u.ID, "date", timeclock.DateKey(today), "error", err)
			continue
		}

		records = append(records, rec)
		seen[u.ID] = struct{}{}
		inserted++
	}

	if inserted > 0 {
		slog.Info("backfilled absence records", "count", inserted, "date", timeclock.DateKey(today))
	}

	return records, inserted
}

// RunBackfill implements Service. The cron path loads its own inputs; the
// in-memory existence check then works off data read within this pass.
func (s *ServiceImpl) RunBackfill(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		return attendance.ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	now := s.clock.NowUTC()
	today := timeclock.CivilDate(now)

	if timeclock.MinutesSinceMidnight(now) < endOfDay {
		return nil
	}

	records, err := s.attendanceRepo.ListByDate(ctx, today, attendance.RecordFilter{})
	if err != nil {
		return fmt.Errorf("failed to list today's attendance records: %w", err)
	}

	roster, err := s.userRepo.ListByRoles(ctx, s.trackedRoles)
	if err != nil {
		return fmt.Errorf("failed to load tracked roster: %w", err)
	}

	holidays, exemptions := s.buildIndexes(ctx, records, roster, today)
	_, inserted := s.backfillAbsences(ctx, now, records, roster, holidays, exemptions)

	slog.Debug("backfill pass finished", "inserted", inserted)
	return nil
}
