package attendance

import (
	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/pkg/timeclock"
)

// Work calendar constants, in Manila wall-clock minutes after midnight.
const (
	morningStart   = 7 * 60     // 07:00
	morningGrace   = 7*60 + 15  // 07:15, last on-time minute
	noon           = 12 * 60    // 12:00
	afternoonStart = 13 * 60    // 13:00
	afternoonGrace = 13*60 + 15 // 13:15, last on-time minute
	endOfDay       = 19 * 60    // 19:00, also the backfill cutoff
)

// resolveStatus classifies one attendance row. Pure function; the checks
// short-circuit in fixed precedence order:
//
//  1. holiday (outranks everything, including an explicit absence flag)
//  2. exemption
//  3. explicit absence flag
//  4. no activity at all
//  5. tap data
//
// A record with both taps counts as Present even when the time-in was past
// the grace period; the lateness test only applies to an in-tap with no
// matching out-tap. Product treats a completed session as on-time, so the
// two branches must stay separate.
func resolveStatus(rec attendance.Record, holidays *holiday.Index, exemptions *exemption.Index) attendance.Status {
	if holidays.Contains(rec.Date) {
		return attendance.StatusExempted
	}

	if _, ok := exemptions.Lookup(rec.UserID, rec.Date); ok {
		return attendance.StatusExempted
	}

	if rec.Present != nil && !*rec.Present {
		return attendance.StatusAbsent
	}

	if !rec.HasActivity() {
		return attendance.StatusAbsent
	}

	if rec.TimeIn != nil && rec.TimeOut != nil {
		return attendance.StatusPresent
	}

	if rec.TimeIn != nil {
		if isLate(*rec.TimeIn) {
			return attendance.StatusLate
		}
		return attendance.StatusPresent
	}

	// A check-out with no check-in is not penalized.
	if rec.TimeOut != nil {
		return attendance.StatusPresent
	}

	return attendance.StatusAbsent
}

// isLate evaluates the time-in against the session grace windows. A value
// that does not normalize is "no information", never late.
func isLate(timeIn string) bool {
	mins, ok := timeclock.MinutesOfDay(timeIn)
	if !ok {
		return false
	}

	switch {
	case mins >= morningStart && mins <= noon:
		return mins > morningGrace
	case mins >= afternoonStart && mins <= endOfDay:
		return mins > afternoonGrace
	default:
		// Outside both session windows, including after 19:00.
		return true
	}
}
