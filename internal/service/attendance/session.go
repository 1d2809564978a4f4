package attendance

import (
	"strings"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/pkg/timeclock"
)

// Note tags written by the legacy ingestion path. New rows carry a
// first-class session value; the notes scan only exists so old rows keep
// classifying until they age out.
const (
	morningNoteTag   = "Morning session"
	afternoonNoteTag = "Afternoon session"
)

// classifySession determines which work session a record belongs to.
// Precedence: explicit session field, then legacy note tags, then the
// time-in window. Returns the zero Session when nothing matches.
func classifySession(rec attendance.Record) attendance.Session {
	if rec.Session == attendance.SessionMorning || rec.Session == attendance.SessionAfternoon {
		return rec.Session
	}

	if rec.Notes != nil {
		if strings.Contains(*rec.Notes, morningNoteTag) {
			return attendance.SessionMorning
		}
		if strings.Contains(*rec.Notes, afternoonNoteTag) {
			return attendance.SessionAfternoon
		}
	}

	if rec.TimeIn != nil {
		if mins, ok := timeclock.MinutesOfDay(*rec.TimeIn); ok {
			switch {
			case mins >= morningStart && mins < noon:
				return attendance.SessionMorning
			case mins >= afternoonStart && mins < endOfDay:
				return attendance.SessionAfternoon
			}
		}
	}

	return ""
}
