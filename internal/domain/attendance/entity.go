package attendance

import (
	"fmt"
	"strconv"
	"time"
)

// Status is the classified attendance outcome for one record.
type Status string

const (
	StatusPresent  Status = "Present"
	StatusLate     Status = "Late"
	StatusAbsent   Status = "Absent"
	StatusExempted Status = "Exempted"
)

// Session is the daily work window a tap belongs to. The zero value means
// the session could not be determined.
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// RecordID identifies an attendance row. Store-assigned rows carry a numeric
// id; rows synthesized by the backfill job carry a composite key instead so
// the administrative delete path can refuse them.
type RecordID struct {
	persisted int64
	synthetic string
}

func PersistedID(id int64) RecordID {
	return RecordID{persisted: id}
}

func SyntheticID(userID string, date time.Time) RecordID {
	return RecordID{synthetic: fmt.Sprintf("absent:%s:%s", userID, date.Format("2006-01-02"))}
}

// ParseID interprets a path parameter. Numeric values map to persisted ids;
// anything else is treated as a synthetic key.
func ParseID(raw string) RecordID {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return RecordID{persisted: n}
	}
	return RecordID{synthetic: raw}
}

func (id RecordID) IsSynthetic() bool { return id.synthetic != "" }

func (id RecordID) Persisted() int64 { return id.persisted }

func (id RecordID) String() string {
	if id.synthetic != "" {
		return id.synthetic
	}
	return strconv.FormatInt(id.persisted, 10)
}

// Record is one tap-pair per user per session per day. TimeIn and TimeOut
// keep the store's raw string form; normalization happens at classification
// time so a malformed value degrades to "no information" instead of failing
// the whole fetch.
type Record struct {
	ID        RecordID
	UserID    string
	Date      time.Time // civil date, no time component
	TimeIn    *string
	TimeOut   *string
	Present   *bool // explicit present/absent flag set upstream; nil = unset
	Session   Session
	Notes     *string
	Penalty   *string
	CreatedAt time.Time

	// Joined user fields
	UserName string
	UserRole string
}

// HasActivity reports whether the record carries any tap at all.
func (r Record) HasActivity() bool {
	return r.TimeIn != nil || r.TimeOut != nil
}
