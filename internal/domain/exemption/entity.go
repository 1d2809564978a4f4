package exemption

import "time"

// Kind distinguishes full-day leave from a time-bounded carve-out.
type Kind string

const (
	KindFullDay      Kind = "full_day"
	KindTimeSpecific Kind = "time_specific"
)

// requestTypeLeave is the upstream request type that always implies a
// full-day exemption regardless of time bounds.
const requestTypeLeave = "Leave"

// Exemption is an approved leave or partial-day carve-out for one user on
// one civil date. Read-only input to the resolution engine.
type Exemption struct {
	UserID      string
	Date        time.Time
	RequestType string
	StartTime   *string
	EndTime     *string
	Reason      string
}

// Kind derives the exemption kind: "Leave" requests and requests with no
// time bounds at all cover the whole day.
func (e Exemption) Kind() Kind {
	if e.RequestType == requestTypeLeave {
		return KindFullDay
	}
	if e.StartTime == nil && e.EndTime == nil {
		return KindFullDay
	}
	return KindTimeSpecific
}

// Index is an O(1) lookup over one resolution pass's exemptions, keyed by
// (user, date). It is built from a single batched query; a nil Index
// behaves as empty so a failed load degrades to non-exempting defaults.
type Index struct {
	byUserDate map[indexKey]Exemption
}

type indexKey struct {
	userID string
	date   string
}

func NewIndex(items []Exemption) *Index {
	idx := &Index{byUserDate: make(map[indexKey]Exemption, len(items))}
	for _, e := range items {
		idx.byUserDate[indexKey{e.UserID, e.Date.Format("2006-01-02")}] = e
	}
	return idx
}

// Lookup returns the exemption covering (userID, date), if any.
func (ix *Index) Lookup(userID string, date time.Time) (Exemption, bool) {
	if ix == nil {
		return Exemption{}, false
	}
	e, ok := ix.byUserDate[indexKey{userID, date.Format("2006-01-02")}]
	return e, ok
}

// UserIDsOn returns the set of users exempted on the given date.
func (ix *Index) UserIDsOn(date time.Time) map[string]struct{} {
	ids := make(map[string]struct{})
	if ix == nil {
		return ids
	}
	key := date.Format("2006-01-02")
	for k := range ix.byUserDate {
		if k.date == key {
			ids[k.userID] = struct{}{}
		}
	}
	return ids
}
