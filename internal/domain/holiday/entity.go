package holiday

import "time"

// Holiday is an organization-wide non-working day. Only active holidays
// suppress attendance expectations.
type Holiday struct {
	Date     time.Time
	Title    string
	IsActive bool
}

// Index is an O(1) membership set over one resolution pass's active
// holidays. A nil Index behaves as empty.
type Index struct {
	byDate map[string]Holiday
}

func NewIndex(items []Holiday) *Index {
	idx := &Index{byDate: make(map[string]Holiday, len(items))}
	for _, h := range items {
		if !h.IsActive {
			continue
		}
		idx.byDate[h.Date.Format("2006-01-02")] = h
	}
	return idx
}

func (ix *Index) Contains(date time.Time) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.byDate[date.Format("2006-01-02")]
	return ok
}

// Get returns the holiday on the given date, if any.
func (ix *Index) Get(date time.Time) (Holiday, bool) {
	if ix == nil {
		return Holiday{}, false
	}
	h, ok := ix.byDate[date.Format("2006-01-02")]
	return h, ok
}
