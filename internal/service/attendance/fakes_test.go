package attendance

import (
	"context"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/domain/user"
)

type fakeAttendanceRepo struct {
	records   []attendance.Record
	listCalls int
	listErr   error

	inserted  []attendance.Record
	insertErr map[string]error // keyed by user id

	deletedIDs []int64
	deleteErr  error
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time, filter attendance.RecordFilter) ([]attendance.Record, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []attendance.Record
	for _, r := range f.records {
		if !r.Date.Equal(date) {
			continue
		}
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		if filter.Role != "" && r.UserRole != filter.Role {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Insert(_ context.Context, rec attendance.Record) error {
	if err, ok := f.insertErr[rec.UserID]; ok {
		return err
	}
	f.inserted = append(f.inserted, rec)
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeExemptionRepo struct {
	items      []exemption.Exemption
	calls      int
	err        error
	gotUserIDs []string
	gotDates   []time.Time
}

func (f *fakeExemptionRepo) ListByUsersAndDates(_ context.Context, userIDs []string, dates []time.Time) ([]exemption.Exemption, error) {
	f.calls++
	f.gotUserIDs = userIDs
	f.gotDates = dates
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeHolidayRepo struct {
	items []holiday.Holiday
	calls int
	err   error
}

func (f *fakeHolidayRepo) ListActiveByDates(_ context.Context, dates []time.Time) ([]holiday.Holiday, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []holiday.Holiday
	for _, h := range f.items {
		for _, d := range dates {
			if h.Date.Equal(d) {
				out = append(out, h)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []user.User
	calls int
	err   error
}

func (f *fakeUserRepo) ListByRoles(_ context.Context, _ []user.Role) ([]user.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}
