package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveStatus_Precedence(t *testing.T) {
	t.Parallel()

	date := civil(2024, 3, 1)
	christmas := civil(2024, 12, 25)

	holidays := holiday.NewIndex([]holiday.Holiday{
		{Date: christmas, Title: "Christmas Day", IsActive: true},
	})
	exemptions := exemption.NewIndex([]exemption.Exemption{
		{UserID: "u-leave", Date: date, RequestType: "Leave", Reason: "vacation"},
	})

	tests := []struct {
		name string
		rec  attendance.Record
		want attendance.Status
	}{
		{
			name: "holiday outranks explicit absence flag",
			rec: attendance.Record{
				UserID:  "u1",
				Date:    christmas,
				Present: boolPtr(false),
			},
			want: attendance.StatusExempted,
		},
		{
			name: "holiday outranks taps",
			rec: attendance.Record{
				UserID: "u1",
				Date:   christmas,
				TimeIn: strPtr("2024-12-24T23:05:00Z"),
			},
			want: attendance.StatusExempted,
		},
		{
			name: "exemption outranks no activity",
			rec: attendance.Record{
				UserID: "u-leave",
				Date:   date,
			},
			want: attendance.StatusExempted,
		},
		{
			name: "exemption outranks explicit absence flag",
			rec: attendance.Record{
				UserID:  "u-leave",
				Date:    date,
				Present: boolPtr(false),
			},
			want: attendance.StatusExempted,
		},
		{
			name: "explicit absence flag wins over taps",
			rec: attendance.Record{
				UserID:  "u1",
				Date:    date,
				Present: boolPtr(false),
				TimeIn:  strPtr("2024-02-29T23:05:00Z"),
				TimeOut: strPtr("2024-03-01T09:00:00Z"),
			},
			want: attendance.StatusAbsent,
		},
		{
			name: "explicit present flag with no taps is still absent",
			rec: attendance.Record{
				UserID:  "u1",
				Date:    date,
				Present: boolPtr(true),
			},
			want: attendance.StatusAbsent,
		},
		{
			name: "no activity at all",
			rec: attendance.Record{
				UserID: "u1",
				Date:   date,
			},
			want: attendance.StatusAbsent,
		},
		{
			name: "both taps present even with a late time-in",
			rec: attendance.Record{
				UserID:  "u1",
				Date:    date,
				TimeIn:  strPtr("2024-03-01T02:00:00Z"), // 10:00 Manila, past grace
				TimeOut: strPtr("2024-03-01T09:00:00Z"),
			},
			want: attendance.StatusPresent,
		},
		{
			name: "time-in only within grace",
			rec: attendance.Record{
				UserID: "u1",
				Date:   date,
				TimeIn: strPtr("2024-02-29T23:05:00Z"), // 07:05 Manila
			},
			want: attendance.StatusPresent,
		},
		{
			name: "time-in only past grace",
			rec: attendance.Record{
				UserID: "u1",
				Date:   date,
				TimeIn: strPtr("2024-03-01T01:00:00Z"), // 09:00 Manila
			},
			want: attendance.StatusLate,
		},
		{
			name: "naive evening timestamp normalizes into the next Manila morning",
			rec: attendance.Record{
				UserID: "u1",
				Date:   date,
				TimeIn: strPtr("2024-03-01T23:30:00"), // 07:30 Manila
			},
			want: attendance.StatusLate,
		},
		{
			name: "time-out only is not penalized",
			rec: attendance.Record{
				UserID:  "u1",
				Date:    date,
				TimeOut: strPtr("2024-03-01T09:00:00Z"),
			},
			want: attendance.StatusPresent,
		},
		{
			name: "malformed time-in is no information, not late",
			rec: attendance.Record{
				UserID: "u1",
				Date:   date,
				TimeIn: strPtr("not-a-timestamp"),
			},
			want: attendance.StatusPresent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := resolveStatus(tt.rec, holidays, exemptions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStatus_NilIndexes(t *testing.T) {
	t.Parallel()

	rec := attendance.Record{
		UserID: "u1",
		Date:   civil(2024, 3, 1),
		TimeIn: strPtr("2024-02-29T23:05:00Z"),
	}
	assert.Equal(t, attendance.StatusPresent, resolveStatus(rec, nil, nil))
}

func TestIsLate_GraceBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		timeIn string
		want   bool
	}{
		{"07:00 window open", "2024-02-29T23:00:00Z", false},
		{"07:15 last on-time minute", "2024-02-29T23:15:00Z", false},
		{"07:16 first late minute", "2024-02-29T23:16:00Z", true},
		{"12:00 end of morning window", "2024-03-01T04:00:00Z", true},
		{"13:00 afternoon window open", "2024-03-01T05:00:00Z", false},
		{"13:15 last on-time minute", "2024-03-01T05:15:00Z", false},
		{"13:16 first late minute", "2024-03-01T05:16:00Z", true},
		{"06:30 before any window", "2024-02-29T22:30:00Z", true},
		{"12:30 lunch gap", "2024-03-01T04:30:00Z", true},
		{"19:30 after end of day", "2024-03-01T11:30:00Z", true},
		{"unparseable never late", "garbage", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isLate(tt.timeIn))
		})
	}
}
