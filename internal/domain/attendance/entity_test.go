package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id := ParseID("42")
	assert.False(t, id.IsSynthetic())
	assert.Equal(t, int64(42), id.Persisted())
	assert.Equal(t, "42", id.String())

	id = ParseID("absent:user-1:2024-03-01")
	assert.True(t, id.IsSynthetic())
	assert.Equal(t, "absent:user-1:2024-03-01", id.String())
}

func TestSyntheticID(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	id := SyntheticID("user-1", date)
	assert.True(t, id.IsSynthetic())
	assert.Equal(t, "absent:user-1:2024-03-01", id.String())

	// Round-trips through the path-parameter form.
	assert.True(t, ParseID(id.String()).IsSynthetic())
}

func TestRecordHasActivity(t *testing.T) {
	t.Parallel()

	in := "2024-03-01T00:00:00Z"
	assert.False(t, Record{}.HasActivity())
	assert.True(t, Record{TimeIn: &in}.HasActivity())
	assert.True(t, Record{TimeOut: &in}.HasActivity())
}

func TestResolvedRecordResponse_Placeholders(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rr := ResolvedRecord{
		Record: Record{
			ID:     SyntheticID("user-1", date),
			UserID: "user-1",
			Date:   date,
		},
		Status: StatusAbsent,
	}

	resp := rr.Response()
	assert.Equal(t, "--", resp.TimeIn)
	assert.Equal(t, "--", resp.TimeOut)
	assert.Equal(t, "--", resp.Session)
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.True(t, resp.Synthetic)
}

func TestResolvedRecordResponse_Values(t *testing.T) {
	t.Parallel()

	in, out := "2024-02-29T23:05:00Z", "2024-03-01T09:00:00Z"
	rr := ResolvedRecord{
		Record: Record{
			ID:      PersistedID(7),
			UserID:  "user-1",
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			TimeIn:  &in,
			TimeOut: &out,
		},
		Status:  StatusPresent,
		Session: SessionMorning,
	}

	resp := rr.Response()
	assert.Equal(t, "7", resp.ID)
	assert.Equal(t, in, resp.TimeIn)
	assert.Equal(t, out, resp.TimeOut)
	assert.Equal(t, "morning", resp.Session)
	assert.False(t, resp.Synthetic)
}
