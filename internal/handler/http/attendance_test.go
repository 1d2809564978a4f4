package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/handler/http/response"
)

type fakeAttendanceService struct {
	view       attendance.DashboardView
	refreshErr error
	gotDate    string
	gotFilter  attendance.RecordFilter

	deleteErr error
	deletedID attendance.RecordID
}

func (f *fakeAttendanceService) Refresh(_ context.Context, date string, filter attendance.RecordFilter) (attendance.DashboardView, error) {
	f.gotDate = date
	f.gotFilter = filter
	if f.refreshErr != nil {
		return attendance.DashboardView{}, f.refreshErr
	}
	return f.view, nil
}

func (f *fakeAttendanceService) Delete(_ context.Context, id attendance.RecordID) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeAttendanceService) RunBackfill(_ context.Context) error { return nil }

func newAttendanceRouter(svc *fakeAttendanceService) *chi.Mux {
	h := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/attendance", h.Refresh)
	r.Delete("/api/v1/attendance/{id}", h.Delete)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestAttendanceRefresh(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{view: attendance.DashboardView{
		Date:       "2024-03-01",
		Records:    []attendance.RecordResponse{},
		Backfilled: 2,
	}}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=2024-03-01&role=faculty&user_id=u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	assert.Equal(t, "2024-03-01", svc.gotDate)
	assert.Equal(t, "faculty", svc.gotFilter.Role)
	assert.Equal(t, "u1", svc.gotFilter.UserID)
}

func TestAttendanceRefresh_InvalidDateParam(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?date=01-03-2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The service is never reached with a malformed date.
	assert.Empty(t, svc.gotDate)
}

func TestAttendanceRefresh_Conflict(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{refreshErr: attendance.ErrRefreshInProgress}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
}

func TestAttendanceDelete(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attendance/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.deletedID.Persisted())
}

func TestAttendanceDelete_SyntheticRefused(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attendance/absent:u1:2024-03-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	// A synthetic key is refused at the edge; the service never sees it.
	assert.Equal(t, attendance.RecordID{}, svc.deletedID)
}

func TestAttendanceDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeAttendanceService{deleteErr: attendance.ErrRecordNotFound}
	router := newAttendanceRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/attendance/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
