package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/hrm-backend/api/middleware"
	"github.com/angelmondragon/hrm-backend/internal/attendance"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/types"
)

type stubAttendanceService struct {
	employeeID string
	lat, lon   types.Coordinate
	result     *attendance.CheckInResult
	err        error

	filter  attendance.HistoryFilter
	history []attendance.RecordDTO
	total   int64
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, employeeID string, lat, lon types.Coordinate) (*attendance.CheckInResult, error) {
	s.employeeID, s.lat, s.lon = employeeID, lat, lon
	return s.result, s.err
}

func (s *stubAttendanceService) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.RecordDTO, int64, error) {
	s.filter = filter
	return s.history, s.total, s.err
}

func withEmployee(r *http.Request, id string) *http.Request {
	return r.WithContext(middleware.WithPrincipal(r.Context(), session.Principal{EmployeeID: id}, "tok"))
}

func TestGPSCheckAccepted(t *testing.T) {
	svc := &stubAttendanceService{result: &attendance.CheckInResult{
		Record:   attendance.RecordDTO{ID: uuid.New(), EmployeeID: "NV001", CheckTime: "09:30:15"},
		Distance: 12,
		Radius:   50,
	}}
	req := withEmployee(httptest.NewRequest(http.MethodPost, "/gps/check", strings.NewReader(`{"latitude":21.0285,"longitude":105.8542}`)), "NV001")
	rec := httptest.NewRecorder()

	GPSCheck(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NV001", svc.employeeID)
	assert.InDelta(t, 21.0285, svc.lat.Value, 1e-9)
	body := decodeBody(t, rec)
	assert.Equal(t, "Attendance recorded successfully", body["message"])
	assert.Equal(t, float64(12), body["distance"])
	assert.Equal(t, "09:30:15", body["time"])
}

func TestGPSCheckTooFar(t *testing.T) {
	svc := &stubAttendanceService{err: pkgerrors.New(pkgerrors.CodeForbidden, "Too far from store (1111m). Must be within 50m").
		WithDetails(map[string]any{"distance": 1111, "radius": 50})}
	req := withEmployee(httptest.NewRequest(http.MethodPost, "/gps/check", strings.NewReader(`{"latitude":21.0385,"longitude":105.8542}`)), "NV001")
	rec := httptest.NewRecorder()

	GPSCheck(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Too far from store (1111m). Must be within 50m", body["message"])
}

func TestGPSCheckMalformedBody(t *testing.T) {
	svc := &stubAttendanceService{}
	req := withEmployee(httptest.NewRequest(http.MethodPost, "/gps/check", strings.NewReader(`{"latitude":`)), "NV001")
	rec := httptest.NewRecorder()

	GPSCheck(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.employeeID)
}

func TestAttendanceHistoryPassesFilters(t *testing.T) {
	svc := &stubAttendanceService{
		history: []attendance.RecordDTO{{ID: uuid.New()}},
		total:   7,
	}
	req := withEmployee(httptest.NewRequest(http.MethodGet, "/attendance?from=2025-03-01&to=2025-03-31&limit=5", nil), "NV002")
	rec := httptest.NewRecorder()

	AttendanceHistory(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, attendance.HistoryFilter{EmployeeID: "NV002", From: "2025-03-01", To: "2025-03-31", Limit: 5}, svc.filter)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["total"])
	assert.Len(t, body["data"], 1)
}

func TestAttendanceHistoryDefaultsLimit(t *testing.T) {
	svc := &stubAttendanceService{}
	req := withEmployee(httptest.NewRequest(http.MethodGet, "/attendance", nil), "NV002")
	rec := httptest.NewRecorder()

	AttendanceHistory(svc, testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultAttendanceLimit, svc.filter.Limit)
}

func TestAttendanceHistoryRejectsBadDate(t *testing.T) {
	svc := &stubAttendanceService{}
	req := withEmployee(httptest.NewRequest(http.MethodGet, "/attendance?from=03/01/2025", nil), "NV002")
	rec := httptest.NewRecorder()

	AttendanceHistory(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
