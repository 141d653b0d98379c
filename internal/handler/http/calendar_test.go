package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
)

type fakeCalendarService struct {
	monthStats   *calendar.MonthStatsResponse
	monthErr     error
	dayDetail    *calendar.DayDetailResponse
	dayErr       error
	overrideErr  error
	lastOverride calendar.OverrideRequest
	lastDay      string
	lastActor    string
}

func (f *fakeCalendarService) MonthStats(ctx context.Context, req calendar.MonthStatsRequest) (*calendar.MonthStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.monthStats, f.monthErr
}

func (f *fakeCalendarService) DayDetail(ctx context.Context, day string) (*calendar.DayDetailResponse, error) {
	f.lastDay = day
	return f.dayDetail, f.dayErr
}

func (f *fakeCalendarService) OverrideDay(ctx context.Context, day string, actorID string, req calendar.OverrideRequest) error {
	f.lastDay = day
	f.lastActor = actorID
	f.lastOverride = req
	return f.overrideErr
}

func (f *fakeCalendarService) RunAbsenceMaintenance(ctx context.Context, now time.Time) error {
	return nil
}

func TestCalendarHandler_MonthStats(t *testing.T) {
	svc := &fakeCalendarService{
		monthStats: &calendar.MonthStatsResponse{
			Month:        "2024-03",
			FirstWeekday: 5,
			Days: []calendar.DayStatus{
				{Date: "2024-03-01", Present: 3, Leaves: 1},
			},
		},
	}
	handler := NewCalendarHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/month-stats?month=2024-03", nil)
	w := httptest.NewRecorder()
	handler.MonthStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "2024-03", data["month"])
	assert.Equal(t, float64(5), data["first_weekday"])
}

func TestCalendarHandler_MonthStats_InvalidMonth(t *testing.T) {
	handler := NewCalendarHandler(&fakeCalendarService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/month-stats?month=March", nil)
	w := httptest.NewRecorder()
	handler.MonthStats(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withClaims seeds the request context the way jwtauth.Verifier would.
func withClaims(r *http.Request, claims map[string]interface{}) *http.Request {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	if err != nil {
		panic(err)
	}
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func TestCalendarHandler_DayDetail(t *testing.T) {
	title := "Nyepi"
	svc := &fakeCalendarService{
		dayDetail: &calendar.DayDetailResponse{
			Date:    "2024-03-11",
			Holiday: &title,
			Users: []calendar.UserDayDetail{
				{UserID: "u-1", UserName: "Ana", Status: calendar.UserDayHoliday},
			},
		},
	}
	handler := NewCalendarHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/days/2024-03-11", nil)
	req = withURLParam(req, "date", "2024-03-11")
	w := httptest.NewRecorder()
	handler.DayDetail(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-11", svc.lastDay)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Nyepi", data["holiday"])
}

func TestCalendarHandler_DayDetail_InvalidDate(t *testing.T) {
	svc := &fakeCalendarService{dayErr: calendar.ErrInvalidDate}
	handler := NewCalendarHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/days/bogus", nil)
	req = withURLParam(req, "date", "bogus")
	w := httptest.NewRecorder()
	handler.DayDetail(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandler_OverrideDay_InvalidBody(t *testing.T) {
	handler := NewCalendarHandler(&fakeCalendarService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/days/2024-03-11/overrides", bytes.NewReader([]byte("not json")))
	req = withURLParam(req, "date", "2024-03-11")
	w := httptest.NewRecorder()
	handler.OverrideDay(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarHandler_OverrideDay_Conflict(t *testing.T) {
	svc := &fakeCalendarService{overrideErr: calendar.ErrDayAlreadyRecorded}
	handler := NewCalendarHandler(svc)

	body, _ := json.Marshal(calendar.OverrideRequest{UserID: "u-1", Action: calendar.OverrideMarkPresent})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/days/2024-03-11/overrides", bytes.NewReader(body))
	req = withURLParam(req, "date", "2024-03-11")
	req = withClaims(req, map[string]interface{}{"user_id": "admin-1", "role": "admin", "type": "access"})
	w := httptest.NewRecorder()
	handler.OverrideDay(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "admin-1", svc.lastActor)
}

func TestCalendarHandler_OverrideDay_Success(t *testing.T) {
	svc := &fakeCalendarService{}
	handler := NewCalendarHandler(svc)

	body, _ := json.Marshal(calendar.OverrideRequest{UserID: "u-1", Action: calendar.OverrideMarkAbsent})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/days/2024-03-11/overrides", bytes.NewReader(body))
	req = withURLParam(req, "date", "2024-03-11")
	req = withClaims(req, map[string]interface{}{"user_id": "admin-1", "role": "admin", "type": "access"})
	w := httptest.NewRecorder()
	handler.OverrideDay(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, calendar.OverrideMarkAbsent, svc.lastOverride.Action)
}
