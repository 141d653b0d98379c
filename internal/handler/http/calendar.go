package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/calendar"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	MonthStats(w http.ResponseWriter, r *http.Request)
	DayDetail(w http.ResponseWriter, r *http.Request)
	OverrideDay(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// MonthStats serves the calendar grid data. HR and admins see the
// aggregate; passing user_id narrows to one person's statuses.
func (h *CalendarHandlerImpl) MonthStats(w http.ResponseWriter, r *http.Request) {
	req := calendar.MonthStatsRequest{
		Month:  r.URL.Query().Get("month"),
		UserID: getOptQueryParam(r, "user_id"),
	}

	stats, err := h.calendarService.MonthStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *CalendarHandlerImpl) DayDetail(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "date")
	if day == "" {
		response.BadRequest(w, "Date is required", nil)
		return
	}

	detail, err := h.calendarService.DayDetail(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

func (h *CalendarHandlerImpl) OverrideDay(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "date")
	if day == "" {
		response.BadRequest(w, "Date is required", nil)
		return
	}

	var req calendar.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID := getUserIDFromContext(r)
	if actorID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.calendarService.OverrideDay(r.Context(), day, actorID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day override applied", nil)
}
