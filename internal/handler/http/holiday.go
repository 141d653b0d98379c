package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.Service
}

func NewHolidayHandler(holidayService holiday.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

func (h *HolidayHandlerImpl) toResponse(event holiday.Event) holiday.EventResponse {
	return holiday.EventResponse{
		ID:        event.ID,
		EventDate: dateutil.DateKey(event.EventDate),
		Title:     event.Title,
	}
}

func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", h.toResponse(event))
}

func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.holidayService.ListForRange(r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]holiday.EventResponse, len(events))
	for i, event := range events {
		out[i] = h.toResponse(event)
	}
	response.Success(w, out)
}

func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
