package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/announcement"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.Service
}

func NewAnnouncementHandler(announcementService announcement.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req announcement.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", created)
}

func (h *AnnouncementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	a, err := h.announcementService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, a)
}

func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	role := getRoleFromContext(r)
	filter := announcement.ListFilter{
		// Only admins see scheduled announcements ahead of publish.
		IncludeScheduled: role == string(user.RoleAdmin) && getBoolQueryParam(r, "include_scheduled", false),
		Page:             getIntQueryParam(r, "page", 1),
		Limit:            getIntQueryParam(r, "limit", 20),
	}

	items, total, err := h.announcementService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *AnnouncementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	var req announcement.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.announcementService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", updated)
}

func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
