package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/helpdesk"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
)

type HelpdeskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyTickets(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	Comment(w http.ResponseWriter, r *http.Request)
}

type HelpdeskHandlerImpl struct {
	helpdeskService helpdesk.Service
}

func NewHelpdeskHandler(helpdeskService helpdesk.Service) HelpdeskHandler {
	return &HelpdeskHandlerImpl{helpdeskService: helpdeskService}
}

func (h *HelpdeskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req helpdesk.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ticket, err := h.helpdeskService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ticket created", ticket)
}

func (h *HelpdeskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ticket ID is required", nil)
		return
	}

	ticket, comments, err := h.helpdeskService.Get(r.Context(), id, getUserIDFromContext(r), getRoleFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"ticket":   ticket,
		"comments": comments,
	})
}

func (h *HelpdeskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := helpdesk.ListFilter{
		RequesterID: getOptQueryParam(r, "requester_id"),
		AssigneeID:  getOptQueryParam(r, "assignee_id"),
		Status:      getOptQueryParam(r, "status"),
		Priority:    getOptQueryParam(r, "priority"),
		Page:        getIntQueryParam(r, "page", 1),
		Limit:       getIntQueryParam(r, "limit", 20),
	}

	// Employees only ever see their own tickets.
	if getRoleFromContext(r) == string(user.RoleEmployee) {
		userID := getUserIDFromContext(r)
		filter.RequesterID = &userID
	}

	tickets, total, err := h.helpdeskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tickets, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *HelpdeskHandlerImpl) MyTickets(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := helpdesk.ListFilter{
		RequesterID: &userID,
		Status:      getOptQueryParam(r, "status"),
		Page:        getIntQueryParam(r, "page", 1),
		Limit:       getIntQueryParam(r, "limit", 20),
	}

	tickets, total, err := h.helpdeskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tickets, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *HelpdeskHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ticket ID is required", nil)
		return
	}

	var req helpdesk.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.helpdeskService.Assign(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket assigned", nil)
}

func (h *HelpdeskHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ticket ID is required", nil)
		return
	}

	var req helpdesk.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.helpdeskService.Transition(r.Context(), id, getUserIDFromContext(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket status updated", nil)
}

func (h *HelpdeskHandlerImpl) Comment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ticket ID is required", nil)
		return
	}

	var req helpdesk.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	comment, err := h.helpdeskService.Comment(r.Context(), id, getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comment added", comment)
}
