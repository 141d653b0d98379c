package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/leave"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) toResponse(req leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:        req.ID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		StartDate: dateutil.DateKey(req.StartDate),
		EndDate:   dateutil.DateKey(req.EndDate),
		Reason:    req.Reason,
		Status:    req.Status,
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
	}
}

func (h *LeaveHandlerImpl) toResponses(reqs []leave.Request) []leave.RequestResponse {
	out := make([]leave.RequestResponse, len(reqs))
	for i, req := range reqs {
		out[i] = h.toResponse(req)
	}
	return out
}

func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Submit(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", h.toResponse(created))
}

func (h *LeaveHandlerImpl) listFilter(r *http.Request) leave.ListFilter {
	return leave.ListFilter{
		UserID: getOptQueryParam(r, "user_id"),
		Status: getOptQueryParam(r, "status"),
		Page:   getIntQueryParam(r, "page", 1),
		Limit:  getIntQueryParam(r, "limit", 20),
	}
}

func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := h.listFilter(r)

	requests, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, h.toResponses(requests), &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := h.listFilter(r)
	requests, total, err := h.leaveService.MyRequests(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, h.toResponses(requests), &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	if err := h.leaveService.Approve(r.Context(), id, getUserIDFromContext(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.Reject(r.Context(), id, getUserIDFromContext(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}
