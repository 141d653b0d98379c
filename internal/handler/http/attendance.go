package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/attendance"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService attendance.Service, loc *time.Location) AttendanceHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceHandlerImpl{attendanceService: attendanceService, loc: loc}
}

func (h *AttendanceHandlerImpl) toResponse(log attendance.Log) attendance.LogResponse {
	resp := attendance.LogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		UserName:  log.UserName,
		WorkDate:  dateutil.DateKey(log.WorkDate),
		Status:    log.Status,
		Mode:      log.Mode,
		CreatedAt: log.CreatedAt.Format(time.RFC3339),
	}
	if log.ClockIn != nil {
		s := log.ClockIn.In(h.loc).Format(time.RFC3339)
		resp.ClockIn = &s
	}
	if log.ClockOut != nil {
		s := log.ClockOut.In(h.loc).Format(time.RFC3339)
		resp.ClockOut = &s
	}
	return resp
}

func (h *AttendanceHandlerImpl) toResponses(logs []attendance.Log) []attendance.LogResponse {
	out := make([]attendance.LogResponse, len(logs))
	for i, log := range logs {
		out[i] = h.toResponse(log)
	}
	return out
}

func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req attendance.ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	log, err := h.attendanceService.ClockIn(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", h.toResponse(log))
}

func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	log, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", h.toResponse(log))
}

func (h *AttendanceHandlerImpl) listFilter(r *http.Request) attendance.ListFilter {
	return attendance.ListFilter{
		UserID:    getOptQueryParam(r, "user_id"),
		StartDate: getOptQueryParam(r, "start_date"),
		EndDate:   getOptQueryParam(r, "end_date"),
		Status:    getOptQueryParam(r, "status"),
		Page:      getIntQueryParam(r, "page", 1),
		Limit:     getIntQueryParam(r, "limit", 20),
	}
}

func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := h.listFilter(r)

	logs, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, h.toResponses(logs), &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *AttendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := h.listFilter(r)
	logs, total, err := h.attendanceService.MyAttendance(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, h.toResponses(logs), &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *AttendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	if err := h.attendanceService.Approve(r.Context(), id, getUserIDFromContext(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved", nil)
}

func (h *AttendanceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	var req attendance.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Reject(r.Context(), id, getUserIDFromContext(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rejected", nil)
}
