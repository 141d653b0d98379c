package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/recognition"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
)

type RecognitionHandler interface {
	Give(w http.ResponseWriter, r *http.Request)
	Feed(w http.ResponseWriter, r *http.Request)
	MyBalance(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type RecognitionHandlerImpl struct {
	recognitionService recognition.Service
}

func NewRecognitionHandler(recognitionService recognition.Service) RecognitionHandler {
	return &RecognitionHandlerImpl{recognitionService: recognitionService}
}

func (h *RecognitionHandlerImpl) Give(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req recognition.GiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	award, err := h.recognitionService.Give(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recognition sent", award)
}

func (h *RecognitionHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	filter := recognition.FeedFilter{
		UserID: getOptQueryParam(r, "user_id"),
		Page:   getIntQueryParam(r, "page", 1),
		Limit:  getIntQueryParam(r, "limit", 20),
	}

	awards, total, err := h.recognitionService.Feed(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, awards, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

func (h *RecognitionHandlerImpl) MyBalance(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	balance, err := h.recognitionService.Balance(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func (h *RecognitionHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	balance, err := h.recognitionService.Balance(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func (h *RecognitionHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 10)

	board, err := h.recognitionService.Leaderboard(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, board)
}
