package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/auth"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
	"github.com/workline-hr/workline-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, token string, expiresAt int64) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(token, expiresAt))
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, refreshToken, refreshExp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken, refreshExp)
	response.Success(w, tokens)
}

func (h *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	tokens, refreshToken, refreshExp, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken, refreshExp)
	response.Success(w, tokens)
}

func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User registered successfully", tokens)
}

func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token is required")
		return
	}

	tokens, refreshToken, refreshExp, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken, refreshExp)
	response.Success(w, tokens)
}

func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie.
	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
