package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workline-hr/workline-backend-go/internal/domain/auth"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.Role(role), nil
}

// AdminOnly restricts a route to admin profiles.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HROnly restricts a route to HR and admin profiles.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if role != user.RoleHR && role != user.RoleAdmin {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
