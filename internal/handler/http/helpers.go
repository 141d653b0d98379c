package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
)

// getUserIDFromContext extracts user_id from the verified JWT claims.
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// getRoleFromContext extracts role from the verified JWT claims.
func getRoleFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}

// getOptQueryParam returns a pointer to the query value, nil when absent.
func getOptQueryParam(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}
