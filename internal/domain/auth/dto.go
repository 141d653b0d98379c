package auth

import (
	"github.com/workline-hr/workline-backend-go/internal/pkg/validator"
)

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest creates a profile. Admin only.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, []string{"employee", "hr", "admin"}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'employee', 'hr' or 'admin'"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse carries a fresh access token. The refresh token rides
// in an HTTP-only cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}
