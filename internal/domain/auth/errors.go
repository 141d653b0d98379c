package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
)
