package auth

import (
	"context"
)

// Service defines authentication operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, string, int64, error)
	LoginWithGoogle(ctx context.Context, code string) (*TokenResponse, string, int64, error)
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, string, int64, error)
	Logout(ctx context.Context, refreshToken string) error
}
