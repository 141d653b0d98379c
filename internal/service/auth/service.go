package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/workline-hr/workline-backend-go/internal/domain/auth"
	"github.com/workline-hr/workline-backend-go/internal/domain/user"
	"github.com/workline-hr/workline-backend-go/internal/pkg/jwt"
	"github.com/workline-hr/workline-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

func (s *AuthServiceImpl) issueTokens(u user.User) (*auth.TokenResponse, string, int64, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		UserID:      u.ID,
		Role:        string(u.Role),
	}, refreshToken, refreshExp, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return nil, "", 0, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", 0, auth.ErrInvalidCredentials
		}
		return nil, "", 0, fmt.Errorf("failed to get user: %w", err)
	}
	if u.PasswordHash == nil {
		return nil, "", 0, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", 0, auth.ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, "", 0, auth.ErrAccountInactive
	}

	return s.issueTokens(u)
}

// LoginWithGoogle trades the OAuth authorization code for a session.
// A first-time Google login with an email already registered links the
// Google ID to the existing profile; unknown emails are rejected, the
// roster is provisioned by an admin.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (*auth.TokenResponse, string, int64, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	profile, err := s.googleService.UserInfo(ctx, token)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !profile.VerifiedEmail {
		return nil, "", 0, auth.ErrInvalidCredentials
	}

	u, err := s.UserRepository.GetByGoogleID(ctx, profile.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return nil, "", 0, fmt.Errorf("failed to get user by google id: %w", err)
		}
		u, err = s.UserRepository.GetByEmail(ctx, profile.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil, "", 0, auth.ErrInvalidCredentials
			}
			return nil, "", 0, fmt.Errorf("failed to get user by email: %w", err)
		}
		u.GoogleID = &profile.GoogleID
		if err := s.UserRepository.Update(ctx, u); err != nil {
			return nil, "", 0, fmt.Errorf("failed to link google account: %w", err)
		}
	}
	if !u.IsActive() {
		return nil, "", 0, auth.ErrAccountInactive
	}

	return s.issueTokens(u)
}

// Register provisions a profile. Exposed to admins only; the handler
// enforces the role.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return nil, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	u, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
		Status:       user.StatusActive,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp, _, _, err := s.issueTokens(u)
	return resp, err
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, "", 0, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, "", 0, auth.ErrInvalidToken
	}
	tokenType, ok := decoded.Get("type")
	if !ok || tokenType != "refresh" {
		return nil, "", 0, auth.ErrInvalidToken
	}
	userIDVal, ok := decoded.Get("user_id")
	if !ok {
		return nil, "", 0, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return nil, "", 0, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", 0, auth.ErrInvalidToken
		}
		return nil, "", 0, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.IsActive() {
		return nil, "", 0, auth.ErrAccountInactive
	}

	// Rotate: the old refresh token is dead once a new pair is issued.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}
