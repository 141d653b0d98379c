package oauth

import (
	"context"
	"encoding/json"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleService wraps the OAuth2 code-exchange flow used by the
// Google login endpoint.
type GoogleService interface {
	// Exchange trades the authorization code for an OAuth2 token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// UserInfo fetches and decodes the Google profile for a token.
	UserInfo(ctx context.Context, token *oauth2.Token) (GoogleProfile, error)
}

// GoogleProfile is the subset of the userinfo payload the auth service
// needs.
type GoogleProfile struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

type googleService struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code)
}

func (g *googleService) UserInfo(ctx context.Context, token *oauth2.Token) (GoogleProfile, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return GoogleProfile{}, err
	}
	defer resp.Body.Close()

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, err
	}
	return profile, nil
}
