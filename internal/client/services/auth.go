package services

import (
	"context"
	"net/http"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/models"
)

// AuthService covers the two authentication operations. Persisting the
// credential is the caller's business; this service only talks to the API.
type AuthService interface {
	// Login exchanges credentials for a bearer token and the identity.
	Login(ctx context.Context, username, password string) (string, models.User, error)

	// Verify re-derives the identity behind the current credential.
	Verify(ctx context.Context) (models.User, error)
}

type authService struct {
	client api.Client
}

func NewAuthService(client api.Client) AuthService {
	return &authService{client: client}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, models.User, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := s.client.Call(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", models.User{}, err
	}
	return resp.Token, resp.User, nil
}

func (s *authService) Verify(ctx context.Context) (models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := s.client.Call(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}
