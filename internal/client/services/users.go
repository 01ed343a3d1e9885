package services

import (
	"context"
	"net/http"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/models"
)

// UserService owns staff-account management. Access control is the server's
// business; the client merely hides the page from non-administrators.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.User) error
	Update(ctx context.Context, id string, u models.User) error
	Delete(ctx context.Context, id string) error
}

type userService struct {
	client api.Client
}

func NewUserService(client api.Client) UserService {
	return &userService{client: client}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.Call(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, u models.User) error {
	return s.client.Call(ctx, http.MethodPost, "/users", u, nil)
}

func (s *userService) Update(ctx context.Context, id string, u models.User) error {
	return s.client.Call(ctx, http.MethodPut, "/users/"+id, u, nil)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}
