package services

import (
	"context"
	"net/http"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

// PackageService owns the multi-visit package operations.
type PackageService interface {
	List(ctx context.Context, filter string) ([]models.Package, error)
	Get(ctx context.Context, id string) (models.Package, error)
	Create(ctx context.Context, p models.Package) error
	Update(ctx context.Context, id string, p models.Package) error
	Delete(ctx context.Context, id string) error
	UseVisit(ctx context.Context, id string) error
}

type packageService struct {
	client api.Client
}

func NewPackageService(client api.Client) PackageService {
	return &packageService{client: client}
}

func packageEndpoint(filter string) string {
	switch filter {
	case permissions.FilterActive:
		return "/packages/active"
	case permissions.FilterCompleted:
		return "/packages/completed"
	case permissions.FilterExpiring:
		return "/packages/expiring"
	default:
		return "/packages"
	}
}

func (s *packageService) List(ctx context.Context, filter string) ([]models.Package, error) {
	var packages []models.Package
	if err := s.client.Call(ctx, http.MethodGet, packageEndpoint(filter), nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *packageService) Get(ctx context.Context, id string) (models.Package, error) {
	var p models.Package
	if err := s.client.Call(ctx, http.MethodGet, "/packages/"+id, nil, &p); err != nil {
		return models.Package{}, err
	}
	return p, nil
}

func (s *packageService) Create(ctx context.Context, p models.Package) error {
	return s.client.Call(ctx, http.MethodPost, "/packages", p, nil)
}

func (s *packageService) Update(ctx context.Context, id string, p models.Package) error {
	return s.client.Call(ctx, http.MethodPut, "/packages/"+id, p, nil)
}

func (s *packageService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/packages/"+id, nil, nil)
}

func (s *packageService) UseVisit(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodPost, "/packages/"+id+"/use-visit", nil, nil)
}
