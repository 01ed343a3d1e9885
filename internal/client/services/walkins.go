package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"playcenter-console/internal/client/api"
	"playcenter-console/internal/client/dateutil"
	"playcenter-console/internal/client/models"
	"playcenter-console/internal/client/permissions"
)

// WalkinService owns the walk-in operations and the filter-to-path mapping
// for the walk-ins list.
type WalkinService interface {
	List(ctx context.Context, filter, from, to string) ([]models.Walkin, error)
	Get(ctx context.Context, id string) (models.Walkin, error)
	Create(ctx context.Context, w models.Walkin) error
	Update(ctx context.Context, id string, w models.Walkin) error
	Delete(ctx context.Context, id string) error
	Checkout(ctx context.Context, id string) error
	Search(ctx context.Context, query, searchType string) ([]models.WalkinMatch, error)
	Monthly(ctx context.Context, year, month int) ([]models.Walkin, error)
	MonthlySummary(ctx context.Context, year, month int) (models.WalkinSummary, error)
}

type walkinService struct {
	client api.Client
	now    Clock
}

func NewWalkinService(client api.Client, now Clock) WalkinService {
	return &walkinService{client: client, now: now}
}

// walkinEndpoint expands a filter selection into a concrete path. Relative
// windows become absolute from/to parameters computed from the clock.
func (s *walkinService) walkinEndpoint(filter, from, to string) (string, error) {
	switch filter {
	case permissions.FilterToday:
		return "/walkins/today", nil
	case permissions.FilterActive:
		return "/walkins/active", nil
	case permissions.FilterCompleted:
		return "/walkins/completed", nil
	case permissions.FilterLast7Days:
		from, to := dateutil.LastNDays(s.now(), 7)
		return fmt.Sprintf("/walkins/daterange?from=%s&to=%s", from, to), nil
	case permissions.FilterDateRange:
		if from == "" || to == "" {
			return "", ErrDateRangeRequired
		}
		q := url.Values{"from": {from}, "to": {to}}
		return "/walkins/daterange?" + q.Encode(), nil
	default:
		return "/walkins", nil
	}
}

func (s *walkinService) List(ctx context.Context, filter, from, to string) ([]models.Walkin, error) {
	endpoint, err := s.walkinEndpoint(filter, from, to)
	if err != nil {
		return nil, err
	}

	var walkins []models.Walkin
	if err := s.client.Call(ctx, http.MethodGet, endpoint, nil, &walkins); err != nil {
		return nil, err
	}
	return walkins, nil
}

func (s *walkinService) Get(ctx context.Context, id string) (models.Walkin, error) {
	var w models.Walkin
	if err := s.client.Call(ctx, http.MethodGet, "/walkins/"+id, nil, &w); err != nil {
		return models.Walkin{}, err
	}
	return w, nil
}

func (s *walkinService) Create(ctx context.Context, w models.Walkin) error {
	return s.client.Call(ctx, http.MethodPost, "/walkins", w, nil)
}

func (s *walkinService) Update(ctx context.Context, id string, w models.Walkin) error {
	return s.client.Call(ctx, http.MethodPut, "/walkins/"+id, w, nil)
}

func (s *walkinService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/walkins/"+id, nil, nil)
}

func (s *walkinService) Checkout(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodPost, "/walkins/"+id+"/checkout", nil, nil)
}

func (s *walkinService) Search(ctx context.Context, query, searchType string) ([]models.WalkinMatch, error) {
	q := url.Values{"q": {query}, "type": {searchType}}

	var matches []models.WalkinMatch
	if err := s.client.Call(ctx, http.MethodGet, "/walkins/search?"+q.Encode(), nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *walkinService) Monthly(ctx context.Context, year, month int) ([]models.Walkin, error) {
	var walkins []models.Walkin
	if err := s.client.Call(ctx, http.MethodGet, "/walkins/monthly"+monthlyQuery(year, month), nil, &walkins); err != nil {
		return nil, err
	}
	return walkins, nil
}

func (s *walkinService) MonthlySummary(ctx context.Context, year, month int) (models.WalkinSummary, error) {
	var summary models.WalkinSummary
	if err := s.client.Call(ctx, http.MethodGet, "/walkins/monthly-summary"+monthlyQuery(year, month), nil, &summary); err != nil {
		return models.WalkinSummary{}, err
	}
	return summary, nil
}
