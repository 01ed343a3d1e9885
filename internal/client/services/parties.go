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

// PartyService owns the party-booking operations.
type PartyService interface {
	List(ctx context.Context, filter string) ([]models.Party, error)

	// Upcoming lists upcoming bookings, optionally bounded by from/to dates
	// (the dashboard widget passes a range, the list page does not).
	Upcoming(ctx context.Context, from, to string) ([]models.Party, error)

	Get(ctx context.Context, id string) (models.Party, error)
	Create(ctx context.Context, p models.Party) error
	Update(ctx context.Context, id string, p models.Party) error
	Delete(ctx context.Context, id string) error
	Monthly(ctx context.Context, year, month int) ([]models.Party, error)
	MonthlySummary(ctx context.Context, year, month int) (models.PartySummary, error)
}

type partyService struct {
	client api.Client
	now    Clock
}

func NewPartyService(client api.Client, now Clock) PartyService {
	return &partyService{client: client, now: now}
}

func (s *partyService) partyEndpoint(filter string) string {
	switch filter {
	case permissions.FilterUpcoming:
		return "/parties/upcoming"
	case permissions.FilterToday:
		return "/parties/today"
	case permissions.FilterCompleted:
		return "/parties/completed"
	case permissions.FilterThisMonth:
		return "/parties/thismonth"
	case permissions.FilterLast7Days:
		from, to := dateutil.LastNDays(s.now(), 7)
		return fmt.Sprintf("/parties/daterange?from=%s&to=%s", from, to)
	default:
		return "/parties"
	}
}

func (s *partyService) List(ctx context.Context, filter string) ([]models.Party, error) {
	var parties []models.Party
	if err := s.client.Call(ctx, http.MethodGet, s.partyEndpoint(filter), nil, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

func (s *partyService) Upcoming(ctx context.Context, from, to string) ([]models.Party, error) {
	endpoint := "/parties/upcoming"
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var parties []models.Party
	if err := s.client.Call(ctx, http.MethodGet, endpoint, nil, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

func (s *partyService) Get(ctx context.Context, id string) (models.Party, error) {
	var p models.Party
	if err := s.client.Call(ctx, http.MethodGet, "/parties/"+id, nil, &p); err != nil {
		return models.Party{}, err
	}
	return p, nil
}

func (s *partyService) Create(ctx context.Context, p models.Party) error {
	return s.client.Call(ctx, http.MethodPost, "/parties", p, nil)
}

func (s *partyService) Update(ctx context.Context, id string, p models.Party) error {
	return s.client.Call(ctx, http.MethodPut, "/parties/"+id, p, nil)
}

func (s *partyService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/parties/"+id, nil, nil)
}

func (s *partyService) Monthly(ctx context.Context, year, month int) ([]models.Party, error) {
	var parties []models.Party
	if err := s.client.Call(ctx, http.MethodGet, "/parties/monthly"+monthlyQuery(year, month), nil, &parties); err != nil {
		return nil, err
	}
	return parties, nil
}

func (s *partyService) MonthlySummary(ctx context.Context, year, month int) (models.PartySummary, error) {
	var summary models.PartySummary
	if err := s.client.Call(ctx, http.MethodGet, "/parties/monthly-summary"+monthlyQuery(year, month), nil, &summary); err != nil {
		return models.PartySummary{}, err
	}
	return summary, nil
}
