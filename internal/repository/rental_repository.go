package repository

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// RentalFilter narrows a rental listing.
type RentalFilter struct {
	Page     int
	Count    int
	User     string
	Statuses []domain.RentalStatus
}

// RentalRepository exposes the rental lifecycle.
type RentalRepository interface {
	Create(ctx context.Context, req domain.CreateRental) (*domain.Rental, error)
	Pickup(ctx context.Context, id string) (*domain.Rental, error)
	Return(ctx context.Context, id string, req domain.ReturnRentalDetails) (*domain.Rental, error)
	Pay(ctx context.Context, id string, req domain.PayRental) (*domain.Rental, error)
	List(ctx context.Context, filter RentalFilter) ([]domain.Rental, error)
}

type rentalRepository struct {
	client *Client
}

// NewRentalRepository returns an API-backed implementation.
func NewRentalRepository(client *Client) RentalRepository {
	return &rentalRepository{client: client}
}

func (r *rentalRepository) Create(ctx context.Context, req domain.CreateRental) (*domain.Rental, error) {
	var out domain.Rental
	if err := r.client.do(ctx, http.MethodPost, pathRental, pathRental, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *rentalRepository) Pickup(ctx context.Context, id string) (*domain.Rental, error) {
	return r.transition(ctx, pathRentalPickup, id, "pickup", nil)
}

func (r *rentalRepository) Return(ctx context.Context, id string, req domain.ReturnRentalDetails) (*domain.Rental, error) {
	return r.transition(ctx, pathRentalReturn, id, "return", req)
}

func (r *rentalRepository) Pay(ctx context.Context, id string, req domain.PayRental) (*domain.Rental, error) {
	return r.transition(ctx, pathRentalPay, id, "pay", req)
}

func (r *rentalRepository) transition(ctx context.Context, endpoint, id, action string, body any) (*domain.Rental, error) {
	var out domain.Rental
	path := "/rental/" + url.PathEscape(id) + "/" + action
	if err := r.client.do(ctx, http.MethodPost, endpoint, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *rentalRepository) List(ctx context.Context, filter RentalFilter) ([]domain.Rental, error) {
	q := pageQuery(filter.Page, filter.Count)
	if filter.User != "" {
		q.Set("user", filter.User)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		q.Set("statuses", strings.Join(statuses, ","))
	}

	var out domain.Page[domain.Rental]
	if err := r.client.do(ctx, http.MethodGet, pathRentals, pathRentals, q, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
