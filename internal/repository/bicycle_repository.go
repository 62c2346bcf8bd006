package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// BicycleRepository exposes bicycle management.
type BicycleRepository interface {
	List(ctx context.Context, page, count int) ([]domain.Bicycle, error)
	Get(ctx context.Context, id string) (*domain.Bicycle, error)
	Create(ctx context.Context, req domain.CreateBicycle) (*domain.Bicycle, error)
	Update(ctx context.Context, id string, req domain.UpdateBicycle) (*domain.Bicycle, error)
}

type bicycleRepository struct {
	client *Client
}

// NewBicycleRepository returns an API-backed implementation.
func NewBicycleRepository(client *Client) BicycleRepository {
	return &bicycleRepository{client: client}
}

func (r *bicycleRepository) List(ctx context.Context, page, count int) ([]domain.Bicycle, error) {
	var out domain.Page[domain.Bicycle]
	if err := r.client.do(ctx, http.MethodGet, pathBicycles, pathBicycles, pageQuery(page, count), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (r *bicycleRepository) Get(ctx context.Context, id string) (*domain.Bicycle, error) {
	var out domain.Bicycle
	if err := r.client.do(ctx, http.MethodGet, pathBicycleByID, "/bicycle/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *bicycleRepository) Create(ctx context.Context, req domain.CreateBicycle) (*domain.Bicycle, error) {
	var out domain.Bicycle
	if err := r.client.do(ctx, http.MethodPost, pathBicycle, pathBicycle, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *bicycleRepository) Update(ctx context.Context, id string, req domain.UpdateBicycle) (*domain.Bicycle, error) {
	var out domain.Bicycle
	if err := r.client.do(ctx, http.MethodPatch, pathBicycleByID, "/bicycle/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(page, count int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("count", strconv.Itoa(count))
	return q
}
