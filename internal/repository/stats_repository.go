package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// StatsRepository exposes usage statistics.
type StatsRepository interface {
	ForBicycle(ctx context.Context, id string) (*domain.Stats, error)
	ForCategory(ctx context.Context, category domain.BicycleCategory) (*domain.Stats, error)
}

type statsRepository struct {
	client *Client
}

// NewStatsRepository returns an API-backed implementation.
func NewStatsRepository(client *Client) StatsRepository {
	return &statsRepository{client: client}
}

func (r *statsRepository) ForBicycle(ctx context.Context, id string) (*domain.Stats, error) {
	var out domain.Stats
	if err := r.client.do(ctx, http.MethodGet, pathBicycleStats, "/stats/bicycle/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *statsRepository) ForCategory(ctx context.Context, category domain.BicycleCategory) (*domain.Stats, error) {
	var out domain.Stats
	path := "/stats/category/" + url.PathEscape(string(category))
	if err := r.client.do(ctx, http.MethodGet, pathCategoryStats, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
