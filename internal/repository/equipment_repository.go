package repository

import (
	"context"
	"net/http"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// EquipmentRepository exposes equipment management.
type EquipmentRepository interface {
	List(ctx context.Context, page, count int) ([]domain.Equipment, error)
	Create(ctx context.Context, req domain.CreateEquipment) (*domain.Equipment, error)
}

type equipmentRepository struct {
	client *Client
}

// NewEquipmentRepository returns an API-backed implementation.
func NewEquipmentRepository(client *Client) EquipmentRepository {
	return &equipmentRepository{client: client}
}

func (r *equipmentRepository) List(ctx context.Context, page, count int) ([]domain.Equipment, error) {
	var out domain.Page[domain.Equipment]
	if err := r.client.do(ctx, http.MethodGet, pathEquipments, pathEquipments, pageQuery(page, count), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (r *equipmentRepository) Create(ctx context.Context, req domain.CreateEquipment) (*domain.Equipment, error) {
	var out domain.Equipment
	if err := r.client.do(ctx, http.MethodPost, pathEquipment, pathEquipment, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
