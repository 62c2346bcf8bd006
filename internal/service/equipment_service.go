package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

// EquipmentService backs the admin equipment screen.
type EquipmentService struct {
	equipment repository.EquipmentRepository
}

// NewEquipmentService creates the service.
func NewEquipmentService(equipment repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{equipment: equipment}
}

// EquipmentCreateInput is the add-equipment form.
type EquipmentCreateInput struct {
	BicycleID   string
	Type        string
	Name        string
	Description string
}

// List returns the first page of equipment.
func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	items, err := s.equipment.List(ctx, firstPage, listPageSize)
	if err != nil {
		return nil, failed(err, "Failed to fetch equipment")
	}
	return items, nil
}

// Create validates the form and registers the equipment.
func (s *EquipmentService) Create(ctx context.Context, input EquipmentCreateInput) (*domain.Equipment, error) {
	req := domain.CreateEquipment{
		BicycleID:   strings.TrimSpace(input.BicycleID),
		Type:        domain.EquipmentType(strings.TrimSpace(input.Type)),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if req.BicycleID == "" || req.Type == "" || req.Name == "" || req.Description == "" {
		return nil, util.NewValidationError("Please fill in all required fields.", nil)
	}
	if !isEquipmentType(req.Type) {
		return nil, util.NewValidationError(fmt.Sprintf("Unknown equipment type %q.", req.Type), map[string]any{"type": req.Type})
	}

	item, err := s.equipment.Create(ctx, req)
	if err != nil {
		return nil, upstreamOr(err, "Failed to add the equipment.")
	}
	return item, nil
}

func isEquipmentType(t domain.EquipmentType) bool {
	for _, known := range domain.EquipmentTypes() {
		if known == t {
			return true
		}
	}
	return false
}
