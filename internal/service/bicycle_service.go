package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

const (
	firstPage    = 0
	listPageSize = 50
	minPrice     = 0.01
)

// BicycleService backs the admin bicycle screens.
type BicycleService struct {
	bicycles repository.BicycleRepository
}

// NewBicycleService creates the service.
func NewBicycleService(bicycles repository.BicycleRepository) *BicycleService {
	return &BicycleService{bicycles: bicycles}
}

// BicycleCreateInput is the add-bicycle form.
type BicycleCreateInput struct {
	CurrentParkingLotName string
	Categories            []string
	ChassisID             string
	Brand                 string
	Model                 string
	HourlyPrice           float64
}

// List returns the first page of bicycles.
func (s *BicycleService) List(ctx context.Context) ([]domain.Bicycle, error) {
	bikes, err := s.bicycles.List(ctx, firstPage, listPageSize)
	if err != nil {
		return nil, failed(err, "Failed to fetch bicycles")
	}
	return bikes, nil
}

// Create validates the form and registers the bicycle.
func (s *BicycleService) Create(ctx context.Context, input BicycleCreateInput) (*domain.Bicycle, error) {
	req := domain.CreateBicycle{
		CurrentParkingLotName: strings.TrimSpace(input.CurrentParkingLotName),
		ChassisID:             strings.TrimSpace(input.ChassisID),
		Brand:                 strings.TrimSpace(input.Brand),
		Model:                 strings.TrimSpace(input.Model),
		HourlyPrice:           input.HourlyPrice,
	}

	missing := map[string]any{}
	for field, value := range map[string]string{
		"currentParkingLotName": req.CurrentParkingLotName,
		"chassisId":             req.ChassisID,
		"brand":                 req.Brand,
		"model":                 req.Model,
	} {
		if value == "" {
			missing[field] = "required"
		}
	}
	if len(missing) > 0 {
		return nil, util.NewValidationError("Please fill in all required fields.", missing)
	}

	for _, c := range input.Categories {
		if !domain.IsValidBicycleCategory(c) {
			return nil, util.NewValidationError(fmt.Sprintf("Unknown category %q.", c), map[string]any{"categories": c})
		}
		req.Categories = append(req.Categories, domain.BicycleCategory(c))
	}
	if len(req.Categories) == 0 {
		return nil, util.NewValidationError("Select at least one category.", map[string]any{"categories": "required"})
	}
	if !validPrice(req.HourlyPrice) {
		return nil, util.NewValidationError("Hourly price must be at least 0.01.", map[string]any{"hourlyPrice": req.HourlyPrice})
	}

	bike, err := s.bicycles.Create(ctx, req)
	if err != nil {
		return nil, upstreamOr(err, "Failed to add the bicycle.")
	}
	return bike, nil
}

// Get loads a bicycle for the price form.
func (s *BicycleService) Get(ctx context.Context, id string) (*domain.Bicycle, error) {
	id = strings.TrimSpace(id)
	if err := validateBicycleID(id); err != nil {
		return nil, err
	}

	bike, err := s.bicycles.Get(ctx, id)
	if err != nil {
		if util.StatusOf(err) == http.StatusNotFound {
			return nil, util.NewDomainError("NOT_FOUND",
				fmt.Sprintf("Bicycle with ID '%s' not found. Check the ID and try again.", id),
				http.StatusNotFound, nil)
		}
		return nil, prefixedOr(err, "Failed to load bicycle", "An error occurred while loading the bicycle details.")
	}
	return bike, nil
}

// UpdatePrice sets a new hourly price.
func (s *BicycleService) UpdatePrice(ctx context.Context, id string, price float64) (*domain.Bicycle, error) {
	id = strings.TrimSpace(id)
	if err := validateBicycleID(id); err != nil {
		return nil, err
	}
	if !validPrice(price) {
		return nil, util.NewValidationError("Hourly price must be at least 0.01.", map[string]any{"hourlyPrice": price})
	}

	bike, err := s.bicycles.Update(ctx, id, domain.UpdateBicycle{HourlyPrice: price})
	if err != nil {
		return nil, prefixedOr(err, "Failed to update price", "An error occurred while updating the hourly price.")
	}
	return bike, nil
}

// validPrice rejects NaN and infinities along with prices below minPrice.
func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= minPrice
}

func validateBicycleID(id string) error {
	if id == "" {
		return util.NewValidationError("Please enter a Bicycle ID.", nil)
	}
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return util.NewValidationError("Invalid Bicycle ID format. Please enter a valid UUID.", map[string]any{"bicycleId": id})
	}
	return nil
}
