package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

const currentRentalPageSize = 5

// RentalService backs the customer rental screen.
type RentalService struct {
	rentals  repository.RentalRepository
	bicycles repository.BicycleRepository
	logger   *zap.Logger
}

// NewRentalService creates the service.
func NewRentalService(rentals repository.RentalRepository, bicycles repository.BicycleRepository, logger *zap.Logger) *RentalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RentalService{rentals: rentals, bicycles: bicycles, logger: logger}
}

// RentalOverview is what the rental screen shows: either the customer's
// current rental or the bicycles available to book.
type RentalOverview struct {
	Current   *domain.Rental
	Available []domain.Bicycle
	// Notice reports a lookup that failed without preventing the screen from rendering.
	Notice string
}

// Overview finds the open rental of username. Without one, it lists the
// available bicycles instead.
func (s *RentalService) Overview(ctx context.Context, username string) (*RentalOverview, error) {
	overview := &RentalOverview{}

	if username != "" {
		rentals, err := s.rentals.List(ctx, repository.RentalFilter{
			Page:     firstPage,
			Count:    currentRentalPageSize,
			User:     username,
			Statuses: domain.OpenRentalStatuses(),
		})
		if err == nil && len(rentals) > 0 {
			current := rentals[0]
			overview.Current = &current
			return overview, nil
		}
		if err != nil {
			s.logger.Warn("failed to fetch current rental", zap.String("username", username), zap.Error(err))
			overview.Notice = util.ToDomainError(failed(err, "Failed to fetch current rental")).Message
		}
	}

	available, err := s.Available(ctx)
	if err != nil {
		return overview, err
	}
	overview.Available = available
	return overview, nil
}

// Available lists the bicycles that can be booked right now.
func (s *RentalService) Available(ctx context.Context) ([]domain.Bicycle, error) {
	bikes, err := s.bicycles.List(ctx, firstPage, listPageSize)
	if err != nil {
		return nil, failed(err, "Failed to fetch bicycles")
	}
	available := make([]domain.Bicycle, 0, len(bikes))
	for _, b := range bikes {
		if b.Status == domain.BicycleStatusAvailable {
			available = append(available, b)
		}
	}
	return available, nil
}

// Book creates a rental for bicycleID.
func (s *RentalService) Book(ctx context.Context, bicycleID string) (*domain.Rental, error) {
	bicycleID = strings.TrimSpace(bicycleID)
	if bicycleID == "" {
		return nil, util.NewValidationError("Select a bicycle to book.", nil)
	}
	rental, err := s.rentals.Create(ctx, domain.CreateRental{BicycleID: bicycleID})
	if err != nil {
		return nil, failed(err, "Failed to book rental")
	}
	return rental, nil
}

// Pickup marks a booked rental as in progress.
func (s *RentalService) Pickup(ctx context.Context, rentalID string) (*domain.Rental, error) {
	if err := requireRentalID(rentalID); err != nil {
		return nil, err
	}
	rental, err := s.rentals.Pickup(ctx, rentalID)
	if err != nil {
		return nil, failed(err, "Failed to pick up rental")
	}
	return rental, nil
}

// Return ends a rental. An empty parking lot name is sent as null.
func (s *RentalService) Return(ctx context.Context, rentalID, parkingLot string) (*domain.Rental, error) {
	if err := requireRentalID(rentalID); err != nil {
		return nil, err
	}

	var details domain.ReturnRentalDetails
	if lot := strings.TrimSpace(parkingLot); lot != "" {
		details.ReturnParkingLotName = &lot
	}

	rental, err := s.rentals.Return(ctx, rentalID, details)
	if err != nil {
		return nil, failed(err, "Failed to return rental")
	}
	return rental, nil
}

// Pay settles a finished rental. A PAYED rental no longer shows as current.
func (s *RentalService) Pay(ctx context.Context, rentalID, paymentType string) (*domain.Rental, error) {
	if err := requireRentalID(rentalID); err != nil {
		return nil, err
	}
	pt := domain.PaymentType(strings.TrimSpace(paymentType))
	if !isPaymentType(pt, domain.PaymentTypes()) {
		return nil, util.NewValidationError("Select a payment type.", map[string]any{"paymentType": paymentType})
	}

	rental, err := s.rentals.Pay(ctx, rentalID, domain.PayRental{PaymentType: pt})
	if err != nil {
		return nil, failed(err, "Payment failed")
	}
	return rental, nil
}

func requireRentalID(id string) error {
	if strings.TrimSpace(id) == "" {
		return util.NewValidationError("No rental selected.", nil)
	}
	return nil
}
