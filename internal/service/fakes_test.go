package service

import (
	"context"
	"net/http"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

type fakeBicycles struct {
	list    []domain.Bicycle
	err     error
	created []domain.CreateBicycle
	updated map[string]float64
}

func (f *fakeBicycles) List(_ context.Context, page, count int) ([]domain.Bicycle, error) {
	return f.list, f.err
}

func (f *fakeBicycles) Get(_ context.Context, id string) (*domain.Bicycle, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.list {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, util.FromResponse(http.StatusNotFound, "", "")
}

func (f *fakeBicycles) Create(_ context.Context, req domain.CreateBicycle) (*domain.Bicycle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &domain.Bicycle{ID: "new", Brand: req.Brand, HourlyPrice: req.HourlyPrice}, nil
}

func (f *fakeBicycles) Update(_ context.Context, id string, req domain.UpdateBicycle) (*domain.Bicycle, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		f.updated = map[string]float64{}
	}
	f.updated[id] = req.HourlyPrice
	return &domain.Bicycle{ID: id, HourlyPrice: req.HourlyPrice}, nil
}

type fakeRentals struct {
	list     []domain.Rental
	listErr  error
	err      error
	filters  []repository.RentalFilter
	created  []domain.CreateRental
	returned []domain.ReturnRentalDetails
	paid     []domain.PayRental
}

func (f *fakeRentals) Create(_ context.Context, req domain.CreateRental) (*domain.Rental, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &domain.Rental{ID: "r1", BicycleID: req.BicycleID, Status: domain.RentalStatusCreated}, nil
}

func (f *fakeRentals) Pickup(_ context.Context, id string) (*domain.Rental, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Rental{ID: id, Status: domain.RentalStatusInProgress}, nil
}

func (f *fakeRentals) Return(_ context.Context, id string, req domain.ReturnRentalDetails) (*domain.Rental, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.returned = append(f.returned, req)
	return &domain.Rental{ID: id, Status: domain.RentalStatusFinished}, nil
}

func (f *fakeRentals) Pay(_ context.Context, id string, req domain.PayRental) (*domain.Rental, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.paid = append(f.paid, req)
	return &domain.Rental{ID: id, Status: domain.RentalStatusPayed}, nil
}

func (f *fakeRentals) List(_ context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	f.filters = append(f.filters, filter)
	return f.list, f.listErr
}

type fakeStats struct {
	stats *domain.Stats
	err   error
	asked []string
}

func (f *fakeStats) ForBicycle(_ context.Context, id string) (*domain.Stats, error) {
	f.asked = append(f.asked, id)
	return f.stats, f.err
}

func (f *fakeStats) ForCategory(_ context.Context, c domain.BicycleCategory) (*domain.Stats, error) {
	f.asked = append(f.asked, string(c))
	return f.stats, f.err
}

type fakeEquipment struct {
	list    []domain.Equipment
	err     error
	created []domain.CreateEquipment
}

func (f *fakeEquipment) List(_ context.Context, page, count int) ([]domain.Equipment, error) {
	return f.list, f.err
}

func (f *fakeEquipment) Create(_ context.Context, req domain.CreateEquipment) (*domain.Equipment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &domain.Equipment{ID: "e1", Name: req.Name}, nil
}

type fakePaymentMethods struct {
	list    []domain.PaymentMethod
	err     error
	created []domain.CreatePaymentMethod
	deleted []string
}

func (f *fakePaymentMethods) List(context.Context) ([]domain.PaymentMethod, error) {
	return f.list, f.err
}

func (f *fakePaymentMethods) Create(_ context.Context, req domain.CreatePaymentMethod) (*domain.PaymentMethod, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req)
	return &domain.PaymentMethod{ID: "p1", ExpireAt: req.ExpireAt}, nil
}

func (f *fakePaymentMethods) Update(_ context.Context, id string, req domain.UpdatePaymentMethod) (*domain.PaymentMethod, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.PaymentMethod{ID: id, ExpireAt: req.ExpireAt}, nil
}

func (f *fakePaymentMethods) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func message(err error) string {
	return util.ToDomainError(err).Message
}
