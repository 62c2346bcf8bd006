package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// PaymentMethodRepository exposes the customer's stored payment methods.
type PaymentMethodRepository interface {
	List(ctx context.Context) ([]domain.PaymentMethod, error)
	Create(ctx context.Context, req domain.CreatePaymentMethod) (*domain.PaymentMethod, error)
	Update(ctx context.Context, id string, req domain.UpdatePaymentMethod) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}

type paymentMethodRepository struct {
	client *Client
}

// NewPaymentMethodRepository returns an API-backed implementation.
func NewPaymentMethodRepository(client *Client) PaymentMethodRepository {
	return &paymentMethodRepository{client: client}
}

func (r *paymentMethodRepository) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	if err := r.client.do(ctx, http.MethodGet, pathPaymentMethods, pathPaymentMethods, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *paymentMethodRepository) Create(ctx context.Context, req domain.CreatePaymentMethod) (*domain.PaymentMethod, error) {
	var out domain.PaymentMethod
	if err := r.client.do(ctx, http.MethodPost, pathPaymentMethod, pathPaymentMethod, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *paymentMethodRepository) Update(ctx context.Context, id string, req domain.UpdatePaymentMethod) (*domain.PaymentMethod, error) {
	var out domain.PaymentMethod
	if err := r.client.do(ctx, http.MethodPut, pathPaymentByID, "/payment-method/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *paymentMethodRepository) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, pathPaymentByID, "/payment-method/"+url.PathEscape(id), nil, nil, nil)
}
