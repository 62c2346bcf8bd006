package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// PaymentService backs the customer payment methods screen.
type PaymentService struct {
	methods repository.PaymentMethodRepository
}

// NewPaymentService creates the service.
func NewPaymentService(methods repository.PaymentMethodRepository) *PaymentService {
	return &PaymentService{methods: methods}
}

// PaymentMethodInput is the add/edit payment method form. ExpireAt is MM/YY.
type PaymentMethodInput struct {
	Type     string
	CC       string
	CVC      string
	Holder   string
	ExpireAt string
}

// PaymentMethodView is a stored payment method prepared for display.
type PaymentMethodView struct {
	domain.PaymentMethod
	MaskedCC string
	Expiry   string
}

// StoredPaymentTypes are the types a customer can save. Cash is paid on the spot.
func StoredPaymentTypes() []domain.PaymentType {
	return []domain.PaymentType{domain.PaymentTypeCreditCard, domain.PaymentTypeDebitCard}
}

// List returns the customer's payment methods.
func (s *PaymentService) List(ctx context.Context) ([]PaymentMethodView, error) {
	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, upstreamOr(err, "Error while loading payment methods.")
	}
	views := make([]PaymentMethodView, len(methods))
	for i, m := range methods {
		views[i] = PaymentMethodView{
			PaymentMethod: m,
			MaskedCC:      MaskCard(m.CC),
			Expiry:        FormatExpiry(m.ExpireAt),
		}
	}
	return views, nil
}

// Create stores a new payment method.
func (s *PaymentService) Create(ctx context.Context, input PaymentMethodInput) (*domain.PaymentMethod, error) {
	req, err := input.request()
	if err != nil {
		return nil, err
	}
	method, err := s.methods.Create(ctx, req)
	if err != nil {
		return nil, upstreamOr(err, "Error while adding the payment method.")
	}
	return method, nil
}

// Update replaces a stored payment method.
func (s *PaymentService) Update(ctx context.Context, id string, input PaymentMethodInput) (*domain.PaymentMethod, error) {
	if strings.TrimSpace(id) == "" {
		return nil, util.NewValidationError("No payment method selected.", nil)
	}
	req, err := input.request()
	if err != nil {
		return nil, err
	}
	method, err := s.methods.Update(ctx, id, req)
	if err != nil {
		return nil, upstreamOr(err, "Error while updating the payment method.")
	}
	return method, nil
}

// Delete removes a stored payment method.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return util.NewValidationError("No payment method selected.", nil)
	}
	if err := s.methods.Delete(ctx, id); err != nil {
		return upstreamOr(err, "Error while deleting the payment method.")
	}
	return nil
}

func (in PaymentMethodInput) request() (domain.CreatePaymentMethod, error) {
	req := domain.CreatePaymentMethod{
		Type:   domain.PaymentType(strings.TrimSpace(in.Type)),
		CC:     strings.TrimSpace(in.CC),
		CVC:    strings.TrimSpace(in.CVC),
		Holder: strings.TrimSpace(in.Holder),
	}
	if req.Type == "" || req.CC == "" || req.CVC == "" || req.Holder == "" || strings.TrimSpace(in.ExpireAt) == "" {
		return req, util.NewValidationError("Please fill in all required fields.", nil)
	}
	if !isPaymentType(req.Type, StoredPaymentTypes()) {
		return req, util.NewValidationError(fmt.Sprintf("Payment type %q cannot be stored.", req.Type), map[string]any{"type": req.Type})
	}
	date, err := ExpiryToDate(in.ExpireAt)
	if err != nil {
		return req, err
	}
	req.ExpireAt = date
	return req, nil
}

// ExpiryToDate turns a MM/YY card expiry into the first day of that month,
// formatted YYYY-MM-DD.
func ExpiryToDate(expiry string) (string, error) {
	expiry = strings.TrimSpace(expiry)
	if !expiryPattern.MatchString(expiry) {
		return "", util.NewValidationError("Expiry must be in MM/YY format.", map[string]any{"expireAt": expiry})
	}
	month, year, _ := strings.Cut(expiry, "/")
	return fmt.Sprintf("20%s-%s-01", year, month), nil
}

// FormatExpiry renders a stored expiry as MM/YY. Values that are neither
// MM/YY nor a date are returned unchanged.
func FormatExpiry(value string) string {
	if value == "" || expiryPattern.MatchString(value) {
		return value
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("01/06")
		}
	}
	return value
}

// MaskCard hides all but the last four digits of a card number.
func MaskCard(cc string) string {
	if cc == "" {
		return ""
	}
	last := cc
	if len(cc) > 4 {
		last = cc[len(cc)-4:]
	}
	return "**** **** **** " + last
}

func isPaymentType(t domain.PaymentType, allowed []domain.PaymentType) bool {
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
