package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/api/dto"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/service"
)

const (
	rentalPath   = "/user/rental"
	paymentsPath = "/user/payments"
)

// CustomerHandler serves the customer views.
type CustomerHandler struct {
	rentals  *service.RentalService
	payments *service.PaymentService
}

// NewCustomerHandler constructs handler.
func NewCustomerHandler(rentals *service.RentalService, payments *service.PaymentService) *CustomerHandler {
	return &CustomerHandler{rentals: rentals, payments: payments}
}

// Index handles GET /user.
func (h *CustomerHandler) Index(c *fiber.Ctx) error {
	return c.Redirect(rentalPath, fiber.StatusFound)
}

// Rental handles GET /user/rental.
func (h *CustomerHandler) Rental(c *fiber.Ctx) error {
	return h.renderRental(c, fiber.StatusOK, "")
}

// Book handles POST /user/rental/book.
func (h *CustomerHandler) Book(c *fiber.Ctx) error {
	var form dto.BookForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if _, err := h.rentals.Book(c.UserContext(), form.BicycleID); err != nil {
		return h.renderRental(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, rentalPath, "Bicycle booked.")
}

// Pickup handles POST /user/rental/pickup.
func (h *CustomerHandler) Pickup(c *fiber.Ctx) error {
	return h.rentalAction(c, "Rental picked up.", func(form dto.RentalActionForm) error {
		_, err := h.rentals.Pickup(c.UserContext(), form.RentalID)
		return err
	})
}

// Return handles POST /user/rental/return.
func (h *CustomerHandler) Return(c *fiber.Ctx) error {
	return h.rentalAction(c, "Rental returned.", func(form dto.RentalActionForm) error {
		_, err := h.rentals.Return(c.UserContext(), form.RentalID, form.ParkingLot)
		return err
	})
}

// Pay handles POST /user/rental/pay.
func (h *CustomerHandler) Pay(c *fiber.Ctx) error {
	return h.rentalAction(c, "Rental paid. Thank you!", func(form dto.RentalActionForm) error {
		_, err := h.rentals.Pay(c.UserContext(), form.RentalID, form.PaymentType)
		return err
	})
}

func (h *CustomerHandler) rentalAction(c *fiber.Ctx, notice string, action func(dto.RentalActionForm) error) error {
	var form dto.RentalActionForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := action(form); err != nil {
		return h.renderRental(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, rentalPath, notice)
}

func (h *CustomerHandler) renderRental(c *fiber.Ctx, status int, actionError string) error {
	holder, err := holderFor(c)
	if err != nil {
		return err
	}
	data := fiber.Map{"Title": "My rental", "PaymentTypes": domain.PaymentTypes(), "Error": actionError}

	overview, err := h.rentals.Overview(c.UserContext(), holder.Username())
	if err != nil && actionError == "" {
		data["Error"] = errorMessage(err)
	}
	data["Overview"] = overview
	return render(c, status, "user_rental", data)
}

// Payments handles GET /user/payments.
func (h *CustomerHandler) Payments(c *fiber.Ctx) error {
	return h.renderPayments(c, fiber.StatusOK, "")
}

// CreatePayment handles POST /user/payments.
func (h *CustomerHandler) CreatePayment(c *fiber.Ctx) error {
	input, err := paymentInput(c)
	if err != nil {
		return err
	}
	if _, err := h.payments.Create(c.UserContext(), input); err != nil {
		return h.renderPayments(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, paymentsPath, "Payment method added successfully.")
}

// UpdatePayment handles POST /user/payments/:id.
func (h *CustomerHandler) UpdatePayment(c *fiber.Ctx) error {
	input, err := paymentInput(c)
	if err != nil {
		return err
	}
	if _, err := h.payments.Update(c.UserContext(), c.Params("id"), input); err != nil {
		return h.renderPayments(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, paymentsPath, "Payment method updated successfully.")
}

// DeletePayment handles POST /user/payments/:id/delete.
func (h *CustomerHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.payments.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.renderPayments(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, paymentsPath, "Payment method deleted successfully.")
}

func (h *CustomerHandler) renderPayments(c *fiber.Ctx, status int, actionError string) error {
	data := fiber.Map{"Title": "Payment methods", "Types": service.StoredPaymentTypes(), "Error": actionError}
	methods, err := h.payments.List(c.UserContext())
	if err != nil && actionError == "" {
		data["Error"] = errorMessage(err)
	}
	data["Methods"] = methods
	return render(c, status, "user_payments", data)
}

func paymentInput(c *fiber.Ctx) (service.PaymentMethodInput, error) {
	var form dto.PaymentMethodForm
	if err := c.BodyParser(&form); err != nil {
		return service.PaymentMethodInput{}, fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	return service.PaymentMethodInput{
		Type:     form.Type,
		CC:       form.CC,
		CVC:      form.CVC,
		Holder:   form.Holder,
		ExpireAt: form.ExpireAt,
	}, nil
}
