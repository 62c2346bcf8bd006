package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bikehub-frontend/internal/api/dto"
	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/service"
)

// AdminHandler serves the administrator views.
type AdminHandler struct {
	bicycles  *service.BicycleService
	equipment *service.EquipmentService
	stats     *service.StatsService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(bicycles *service.BicycleService, equipment *service.EquipmentService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{bicycles: bicycles, equipment: equipment, stats: stats}
}

// Index handles GET /admin.
func (h *AdminHandler) Index(c *fiber.Ctx) error {
	return c.Redirect("/admin/bicycles", fiber.StatusFound)
}

// Bicycles handles GET /admin/bicycles.
func (h *AdminHandler) Bicycles(c *fiber.Ctx) error {
	return h.renderBicycles(c, fiber.StatusOK, "")
}

// CreateBicycle handles POST /admin/bicycles.
func (h *AdminHandler) CreateBicycle(c *fiber.Ctx) error {
	var form dto.BicycleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	price, err := parsePrice(form.HourlyPrice)
	if err != nil {
		return h.renderBicycles(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}

	bike, err := h.bicycles.Create(c.UserContext(), service.BicycleCreateInput{
		CurrentParkingLotName: form.CurrentParkingLotName,
		Categories:            form.Categories,
		ChassisID:             form.ChassisID,
		Brand:                 form.Brand,
		Model:                 form.Model,
		HourlyPrice:           price,
	})
	if err != nil {
		return h.renderBicycles(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, "/admin/bicycles", fmt.Sprintf("Bicycle %s added.", bike.ID))
}

func (h *AdminHandler) renderBicycles(c *fiber.Ctx, status int, formError string) error {
	data := fiber.Map{"Title": "Bicycles", "Categories": domain.BicycleCategories(), "Error": formError}
	bikes, err := h.bicycles.List(c.UserContext())
	if err != nil && formError == "" {
		data["Error"] = errorMessage(err)
	}
	data["Bicycles"] = bikes
	return render(c, status, "admin_bicycles", data)
}

// PricePage handles GET /admin/bicycles/price. With a bicycleId query it loads
// the bicycle's current price.
func (h *AdminHandler) PricePage(c *fiber.Ctx) error {
	id := c.Query("bicycleId")
	data := fiber.Map{"Title": "Update price", "BicycleID": id}
	if id != "" {
		bike, err := h.bicycles.Get(c.UserContext(), id)
		if err != nil {
			data["Error"] = errorMessage(err)
		} else {
			data["Bicycle"] = bike
			data["Notice"] = "Bicycle details loaded."
		}
	}
	return render(c, fiber.StatusOK, "admin_price", data)
}

// UpdatePrice handles POST /admin/bicycles/price.
func (h *AdminHandler) UpdatePrice(c *fiber.Ctx) error {
	var form dto.PriceForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	data := fiber.Map{"Title": "Update price", "BicycleID": form.BicycleID}

	price, err := parsePrice(form.HourlyPrice)
	if err == nil {
		var bike *domain.Bicycle
		bike, err = h.bicycles.UpdatePrice(c.UserContext(), form.BicycleID, price)
		if err == nil {
			data["Bicycle"] = bike
			data["Notice"] = fmt.Sprintf("Hourly price for bicycle %s updated to %.2f €/hour.", bike.ID, bike.HourlyPrice)
			return render(c, fiber.StatusOK, "admin_price", data)
		}
	}
	data["Error"] = errorMessage(err)
	return render(c, fiber.StatusUnprocessableEntity, "admin_price", data)
}

// Equipments handles GET /admin/equipments.
func (h *AdminHandler) Equipments(c *fiber.Ctx) error {
	return h.renderEquipments(c, fiber.StatusOK, "")
}

// CreateEquipment handles POST /admin/equipments.
func (h *AdminHandler) CreateEquipment(c *fiber.Ctx) error {
	var form dto.EquipmentForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	item, err := h.equipment.Create(c.UserContext(), service.EquipmentCreateInput{
		BicycleID:   form.BicycleID,
		Type:        form.Type,
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		return h.renderEquipments(c, fiber.StatusUnprocessableEntity, errorMessage(err))
	}
	return redirectWithNotice(c, "/admin/equipments", fmt.Sprintf("Equipment %s added.", item.Name))
}

func (h *AdminHandler) renderEquipments(c *fiber.Ctx, status int, formError string) error {
	data := fiber.Map{"Title": "Equipment", "Types": domain.EquipmentTypes(), "Error": formError}
	items, err := h.equipment.List(c.UserContext())
	if err != nil && formError == "" {
		data["Error"] = errorMessage(err)
	}
	data["Equipment"] = items
	return render(c, status, "admin_equipments", data)
}

// Stats handles GET /admin/stats. Each lookup runs only when its query
// parameter was submitted.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query")
	}
	data := fiber.Map{
		"Title":      "Statistics",
		"BicycleID":  q.BicycleID,
		"Category":   q.Category,
		"Categories": domain.BicycleCategories(),
	}

	args := c.Context().QueryArgs()
	if args.Has("bicycleId") {
		usage, err := h.stats.ForBicycle(c.UserContext(), q.BicycleID)
		if err != nil {
			data["BicycleError"] = errorMessage(err)
		} else {
			data["BicycleUsage"] = usage
			data["HasBicycleUsage"] = true
		}
	}
	if args.Has("category") {
		usage, err := h.stats.ForCategory(c.UserContext(), q.Category)
		if err != nil {
			data["CategoryError"] = errorMessage(err)
		} else {
			data["CategoryUsage"] = usage
			data["HasCategoryUsage"] = true
		}
	}
	return render(c, fiber.StatusOK, "admin_stats", data)
}
