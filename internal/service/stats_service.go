package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
	"github.com/spec-kit/bikehub-frontend/internal/repository"
	"github.com/spec-kit/bikehub-frontend/pkg/util"
)

// Display messages of the statistics screen.
const (
	msgStatsUnauthorized    = "Authentication required or invalid. Please log in."
	msgBicycleNotFound      = "Bicycle not found with the provided ID."
	msgBicycleUsageMissing  = "Usage percentage not available for this bicycle."
	msgCategoryUsageMissing = "Usage percentage not available for this category."
	msgSelectCategory       = "Please select a category."
)

// StatsService backs the admin statistics screen.
type StatsService struct {
	stats repository.StatsRepository
}

// NewStatsService creates the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// ForBicycle returns the usage percentage of one bicycle.
func (s *StatsService) ForBicycle(ctx context.Context, id string) (float64, error) {
	id = strings.TrimSpace(id)
	if err := validateBicycleID(id); err != nil {
		return 0, err
	}

	stats, err := s.stats.ForBicycle(ctx, id)
	if err != nil {
		return 0, statsError(err, true, "Invalid input provided. Please check the Bicycle ID format.",
			"Failed to fetch bicycle statistics. Please try again.")
	}
	if stats == nil || stats.UsagePercentage == nil {
		return 0, util.NewDomainError("USAGE_UNAVAILABLE", msgBicycleUsageMissing, http.StatusNotFound, nil)
	}
	return *stats.UsagePercentage, nil
}

// ForCategory returns the usage percentage of a bicycle category.
func (s *StatsService) ForCategory(ctx context.Context, category string) (float64, error) {
	category = strings.TrimSpace(category)
	if category == "" || !domain.IsValidBicycleCategory(category) {
		return 0, util.NewValidationError(msgSelectCategory, nil)
	}

	stats, err := s.stats.ForCategory(ctx, domain.BicycleCategory(category))
	if err != nil {
		return 0, statsError(err, false, "Invalid category requested.",
			"Failed to fetch category statistics. Please try again.")
	}
	if stats == nil || stats.UsagePercentage == nil {
		return 0, util.NewDomainError("USAGE_UNAVAILABLE", msgCategoryUsageMissing, http.StatusNotFound, nil)
	}
	return *stats.UsagePercentage, nil
}

func statsError(err error, mapNotFound bool, badRequest, fallback string) error {
	status := util.StatusOf(err)
	var msg string
	switch {
	case status == http.StatusBadRequest:
		detail, ok := util.UpstreamMessage(err)
		if !ok {
			detail = badRequest
		}
		msg = fmt.Sprintf("Error 400: %s", detail)
	case status == http.StatusNotFound && mapNotFound:
		msg = msgBicycleNotFound
	case status == http.StatusUnauthorized:
		msg = msgStatsUnauthorized
	default:
		msg = fallback
	}
	de := util.ToDomainError(err)
	return &util.DomainError{Code: de.Code, Message: msg, HTTPStatus: de.HTTPStatus, Err: err}
}
