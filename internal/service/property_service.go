package service

import (
	"context"

	"lightbnb/internal/domain"
	"lightbnb/internal/events"
	"lightbnb/internal/models"

	"github.com/rs/zerolog"
)

type PropertyService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewPropertyService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *PropertyService {
	return &PropertyService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *PropertyService) SearchProperties(ctx context.Context, opts models.PropertySearchOptions, limit int) ([]*models.PropertyListing, error) {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	return s.repo.SearchProperties(ctx, opts, limit)
}

func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := s.repo.CreateProperty(ctx, property); err != nil {
		return err
	}

	publish(s.eventBus, s.logger, events.EventPropertyCreated, events.PropertyEventPayload{
		PropertyID:   property.ID,
		OwnerID:      property.OwnerID,
		Title:        property.Title,
		City:         property.City,
		CostPerNight: property.CostPerNight,
	})

	return nil
}
