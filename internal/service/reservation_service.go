package service

import (
	"context"

	"lightbnb/internal/domain"
	"lightbnb/internal/events"
	"lightbnb/internal/models"

	"github.com/rs/zerolog"
)

type ReservationService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewReservationService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *ReservationService {
	return &ReservationService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListForGuest returns the guest's reservations, earliest first.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error) {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	return s.repo.ListReservationsForGuest(ctx, guestID, limit)
}

func (s *ReservationService) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	if err := s.repo.CreateReservation(ctx, reservation); err != nil {
		return err
	}

	publish(s.eventBus, s.logger, events.EventReservationCreated, events.ReservationEventPayload{
		ReservationID: reservation.ID,
		GuestID:       reservation.GuestID,
		PropertyID:    reservation.PropertyID,
		StartDate:     reservation.StartDate,
		EndDate:       reservation.EndDate,
		Nights:        reservation.Nights(),
	})

	return nil
}
