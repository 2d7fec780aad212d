package service

import (
	"context"

	"lightbnb/internal/domain"
	"lightbnb/internal/events"
	"lightbnb/internal/models"

	"github.com/rs/zerolog"
)

type UserService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewUserService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// CreateUser stores the new user and announces it with user_created.
func (s *UserService) CreateUser(ctx context.Context, req models.NewUserRequest) (*models.User, error) {
	user := req.User()
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	publish(s.eventBus, s.logger, events.EventUserCreated, events.UserEventPayload{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	return user, nil
}
