package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type luggageService struct {
	repo ports.LuggageRepository
	log  zerolog.Logger
}

// NewLuggageService returns a LuggageService implementation.
func NewLuggageService(repo ports.LuggageRepository, log zerolog.Logger) ports.LuggageService {
	return &luggageService{repo: repo, log: log}
}

func (s *luggageService) Create(ctx context.Context, in ports.CreateLuggageInput) (*domain.Luggage, error) {
	lt := domain.LuggageType(in.Type)
	if !lt.IsValid() {
		return nil, domain.ErrInvalidLuggageType
	}

	created, err := s.repo.Create(ctx, &domain.Luggage{
		UserID:   in.UserID,
		Type:     lt,
		Position: in.Position,
		Status:   in.Status,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("luggage_id", created.ID).Int64("user_id", created.UserID).Msg("luggage registered")
	return created, nil
}

func (s *luggageService) Get(ctx context.Context, id int64) (*domain.Luggage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *luggageService) ListByUser(ctx context.Context, userID int64) ([]*domain.Luggage, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *luggageService) Update(ctx context.Context, id int64, fields domain.LuggageUpdate) (*domain.Luggage, error) {
	if fields.Type != nil && !fields.Type.IsValid() {
		return nil, domain.ErrInvalidLuggageType
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *luggageService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
