package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns a UserService over the given repository.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies a partial field set. Role attributes are fixed at
// construction time and cannot be changed here.
func (s *userService) Update(ctx context.Context, id int64, fields domain.UserUpdate) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
