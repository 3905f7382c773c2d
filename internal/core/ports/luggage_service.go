package ports

import (
	"context"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// CreateLuggageInput carries the data needed to register a piece of luggage.
type CreateLuggageInput struct {
	UserID   int64
	Type     string
	Position string
	Status   string
}

// LuggageService defines use-case operations for luggage tracking.
type LuggageService interface {
	Create(ctx context.Context, input CreateLuggageInput) (*domain.Luggage, error)
	Get(ctx context.Context, id int64) (*domain.Luggage, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Luggage, error)
	Update(ctx context.Context, id int64, fields domain.LuggageUpdate) (*domain.Luggage, error)
	Delete(ctx context.Context, id int64) error
}
