package ports

import (
	"context"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// LuggageRepository defines persistence operations for luggage records.
type LuggageRepository interface {
	Create(ctx context.Context, l *domain.Luggage) (*domain.Luggage, error)
	FindByID(ctx context.Context, id int64) (*domain.Luggage, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Luggage, error)
	Update(ctx context.Context, id int64, fields domain.LuggageUpdate) (*domain.Luggage, error)
	Delete(ctx context.Context, id int64) error
}
