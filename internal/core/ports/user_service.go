package ports

import (
	"context"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// UserService exposes the user CRUD surface to the transport layer.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, fields domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
