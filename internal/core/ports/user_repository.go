package ports

import (
	"context"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// UserRepository defines persistence operations for the polymorphic user
// record. Creation dispatches on role to attach the matching specialization;
// lookups always return the same logical User shape. Email uniqueness is
// enforced by the store, not at the application layer.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Create persists the candidate, assigning identifier and creation
	// timestamp. Returns domain.ErrEmailTaken when the email is in use.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies only the fields present in the partial set.
	Update(ctx context.Context, id int64, fields domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
