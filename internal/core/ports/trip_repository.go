package ports

import (
	"context"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// TripRepository defines persistence operations for trips in the document
// store.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	// ListByClient returns the client's trips, newest first.
	ListByClient(ctx context.Context, clientID string) ([]*domain.Trip, error)
	// UpdateStatus atomically sets the trip's status and updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.TripStatus) error
	Delete(ctx context.Context, id string) error
}
