package ports

import (
	"context"
	"time"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// StepInput describes one leg of a trip being created.
type StepInput struct {
	Mode          string
	From          string
	To            string
	DepartureTime time.Time
	ArrivalTime   time.Time
	AssistantID   string
	AssistantName string
}

// CreateTripInput carries all data needed to create a trip.
type CreateTripInput struct {
	ClientID    string
	Origin      string
	Destination string
	Steps       []StepInput
}

// TripService defines use-case operations for trips. Role and ClientID on
// read operations enforce that clients only see their own trips.
type TripService interface {
	CreateTrip(ctx context.Context, input CreateTripInput) (*domain.Trip, error)
	GetTrip(ctx context.Context, id string, role domain.Role, clientID string) (*domain.Trip, error)
	ListTrips(ctx context.Context, clientID string) ([]*domain.Trip, error)
	UpdateStatus(ctx context.Context, id string, next domain.TripStatus, role domain.Role, clientID string) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, id string, role domain.Role, clientID string) error
}
