package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type tripService struct {
	repo ports.TripRepository
	log  zerolog.Logger
}

// NewTripService returns a TripService implementation.
func NewTripService(repo ports.TripRepository, log zerolog.Logger) ports.TripService {
	return &tripService{repo: repo, log: log}
}

func (s *tripService) CreateTrip(ctx context.Context, in ports.CreateTripInput) (*domain.Trip, error) {
	now := time.Now().UTC()
	trip := &domain.Trip{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		Origin:      in.Origin,
		Destination: in.Destination,
		Status:      domain.TripPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, step := range in.Steps {
		st := domain.Step{
			StepID:        uuid.NewString(),
			Mode:          step.Mode,
			From:          step.From,
			To:            step.To,
			DepartureTime: step.DepartureTime,
			ArrivalTime:   step.ArrivalTime,
		}
		if step.AssistantID != "" {
			st.Assistant = &domain.StepAssistant{
				AssistantID: step.AssistantID,
				Name:        step.AssistantName,
				Status:      "assigned",
			}
		}
		trip.Steps = append(trip.Steps, st)
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		s.log.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to create trip")
		return nil, err
	}

	s.log.Info().Str("trip_id", trip.ID).Str("client_id", trip.ClientID).Msg("trip created")
	return trip, nil
}

// GetTrip fetches a trip; clients may only read their own.
func (s *tripService) GetTrip(ctx context.Context, id string, role domain.Role, clientID string) (*domain.Trip, error) {
	trip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleClient && trip.ClientID != clientID {
		return nil, domain.ErrForbidden
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, clientID string) ([]*domain.Trip, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// UpdateStatus advances a trip through its lifecycle, enforcing the
// transition table.
func (s *tripService) UpdateStatus(ctx context.Context, id string, next domain.TripStatus, role domain.Role, clientID string) (*domain.Trip, error) {
	trip, err := s.GetTrip(ctx, id, role, clientID)
	if err != nil {
		return nil, err
	}

	if !trip.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTripTransition, trip.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	trip.Status = next
	trip.UpdatedAt = time.Now().UTC()
	s.log.Info().Str("trip_id", id).Str("status", string(next)).Msg("trip status updated")
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, id string, role domain.Role, clientID string) error {
	if _, err := s.GetTrip(ctx, id, role, clientID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
