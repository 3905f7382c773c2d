package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type stubTripRepo struct {
	trips map[string]*domain.Trip
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[string]*domain.Trip)}
}

func (r *stubTripRepo) Create(_ context.Context, trip *domain.Trip) error {
	r.trips[trip.ID] = trip
	return nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	if trip, ok := r.trips[id]; ok {
		clone := *trip
		return &clone, nil
	}
	return nil, domain.ErrTripNotFound
}

func (r *stubTripRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Trip, error) {
	var out []*domain.Trip
	for _, trip := range r.trips {
		if trip.ClientID == clientID {
			clone := *trip
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTripRepo) UpdateStatus(_ context.Context, id string, status domain.TripStatus) error {
	trip, ok := r.trips[id]
	if !ok {
		return domain.ErrTripNotFound
	}
	trip.Status = status
	return nil
}

func (r *stubTripRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

func TestTripService_CreateTrip(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, err := svc.CreateTrip(context.Background(), ports.CreateTripInput{
		ClientID:    "42",
		Origin:      "Paris",
		Destination: "Lyon",
		Steps: []ports.StepInput{
			{Mode: "train", From: "Paris", To: "Lyon", AssistantID: "7", AssistantName: "Sam"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if trip.ID == "" {
		t.Fatalf("expected generated trip id")
	}
	if trip.Status != domain.TripPlanned {
		t.Fatalf("new trips start planned, got %s", trip.Status)
	}
	if len(trip.Steps) != 1 || trip.Steps[0].Assistant == nil {
		t.Fatalf("expected one step with assistant, got %+v", trip.Steps)
	}
	if trip.Steps[0].Assistant.Status != "assigned" {
		t.Fatalf("expected assigned assistant, got %s", trip.Steps[0].Assistant.Status)
	}
}

func TestTripService_GetTrip_Ownership(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, err := svc.CreateTrip(context.Background(), ports.CreateTripInput{ClientID: "42", Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetTrip(context.Background(), trip.ID, domain.RoleClient, "42"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.GetTrip(context.Background(), trip.ID, domain.RoleClient, "99"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign client, got %v", err)
	}
	// Assistants may read any trip.
	if _, err := svc.GetTrip(context.Background(), trip.ID, domain.RoleAssistant, ""); err != nil {
		t.Fatalf("assistant read failed: %v", err)
	}
}

func TestTripService_UpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    domain.TripStatus
		to      domain.TripStatus
		allowed bool
	}{
		{domain.TripPlanned, domain.TripOngoing, true},
		{domain.TripPlanned, domain.TripCancelled, true},
		{domain.TripPlanned, domain.TripCompleted, false},
		{domain.TripOngoing, domain.TripCompleted, true},
		{domain.TripOngoing, domain.TripCancelled, true},
		{domain.TripOngoing, domain.TripPlanned, false},
		{domain.TripCompleted, domain.TripOngoing, false},
		{domain.TripCancelled, domain.TripPlanned, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			repo := newStubTripRepo()
			svc := NewTripService(repo, zerolog.Nop())

			trip, err := svc.CreateTrip(context.Background(), ports.CreateTripInput{ClientID: "42", Origin: "A", Destination: "B"})
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			repo.trips[trip.ID].Status = tc.from

			updated, err := svc.UpdateStatus(context.Background(), trip.ID, tc.to, domain.RoleClient, "42")
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected transition %s -> %s to succeed: %v", tc.from, tc.to, err)
				}
				if updated.Status != tc.to {
					t.Fatalf("expected status %s, got %s", tc.to, updated.Status)
				}
				return
			}
			if !errors.Is(err, domain.ErrInvalidTripTransition) {
				t.Fatalf("expected ErrInvalidTripTransition for %s -> %s, got %v", tc.from, tc.to, err)
			}
		})
	}
}

func TestTripService_DeleteTrip(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, err := svc.CreateTrip(context.Background(), ports.CreateTripInput{ClientID: "42", Origin: "A", Destination: "B"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteTrip(context.Background(), trip.ID, domain.RoleClient, "99"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteTrip(context.Background(), trip.ID, domain.RoleClient, "42"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetTrip(context.Background(), trip.ID, domain.RoleClient, "42"); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound after delete, got %v", err)
	}
}
