package ports

import (
	"context"
	"time"
)

// JourneySection is one leg of a planned itinerary returned by the external
// journey-planning API.
type JourneySection struct {
	Mode          string    `json:"mode"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// Journey is a full itinerary option between two places.
type Journey struct {
	DepartureTime time.Time        `json:"departure_time"`
	ArrivalTime   time.Time        `json:"arrival_time"`
	DurationSec   int              `json:"duration_seconds"`
	Sections      []JourneySection `json:"sections"`
}

// JourneyPlanner searches itineraries against an external journey-planning
// API. Implementations must bound each call with a timeout.
type JourneyPlanner interface {
	Search(ctx context.Context, from, to string, departure time.Time) ([]Journey, error)
}
