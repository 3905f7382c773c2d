package domain

import (
	"errors"
	"time"
)

// TripStatus represents the lifecycle state of an assisted trip.
type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// validTripTransitions defines the allowed state machine transitions.
var validTripTransitions = map[TripStatus][]TripStatus{
	TripPlanned: {TripOngoing, TripCancelled},
	TripOngoing: {TripCompleted, TripCancelled},
}

var ErrTripNotFound = errors.New("trip not found")
var ErrInvalidTripTransition = errors.New("invalid trip status transition")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, allowed := range validTripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StepAssistant identifies the assistant assigned to a trip step.
type StepAssistant struct {
	AssistantID string `json:"assistant_id" bson:"assistant_id"`
	Name        string `json:"name" bson:"name"`
	Status      string `json:"status" bson:"status"`
}

// Step is a single leg of a trip on one transport mode.
type Step struct {
	StepID        string         `json:"step_id" bson:"step_id"`
	Mode          string         `json:"mode" bson:"mode"`
	From          string         `json:"from" bson:"from"`
	To            string         `json:"to" bson:"to"`
	DepartureTime time.Time      `json:"departure_time" bson:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time" bson:"arrival_time"`
	Assistant     *StepAssistant `json:"assistant,omitempty" bson:"assistant,omitempty"`
}

// Trip is the document-store aggregate for an assisted journey.
type Trip struct {
	ID          string     `json:"trip_id" bson:"_id"`
	ClientID    string     `json:"client_id" bson:"client_id"`
	Origin      string     `json:"origin" bson:"origin"`
	Destination string     `json:"destination" bson:"destination"`
	Status      TripStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
	Steps       []Step     `json:"steps" bson:"steps"`
}
