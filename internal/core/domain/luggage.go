package domain

import (
	"errors"
	"time"
)

// LuggageType is the closed set of luggage sizes.
type LuggageType string

const (
	LuggageSmall  LuggageType = "small"
	LuggageMedium LuggageType = "medium"
	LuggageLarge  LuggageType = "large"
)

// IsValid reports whether t is one of the known luggage types.
func (t LuggageType) IsValid() bool {
	switch t {
	case LuggageSmall, LuggageMedium, LuggageLarge:
		return true
	}
	return false
}

var ErrLuggageNotFound = errors.New("luggage not found")
var ErrInvalidLuggageType = errors.New("invalid luggage type")

// Luggage is a tracked piece of luggage owned by a user.
type Luggage struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Type      LuggageType `json:"type"`
	Position  string      `json:"position"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// LuggageUpdate carries a partial field set for a luggage update.
type LuggageUpdate struct {
	Type     *LuggageType
	Position *string
	Status   *string
}
