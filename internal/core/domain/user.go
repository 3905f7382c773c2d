package domain

import (
	"errors"
	"time"
)

// Role discriminates which specialization's attributes apply to a user record.
type Role string

const (
	RoleClient    Role = "client"
	RoleAssistant Role = "assistant"
)

// HandicapType is the closed set of assistance needs a client can declare.
type HandicapType string

const (
	HandicapVisual    HandicapType = "visual"
	HandicapHearing   HandicapType = "hearing"
	HandicapCognitive HandicapType = "cognitive"
	HandicapMotor     HandicapType = "motor"
)

// IsValid reports whether h is one of the known handicap types.
func (h HandicapType) IsValid() bool {
	switch h {
	case HandicapVisual, HandicapHearing, HandicapCognitive, HandicapMotor:
		return true
	}
	return false
}

// Validation errors (caller's fault, never retried).
var ErrInvalidRole = errors.New("invalid role")
var ErrMissingHandicapType = errors.New("missing handicap type")
var ErrHandicapNotAllowed = errors.New("handicap type not allowed for assistant")
var ErrAvailabilityNotAllowed = errors.New("availability not allowed for client")
var ErrPasswordMismatch = errors.New("passwords do not match")

var ErrEmailTaken = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is deliberately generic: it never reveals whether the
// email or the password was wrong.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrInvalidToken collapses every token failure (bad signature, expired,
// malformed subject, deleted user) into one outward message.
var ErrInvalidToken = errors.New("invalid credentials or expired token")

// ErrStorageUnavailable marks a transient store failure. Safe for the caller
// to retry with backoff; never retried internally.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IsValidationError reports whether err belongs to the validation taxonomy.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrMissingHandicapType) ||
		errors.Is(err, ErrHandicapNotAllowed) ||
		errors.Is(err, ErrAvailabilityNotAllowed) ||
		errors.Is(err, ErrPasswordMismatch)
}

// ClientProfile holds the attributes specific to the client role. A client
// record cannot exist without a handicap type.
type ClientProfile struct {
	HandicapType HandicapType `json:"handicap_type"`
}

// AssistantProfile holds the attributes specific to the assistant role.
type AssistantProfile struct {
	Available bool `json:"available"`
}

// RoleProfile is the tagged variant attached to a user. Exactly one branch is
// non-nil, matching the user's role.
type RoleProfile struct {
	Client    *ClientProfile    `json:"client,omitempty"`
	Assistant *AssistantProfile `json:"assistant,omitempty"`
}

// User is the polymorphic root entity shared by both specializations. The
// repository is the sole writer; every other component treats a fetched
// record as read-only.
type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	FirstName    string      `json:"first_name,omitempty"`
	LastName     string      `json:"last_name,omitempty"`
	DateOfBirth  *time.Time  `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	Profile      RoleProfile `json:"profile"`
}

// UserUpdate carries a partial field set; nil fields are left untouched on
// the stored record.
type UserUpdate struct {
	Email       *string
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
}

// Identity is the public view of a user resolved from a token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
