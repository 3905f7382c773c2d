package ports

import (
	"context"
	"time"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

// RegisterInput carries everything a registration request supplies. Role
// attributes are optional and validated against the role before any mutation.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	FirstName       string
	LastName        string
	DateOfBirth     *time.Time
	// HandicapType must be set for clients and absent for assistants.
	HandicapType *string
	// Available defaults to true for assistants; forbidden for clients.
	Available *bool
}

// TokenResult is the outcome of a successful register or login.
type TokenResult struct {
	Token     string
	TokenType string
}

// AuthService composes validation, hashing, persistence, and token issuance
// into the register / login / check-token flows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
	CheckToken(ctx context.Context, token string) (*domain.Identity, error)
}
