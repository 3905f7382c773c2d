package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

const bearerTokenType = "bearer"

// AuthService orchestrates registration, login, and token validation. All
// credential and token failures are collapsed to generic errors here so that
// nothing below this boundary leaks whether an email exists, a password was
// wrong, or a token merely expired.
type AuthService struct {
	repo   ports.UserRepository
	hasher *Hasher
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *Hasher, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// Register validates the candidate, hashes the password, persists the user,
// and issues a token for the new account's email.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.TokenResult, error) {
	role, profile, err := ValidateRegistration(in)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		DateOfBirth:  in.DateOfBirth,
		Profile:      profile,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Email, 0)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")

	return &ports.TokenResult{Token: token, TokenType: bearerTokenType}, nil
}

// Login authenticates by email and password. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, 0)
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{Token: token, TokenType: bearerTokenType}, nil
}

// CheckToken validates the token and resolves its subject to an existing
// user. A token for a deleted user is invalid even before its expiry.
func (s *AuthService) CheckToken(ctx context.Context, token string) (*domain.Identity, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return &domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
