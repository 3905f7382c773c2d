package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := cloneUser(user)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, fields domain.UserUpdate) (*domain.User, error) {
	for email, u := range r.users {
		if u.ID != id {
			continue
		}
		if fields.Email != nil {
			if other, exists := r.users[*fields.Email]; exists && other.ID != id {
				return nil, domain.ErrEmailTaken
			}
			delete(r.users, email)
			u.Email = *fields.Email
			r.users[u.Email] = u
		}
		if fields.FirstName != nil {
			u.FirstName = *fields.FirstName
		}
		if fields.LastName != nil {
			u.LastName = *fields.LastName
		}
		if fields.DateOfBirth != nil {
			u.DateOfBirth = fields.DateOfBirth
		}
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, NewHasher(), tokens, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func clientInput(email, password string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Role:            "client",
		HandicapType:    strPtr("motor"),
	}
}

func TestAuthService_Register_Client(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), clientInput("a@x.com", "p1secret"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" || result.TokenType != "bearer" {
		t.Fatalf("unexpected token result: %+v", result)
	}

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "p1secret" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewHasher().Verify("p1secret", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if stored.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
	if stored.Profile.Client == nil || stored.Profile.Client.HandicapType != domain.HandicapMotor {
		t.Fatalf("expected client profile with motor handicap, got %+v", stored.Profile)
	}
	if stored.Profile.Assistant != nil {
		t.Fatalf("client must not carry an assistant profile")
	}
}

func TestAuthService_Register_AssistantDefaultsAvailable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:           "helper@x.com",
		Password:        "p1secret",
		ConfirmPassword: "p1secret",
		Role:            "assistant",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored, _ := repo.FindByEmail(context.Background(), "helper@x.com")
	if stored.Profile.Assistant == nil || !stored.Profile.Assistant.Available {
		t.Fatalf("expected assistant available by default, got %+v", stored.Profile)
	}
	if stored.Profile.Client != nil {
		t.Fatalf("assistant must not carry a client profile")
	}
}

func TestAuthService_Register_ValidationFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	cases := []struct {
		name  string
		input ports.RegisterInput
		want  error
	}{
		{
			name: "password mismatch",
			input: ports.RegisterInput{
				Email: "a@x.com", Password: "one", ConfirmPassword: "two",
				Role: "client", HandicapType: strPtr("motor"),
			},
			want: domain.ErrPasswordMismatch,
		},
		{
			name: "client missing handicap type",
			input: ports.RegisterInput{
				Email: "a@x.com", Password: "p", ConfirmPassword: "p", Role: "client",
			},
			want: domain.ErrMissingHandicapType,
		},
		{
			name: "client with availability attribute",
			input: ports.RegisterInput{
				Email: "a@x.com", Password: "p", ConfirmPassword: "p",
				Role: "client", HandicapType: strPtr("motor"), Available: boolPtr(true),
			},
			want: domain.ErrAvailabilityNotAllowed,
		},
		{
			name: "assistant with handicap type",
			input: ports.RegisterInput{
				Email: "a@x.com", Password: "p", ConfirmPassword: "p",
				Role: "assistant", HandicapType: strPtr("visual"),
			},
			want: domain.ErrHandicapNotAllowed,
		},
		{
			name: "unknown role",
			input: ports.RegisterInput{
				Email: "a@x.com", Password: "p", ConfirmPassword: "p", Role: "manager",
			},
			want: domain.ErrInvalidRole,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), clientInput("dup@x.com", "p1secret")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), clientInput("dup@x.com", "other")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// First account must remain retrievable.
	if _, err := repo.FindByEmail(context.Background(), "dup@x.com"); err != nil {
		t.Fatalf("first account lost after conflict: %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), clientInput("a@x.com", "p1secret")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "a@x.com", "p1secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	subject, err := svc.tokens.Validate(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %s", subject)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), clientInput("a@x.com", "p1secret"))

	// Wrong password and unknown email must be indistinguishable.
	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost@x.com", "p1secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_CheckToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), clientInput("a@x.com", "p1secret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	identity, err := svc.CheckToken(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("check token failed: %v", err)
	}
	if identity.Email != "a@x.com" || identity.Role != domain.RoleClient || identity.ID == 0 {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := svc.CheckToken(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_CheckToken_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	result, err := svc.Register(context.Background(), clientInput("a@x.com", "p1secret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, _ := repo.FindByEmail(context.Background(), "a@x.com")
	if err := repo.Delete(context.Background(), stored.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// A still-unexpired token for a deleted user must not resolve.
	if _, err := svc.CheckToken(context.Background(), result.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after delete, got %v", err)
	}
}

func TestAuthService_EndToEnd(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:           "a@x.com",
		Password:        "p1",
		ConfirmPassword: "p1",
		Role:            "client",
		HandicapType:    strPtr("motor"),
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if subject, _ := svc.tokens.Validate(result.Token); subject != "a@x.com" {
		t.Fatalf("token subject mismatch: %s", subject)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
