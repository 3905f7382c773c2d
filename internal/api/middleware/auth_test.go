package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func runAuth(t *testing.T, header string, resolve IdentityResolver) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(resolve)(okHandler)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	c, err := runAuth(t, "Bearer tok", func(_ echo.Context, token string) (*domain.Identity, error) {
		if token != "tok" {
			t.Fatalf("unexpected token: %s", token)
		}
		return &domain.Identity{ID: 7, Email: "a@x.com", Role: domain.RoleAssistant}, nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if id, _ := c.Get("user_id").(int64); id != 7 {
		t.Fatalf("user_id not set: %v", c.Get("user_id"))
	}
	if email, _ := c.Get("email").(string); email != "a@x.com" {
		t.Fatalf("email not set: %v", c.Get("email"))
	}
	if role, _ := c.Get("role").(string); role != "assistant" {
		t.Fatalf("role not set: %v", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "", func(echo.Context, string) (*domain.Identity, error) {
		t.Fatal("resolver should not be called")
		return nil, nil
	})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"tok", "Basic tok"} {
		_, err := runAuth(t, header, func(echo.Context, string) (*domain.Identity, error) {
			t.Fatal("resolver should not be called")
			return nil, nil
		})

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, err := runAuth(t, "Bearer bad", func(echo.Context, string) (*domain.Identity, error) {
		return nil, domain.ErrInvalidToken
	})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ResolverFailurePassesThrough(t *testing.T) {
	boom := errors.New("storage down")
	_, err := runAuth(t, "Bearer tok", func(echo.Context, string) (*domain.Identity, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected resolver error to pass through, got %v", err)
	}
}
