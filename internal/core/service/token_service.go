package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and validates stateless HS256 tokens carrying the
// account email as subject and an absolute expiry. There is no revocation
// list: a token stays valid until its embedded expiry regardless of later
// account changes. That is a retained, documented limitation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for subject expiring at issue-time + ttl. A ttl <= 0
// falls back to the service default.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(s.now().Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies the signature and expiry and extracts the subject claim.
// Every failure mode (bad signature, expired, missing subject) surfaces as
// domain.ErrInvalidToken so callers cannot tell which check failed.
func (s *TokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrInvalidToken
	}
	return subject, nil
}
