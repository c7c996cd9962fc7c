// Package token issues and verifies the stateless HS256 session tokens that
// authenticate every request after login. Tokens are self-contained; there is
// no server-side revocation list.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL matches the original session validity window.
const DefaultTTL = 7 * 24 * time.Hour

// ErrNoSecret is a fatal startup condition: the service must refuse to run
// rather than sign tokens with a known default.
var ErrNoSecret = errors.New("token signing secret is not configured")

// Claims carried by a session token.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a signed token for the given identity, valid for the service TTL.
func (s *Service) Issue(userID, email string) (string, error) {
	issued := s.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	})
	return tok.SignedString(s.secret)
}

// Verify returns the decoded claims only when signature and expiry both check
// out, nil otherwise. Callers treat invalid and expired identically.
func (s *Service) Verify(tokenString string) *Claims {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tok.Valid {
		return nil
	}
	return claims
}

// FromHeader parses an Authorization header value. Only the Bearer scheme is
// accepted; anything else yields "".
func FromHeader(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return header[len("Bearer "):]
}
