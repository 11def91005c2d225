package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an access token when none is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// TokenManager issues and verifies HMAC signed access tokens. It is built once
// at startup and shared by every handler.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// CreateAccessToken signs a token whose subject is username. A zero ttl uses
// the manager's default lifetime; a negative ttl yields an already expired token.
func (m *TokenManager) CreateAccessToken(username string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = m.ttl
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// DecodeToken returns the username embedded in token. ok is false for any
// malformed, expired or tampered token.
func (m *TokenManager) DecodeToken(token string) (username string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// TTL is the default token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
