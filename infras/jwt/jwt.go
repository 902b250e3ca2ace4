package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"rimbest/config"
	"rimbest/shared/clock"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims is the subset of the remote API's access token we rely on.
// The subject carries the username.
type Claims struct {
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Expiry returns the expiry, or the zero time when the token has none.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

// JWT inspects bearer tokens issued by the remote API.
type JWT interface {
	Inspect(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
	clock  clock.Clock
}

func New(cfg *config.Config, clk clock.Clock) JWT {
	return &Service{
		config: cfg,
		clock:  clk,
	}
}

// Inspect verifies the signature when a secret is configured and only decodes
// the token otherwise. Expiry is always enforced.
func (s *Service) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}

	if secret := s.config.JWT.VerifySecret; secret != "" {
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}

			return []byte(secret), nil
		}, jwt.WithTimeFunc(s.clock.Now))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, ErrExpiredToken
			}

			return nil, ErrInvalidToken
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, ErrInvalidToken
		}

		if exp := claims.Expiry(); !exp.IsZero() && !s.clock.Now().Before(exp) {
			return nil, ErrExpiredToken
		}
	}

	if claims.Subject == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(prefix):], nil
}
