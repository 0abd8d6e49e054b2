package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrDisabled     = errors.New("token auth disabled")
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// Service issues and validates HS256 session tokens. A Service with an
// empty secret is disabled: every connection is anonymous.
type Service struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewService(jwtSecret string) *Service {
	return &Service{
		jwtSecret: []byte(jwtSecret),
		ttl:       DefaultTTL,
		now:       time.Now,
	}
}

// Enabled reports whether tokens are required.
func (s *Service) Enabled() bool {
	return s != nil && len(s.jwtSecret) > 0
}

// Claims identify the user behind a session connection.
type Claims struct {
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Anonymous returns a throwaway identity for unauthenticated sessions.
func Anonymous() User {
	return User{ID: "anon-" + uuid.New().String()[:8], DisplayName: "Anonymous"}
}

// Issue signs a token for a new user id carrying displayName.
func (s *Service) Issue(displayName string) (string, User, error) {
	user := User{ID: "user_" + uuid.New().String(), DisplayName: displayName}
	token, err := s.issueToken(user)
	if err != nil {
		return "", User{}, err
	}
	return token, user, nil
}

func (s *Service) issueToken(user User) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	now := s.now()
	claims := Claims{
		DisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of tokenString and
// returns the user it names.
func (s *Service) ValidateToken(tokenString string) (User, error) {
	if !s.Enabled() {
		return User{}, ErrDisabled
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return User{}, ErrInvalidToken
	}

	return User{ID: claims.Subject, DisplayName: claims.DisplayName}, nil
}
