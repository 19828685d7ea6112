package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

const (
	adminSubject = "admin"
	adminRole    = "admin"
	// SessionTTL is how long an admin token stays valid.
	SessionTTL = 8 * time.Hour
)

// AdminService issues and checks admin session tokens. There is a single admin whose
// password is stored as a bcrypt hash.
type AdminService struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

// NewAdminService creates an AdminService. An empty passwordHash disables login.
func NewAdminService(passwordHash, jwtSecret string) *AdminService {
	return &AdminService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

// Login checks the password and returns a signed token with its expiry.
func (s *AdminService) Login(password string) (string, time.Time, error) {
	if len(s.passwordHash) == 0 || password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expires := now.Add(SessionTTL)
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Role: adminRole,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expires, nil
}

// ValidateToken parses a token issued by Login.
func (s *AdminService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject != adminSubject || claims.Role != adminRole {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
