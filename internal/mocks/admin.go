package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/rezeptblog/backend/internal/types"
)

// MockAdminService is a mock implementation of the admin session service
type MockAdminService struct {
	mock.Mock
}

// Login mocks the Login method
func (m *MockAdminService) Login(password string) (string, time.Time, error) {
	args := m.Called(password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// ValidateToken mocks the ValidateToken method
func (m *MockAdminService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
