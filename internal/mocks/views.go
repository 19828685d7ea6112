package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/rezeptblog/backend/internal/service"
)

// MockViewService is a mock implementation of the view service
type MockViewService struct {
	mock.Mock
}

// Track mocks the Track method
func (m *MockViewService) Track(ctx context.Context, slug, clientID, userAgent string) (*service.TrackResult, error) {
	args := m.Called(ctx, slug, clientID, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TrackResult), args.Error(1)
}

// Popular mocks the Popular method
func (m *MockViewService) Popular(ctx context.Context, limit int) (*service.PopularResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PopularResult), args.Error(1)
}
