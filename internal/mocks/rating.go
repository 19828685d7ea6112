package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/rezeptblog/backend/internal/models"
	"github.com/pageza/rezeptblog/backend/internal/service"
)

// MockRatingService is a mock implementation of the rating service
type MockRatingService struct {
	mock.Mock
}

// Submit mocks the Submit method
func (m *MockRatingService) Submit(ctx context.Context, slug string, value int, clientID string) (*models.Rating, error) {
	args := m.Called(ctx, slug, value, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

// Get mocks the Get method
func (m *MockRatingService) Get(ctx context.Context, slug string) (*service.Aggregate, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Aggregate), args.Error(1)
}

// AggregateAll mocks the AggregateAll method
func (m *MockRatingService) AggregateAll(ctx context.Context, since time.Time) (map[string]service.Aggregate, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]service.Aggregate), args.Error(1)
}

// List mocks the List method
func (m *MockRatingService) List(ctx context.Context, slug string) ([]models.Rating, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockRatingService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
