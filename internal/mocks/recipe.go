package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pageza/rezeptblog/backend/internal/related"
	"github.com/pageza/rezeptblog/backend/internal/service"
	"github.com/pageza/rezeptblog/backend/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeService) List(category string) []types.Recipe {
	args := m.Called(category)
	return args.Get(0).([]types.Recipe)
}

// Get mocks the Get method
func (m *MockRecipeService) Get(slug string) (types.Recipe, error) {
	args := m.Called(slug)
	return args.Get(0).(types.Recipe), args.Error(1)
}

// Category mocks the Category method
func (m *MockRecipeService) Category(slug string) (*service.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Category), args.Error(1)
}

// Related mocks the Related method
func (m *MockRecipeService) Related(slug string, limit int) ([]types.Recipe, error) {
	args := m.Called(slug, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// RelatedScores mocks the RelatedScores method
func (m *MockRecipeService) RelatedScores(slug string, limit int) ([]related.Result, error) {
	args := m.Called(slug, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]related.Result), args.Error(1)
}

// Dietary mocks the Dietary method
func (m *MockRecipeService) Dietary(slug string) (*service.DietaryReport, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DietaryReport), args.Error(1)
}
