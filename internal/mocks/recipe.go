package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/ecocart/backend/internal/models"
	"github.com/pageza/ecocart/backend/internal/service"
)

// MockRecipeService is a mock implementation of the RecipeService interface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) SearchRecipes(ctx context.Context, userID uint, query string, matchCart bool) (*service.RecipeSearchResult, error) {
	args := m.Called(ctx, userID, query, matchCart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RecipeSearchResult), args.Error(1)
}

// MockActivityService is a mock implementation of the ActivityService interface
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) ListActivities(ctx context.Context, userID uint) ([]models.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityService) AddActivity(ctx context.Context, userID uint, activityType, description string) error {
	args := m.Called(ctx, userID, activityType, description)
	return args.Error(0)
}
