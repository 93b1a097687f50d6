package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/ecocart/backend/internal/models"
)

// NoCartItemsMessage accompanies an empty cart-matching result.
const NoCartItemsMessage = "No items in cart to match recipes"

// RecipeSearchResult holds matched recipes and an optional note for the client.
type RecipeSearchResult struct {
	Recipes []models.Recipe
	Message string
}

// RecipeService handles recipe operations
type RecipeService struct {
	db  *gorm.DB
	log *logrus.Entry
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, log *logrus.Entry) *RecipeService {
	return &RecipeService{db: db, log: log.WithField("component", "recipe")}
}

// ListRecipes returns the whole recipe catalog.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchRecipes either matches recipes against the user's cart or filters by
// query on name and description. query is ignored when matchCart is set.
func (s *RecipeService) SearchRecipes(ctx context.Context, userID uint, query string, matchCart bool) (*RecipeSearchResult, error) {
	if matchCart {
		return s.matchCart(ctx, userID)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		recipes, err := s.ListRecipes(ctx)
		if err != nil {
			return nil, err
		}
		return &RecipeSearchResult{Recipes: recipes}, nil
	}

	pattern := likePattern(query)
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return &RecipeSearchResult{Recipes: recipes}, nil
}

func (s *RecipeService) matchCart(ctx context.Context, userID uint) (*RecipeSearchResult, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &RecipeSearchResult{Recipes: []models.Recipe{}, Message: NoCartItemsMessage}, nil
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.Product != nil {
			names = append(names, item.Product.Name)
		}
	}

	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	matches := MatchRecipes(names, recipes)
	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"cart_items": len(names),
		"matches":    len(matches),
	}).Debug("Matched recipes against cart")
	return &RecipeSearchResult{Recipes: matches}, nil
}
