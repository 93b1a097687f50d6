package service

import (
	"context"

	"github.com/pageza/ecocart/backend/internal/models"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// ICatalogService defines the interface for read-only product queries
type ICatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	ListFeatures(ctx context.Context, productID uint) ([]models.ProductFeature, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

// ICartService defines the interface for per-user cart operations
type ICartService interface {
	GetCart(ctx context.Context, userID uint) ([]models.CartItem, error)
	AddToCart(ctx context.Context, userID uint, productID *uint, quantity *int) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID uint, quantity *int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID uint) (*models.CartItem, error)
	GetCartComparison(ctx context.Context, userID uint) ([]models.CartItem, error)
}

// IActivityService defines the interface for the activity log
type IActivityService interface {
	ListActivities(ctx context.Context, userID uint) ([]models.Activity, error)
	AddActivity(ctx context.Context, userID uint, activityType, description string) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, userID uint, query string, matchCart bool) (*RecipeSearchResult, error)
}
