package types

import (
	"time"

	"github.com/pageza/ecocart/backend/internal/models"
)

// ErrorResponse is the body of every non-recipe error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a write that echoes nothing back.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserSummary is the public part of a user returned at login.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse carries the bearer token and the caller's public profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ProfileResponse is returned by the profile route.
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Barcode     string  `json:"barcode"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

// FeatureResponse is a product feature as listed under a product.
type FeatureResponse struct {
	ID              uint    `json:"id"`
	FeatureName     string  `json:"feature_name"`
	FeatureValue    string  `json:"feature_value"`
	FeatureUnit     string  `json:"feature_unit"`
	FeatureCategory string  `json:"feature_category"`
	ImportanceScore float64 `json:"importance_score"`
}

// ComparisonFeature is a feature inside a cart comparison, without its id.
type ComparisonFeature struct {
	FeatureName     string  `json:"feature_name"`
	FeatureValue    string  `json:"feature_value"`
	FeatureUnit     string  `json:"feature_unit"`
	FeatureCategory string  `json:"feature_category"`
	ImportanceScore float64 `json:"importance_score"`
}

// ComparisonEntry is one cart product with its raw feature list.
type ComparisonEntry struct {
	ProductID   uint                `json:"product_id"`
	ProductName string              `json:"product_name"`
	Price       float64             `json:"price"`
	Features    []ComparisonFeature `json:"features"`
}

// CartProduct is the product summary embedded in a cart item.
type CartProduct struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

// CartItemResponse is a cart row with its product expanded.
type CartItemResponse struct {
	ID       uint        `json:"id"`
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
	AddedAt  time.Time   `json:"added_at"`
}

// CartItemMessage is returned by add and update.
type CartItemMessage struct {
	Message  string           `json:"message"`
	CartItem CartItemResponse `json:"cart_item"`
}

// RemovedProduct is the product snapshot taken before a cart row is deleted.
type RemovedProduct struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// RemovedItem identifies a deleted cart row.
type RemovedItem struct {
	ID      uint           `json:"id"`
	Product RemovedProduct `json:"product"`
}

// RemoveCartItemResponse is returned by cart removal.
type RemoveCartItemResponse struct {
	Message     string      `json:"message"`
	RemovedItem RemovedItem `json:"removed_item"`
}

// ActivityResponse is one entry of the activity log.
type ActivityResponse struct {
	ID           uint      `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}

// RecipeResponse uses the camelCase keys the storefront pages read.
type RecipeResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	CookingTime string   `json:"cookingTime"`
	Difficulty  string   `json:"difficulty"`
	Image       string   `json:"image"`
}

// RecipeListResponse wraps recipes in a status envelope.
type RecipeListResponse struct {
	Status  string           `json:"status"`
	Recipes []RecipeResponse `json:"recipes"`
	Message string           `json:"message,omitempty"`
}

// RecipeErrorResponse is the recipe routes' error envelope.
type RecipeErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DebugCartProduct is the product view in the debug cart dump.
type DebugCartProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// DebugCartItem is a raw cart row in the debug cart dump.
type DebugCartItem struct {
	ID        uint             `json:"id"`
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	AddedAt   time.Time        `json:"added_at"`
	Product   DebugCartProduct `json:"product"`
}

// DebugCartResponse is returned by the debug cart route.
type DebugCartResponse struct {
	Message string          `json:"message"`
	UserID  uint            `json:"user_id"`
	Items   []DebugCartItem `json:"items"`
}

// NewProfileResponse builds the profile view of u.
func NewProfileResponse(u *models.User) ProfileResponse {
	return ProfileResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// NewUserSummary builds the login view of u.
func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// NewProductResponse converts a product.
func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Barcode:     p.Barcode,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

// NewProductResponses converts products, never returning nil.
func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}

// NewFeatureResponses converts features, never returning nil.
func NewFeatureResponses(features []models.ProductFeature) []FeatureResponse {
	out := make([]FeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, FeatureResponse{
			ID:              f.ID,
			FeatureName:     f.FeatureName,
			FeatureValue:    f.FeatureValue,
			FeatureUnit:     f.FeatureUnit,
			FeatureCategory: f.FeatureCategory,
			ImportanceScore: f.ImportanceScore,
		})
	}
	return out
}

// NewComparison converts cart items whose products have features preloaded.
func NewComparison(items []models.CartItem) []ComparisonEntry {
	out := make([]ComparisonEntry, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		features := make([]ComparisonFeature, 0, len(item.Product.Features))
		for _, f := range item.Product.Features {
			features = append(features, ComparisonFeature{
				FeatureName:     f.FeatureName,
				FeatureValue:    f.FeatureValue,
				FeatureUnit:     f.FeatureUnit,
				FeatureCategory: f.FeatureCategory,
				ImportanceScore: f.ImportanceScore,
			})
		}
		out = append(out, ComparisonEntry{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Price:       item.Product.Price,
			Features:    features,
		})
	}
	return out
}

// NewCartItemResponse converts a cart item with its product preloaded.
func NewCartItemResponse(item *models.CartItem) CartItemResponse {
	resp := CartItemResponse{ID: item.ID, Quantity: item.Quantity, AddedAt: item.AddedAt}
	if p := item.Product; p != nil {
		resp.Product = CartProduct{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Description: p.Description,
		}
	}
	return resp
}

// NewCartItemResponses converts cart items, never returning nil.
func NewCartItemResponses(items []models.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewCartItemResponse(&items[i]))
	}
	return out
}

// NewRemovedItem snapshots a cart row that is about to be deleted.
func NewRemovedItem(item *models.CartItem) RemovedItem {
	removed := RemovedItem{ID: item.ID}
	if p := item.Product; p != nil {
		removed.Product = RemovedProduct{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	return removed
}

// NewActivityResponses converts activities, never returning nil.
func NewActivityResponses(activities []models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ActivityResponse{
			ID:           a.ID,
			ActivityType: a.ActivityType,
			Description:  a.Description,
			Timestamp:    a.Timestamp,
		})
	}
	return out
}

// NewRecipeResponses converts recipes, never returning nil.
func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		ingredients := []string(r.Ingredients)
		if ingredients == nil {
			ingredients = []string{}
		}
		out = append(out, RecipeResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Ingredients: ingredients,
			CookingTime: r.CookingTime,
			Difficulty:  r.Difficulty,
			Image:       r.ImageURL,
		})
	}
	return out
}

// NewDebugCartItems converts cart items for the debug dump.
func NewDebugCartItems(items []models.CartItem) []DebugCartItem {
	out := make([]DebugCartItem, 0, len(items))
	for _, item := range items {
		d := DebugCartItem{ID: item.ID, ProductID: item.ProductID, Quantity: item.Quantity, AddedAt: item.AddedAt}
		if p := item.Product; p != nil {
			d.Product = DebugCartProduct{ID: p.ID, Name: p.Name, Price: p.Price, Category: p.Category}
		}
		out = append(out, d)
	}
	return out
}
