package testhelpers

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/ecocart/backend/internal/models"
)

// CreateUser inserts a user whose password is hashed with the minimum bcrypt cost.
func CreateUser(t *testing.T, db *gorm.DB, username, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateProduct inserts p together with its features.
func CreateProduct(t *testing.T, db *gorm.DB, p models.Product) *models.Product {
	t.Helper()

	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return &p
}

// TShirt mirrors the first product of the sample catalog.
func TShirt() models.Product {
	return models.Product{
		Name:        "Organic Cotton T-Shirt",
		Description: "Made from 100% organic cotton, this t-shirt is both comfortable and sustainable.",
		Price:       29.99,
		Barcode:     "1234567890",
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
		Category:    "Clothing",
		Features: []models.ProductFeature{
			{FeatureName: "Organic Materials", FeatureValue: "100%", FeatureUnit: "Percentage", FeatureCategory: "Environmental", ImportanceScore: 1.5},
			{FeatureName: "Fair Trade Certified", FeatureValue: "Yes", FeatureUnit: "Boolean", FeatureCategory: "Ethical", ImportanceScore: 1.4},
		},
	}
}

// LEDBulb is a second catalog product in a different category.
func LEDBulb() models.Product {
	return models.Product{
		Name:        "Energy-Efficient LED Bulb",
		Description: "Long-lasting LED bulb that reduces energy consumption by up to 80%.",
		Price:       12.99,
		Barcode:     "2345678901",
		ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c",
		Category:    "Electronics",
	}
}

// Recipes returns the three sample recipes.
func Recipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:        "Vegetable Pasta",
			Description: "A healthy pasta dish with fresh vegetables",
			Ingredients: models.StringList{"pasta", "tomatoes", "bell peppers", "onions", "garlic"},
			CookingTime: "30 mins",
			Difficulty:  "Easy",
		},
		{
			Name:        "Chicken Curry",
			Description: "Traditional Indian chicken curry with spices",
			Ingredients: models.StringList{"chicken", "onions", "tomatoes", "garlic", "ginger", "spices"},
			CookingTime: "45 mins",
			Difficulty:  "Medium",
		},
		{
			Name:        "Vegetable Stir Fry",
			Description: "Quick and healthy stir-fried vegetables",
			Ingredients: models.StringList{"broccoli", "carrots", "bell peppers", "soy sauce", "ginger"},
			CookingTime: "20 mins",
			Difficulty:  "Easy",
		},
	}
}

// CreateRecipes inserts the sample recipes.
func CreateRecipes(t *testing.T, db *gorm.DB) []models.Recipe {
	t.Helper()

	recipes := Recipes()
	if err := db.Create(&recipes).Error; err != nil {
		t.Fatalf("failed to create recipes: %v", err)
	}
	return recipes
}
