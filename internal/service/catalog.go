package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/ecocart/backend/internal/models"
)

// CatalogService answers read-only product queries.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListProducts returns every product in id order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, productLookupError(err)
	}
	return &product, nil
}

// GetProductByBarcode retrieves the product carrying barcode.
func (s *CatalogService) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error; err != nil {
		return nil, productLookupError(err)
	}
	return &product, nil
}

// ListFeatures returns the features of an existing product, possibly none.
func (s *CatalogService) ListFeatures(ctx context.Context, productID uint) ([]models.ProductFeature, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	var features []models.ProductFeature
	if err := s.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// SearchProducts matches query case-insensitively against name, description
// and category. A blank query lists everything.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.ListProducts(ctx)
	}

	pattern := likePattern(query)
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, pattern, pattern, pattern).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a LIKE pattern matching query as a literal substring.
// It must be paired with ESCAPE '\'.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func productLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, "Product not found")
	}
	return err
}
