package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/ecocart/backend/internal/models"
)

// CartService manages each user's cart. Every mutation runs in a single
// transaction.
type CartService struct {
	db  *gorm.DB
	log *logrus.Entry
}

// NewCartService creates a new CartService instance
func NewCartService(db *gorm.DB, log *logrus.Entry) *CartService {
	return &CartService{db: db, log: log.WithField("component", "cart")}
}

// GetCart returns the user's cart items with their products.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds quantity (default 1) of a product. An existing row for the
// same product is incremented in place by a single upsert.
func (s *CartService) AddToCart(ctx context.Context, userID uint, productID *uint, quantity *int) (*models.CartItem, error) {
	if productID == nil {
		return nil, newError(ErrValidation, "Product ID is required")
	}
	qty := 1
	if quantity != nil {
		qty = *quantity
	}
	if qty < 1 {
		return nil, newError(ErrValidation, "Quantity must be at least 1")
	}

	var result models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, *productID).Error; err != nil {
			return productLookupError(err)
		}

		item := models.CartItem{UserID: userID, ProductID: product.ID, Quantity: qty}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).Create(&item).Error
		if err != nil {
			return err
		}

		// Re-read: after a conflict the inserted struct does not hold the stored row.
		if err := tx.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&result).Error; err != nil {
			return err
		}
		result.Product = &product
		return nil
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "product_id": *productID}).Warn("Add to cart failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": result.ProductID,
		"quantity":   result.Quantity,
	}).Debug("Cart item upserted")
	return &result, nil
}

// UpdateCartItem sets the quantity of one of the user's cart rows.
func (s *CartService) UpdateCartItem(ctx context.Context, userID, itemID uint, quantity *int) (*models.CartItem, error) {
	if quantity == nil {
		return nil, newError(ErrValidation, "Quantity is required")
	}
	if *quantity < 1 {
		return nil, newError(ErrValidation, "Quantity must be at least 1")
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findOwnedItem(tx, userID, itemID, &item); err != nil {
			return err
		}
		if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).Update("quantity", *quantity).Error; err != nil {
			return err
		}
		item.Quantity = *quantity
		return nil
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "item_id": itemID}).Warn("Cart update failed")
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes one of the user's cart rows and returns it as it was.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findOwnedItem(tx, userID, itemID, &item); err != nil {
			return err
		}
		return tx.Delete(&models.CartItem{}, item.ID).Error
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "item_id": itemID}).Warn("Cart removal failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "item_id": itemID}).Debug("Cart item removed")
	return &item, nil
}

// GetCartComparison returns the cart with each product's features loaded.
func (s *CartService) GetCartComparison(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Features", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// findOwnedItem loads a cart row only if it belongs to userID. Someone else's
// row is reported exactly like a missing one.
func findOwnedItem(tx *gorm.DB, userID, itemID uint, item *models.CartItem) error {
	err := tx.Preload("Product").Where("id = ? AND user_id = ?", itemID, userID).First(item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, "Cart item not found")
	}
	return err
}
