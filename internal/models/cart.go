package models

import "time"

// CartItem is a per-user, per-product quantity. The composite unique index on
// (user_id, product_id) is what the cart upsert conflicts on.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product,priority:1" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product,priority:2;index" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1;check:chk_cart_items_quantity,quantity > 0" json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
}
