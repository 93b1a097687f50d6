package models

// Product is a catalog entry. Products are created by the seeder only.
type Product struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;check:chk_products_price,price >= 0" json:"price"`
	Barcode     string  `gorm:"size:50;uniqueIndex" json:"barcode"`
	ImageURL    string  `gorm:"size:200" json:"image_url"`
	Category    string  `gorm:"size:50" json:"category"`

	Features []ProductFeature `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ProductFeature is a named attribute of a product, e.g. "Energy Efficiency: A+".
// ImportanceScore is a display weight only; nothing aggregates it.
type ProductFeature struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	ProductID       uint    `gorm:"not null;index" json:"-"`
	FeatureName     string  `gorm:"size:100;not null" json:"feature_name"`
	FeatureValue    string  `gorm:"size:200;not null" json:"feature_value"`
	FeatureUnit     string  `gorm:"size:50" json:"feature_unit"`
	FeatureCategory string  `gorm:"size:50" json:"feature_category"`
	ImportanceScore float64 `gorm:"not null;default:1" json:"importance_score"`
}
