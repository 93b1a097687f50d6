package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/ecocart/backend/internal/models"
)

// Result counts what Apply did.
type Result struct {
	ProductsAdded   int
	ProductsSkipped int
	RecipesAdded    int
	RecipesSkipped  int
}

// Apply inserts products missing by barcode and recipes missing by name.
// Running it again is a no-op.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture, log *logrus.Entry) (*Result, error) {
	db = db.WithContext(ctx)
	res := &Result{}

	for _, p := range f.Products {
		var count int64
		if err := db.Model(&models.Product{}).Where("barcode = ?", p.Barcode).Count(&count).Error; err != nil {
			return res, fmt.Errorf("failed to check product %q: %w", p.Barcode, err)
		}
		if count > 0 {
			res.ProductsSkipped++
			continue
		}

		// Product and features land together or not at all.
		product := p.model()
		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&product).Error
		}); err != nil {
			return res, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		res.ProductsAdded++
	}

	for _, r := range f.Recipes {
		var count int64
		if err := db.Model(&models.Recipe{}).Where("name = ?", r.Name).Count(&count).Error; err != nil {
			return res, fmt.Errorf("failed to check recipe %q: %w", r.Name, err)
		}
		if count > 0 {
			res.RecipesSkipped++
			continue
		}

		recipe := r.model()
		if err := db.Create(&recipe).Error; err != nil {
			return res, fmt.Errorf("failed to seed recipe %q: %w", r.Name, err)
		}
		res.RecipesAdded++
	}

	log.WithFields(logrus.Fields{
		"products_added":   res.ProductsAdded,
		"products_skipped": res.ProductsSkipped,
		"recipes_added":    res.RecipesAdded,
		"recipes_skipped":  res.RecipesSkipped,
	}).Info("Sample data seeded")
	return res, nil
}
