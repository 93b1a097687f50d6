package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/ecocart/backend/internal/models"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Product{},
		&models.ProductFeature{},
		&models.CartItem{},
		&models.Activity{},
		&models.Recipe{},
	}
}

// RunMigrations creates any missing tables, columns and indexes. There is no
// migration history; the schema is created fresh when absent.
func RunMigrations(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.WithField("dialect", db.Dialector.Name()).Info("Schema is up to date")
	return nil
}
