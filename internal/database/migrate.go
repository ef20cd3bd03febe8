package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the ingredient, pizza and association tables.
// The association table carries the (pizza_id, ingredient_id) unique index and
// cascading foreign keys to both parents.
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Ingredient{}, &models.Pizza{}, &models.PizzaIngredient{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
