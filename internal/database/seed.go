package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedIngredient struct {
	name string
	cost string
}

var seedIngredients = []seedIngredient{
	{name: "Sliced mushrooms", cost: "0.5"},
	{name: "Feta cheese", cost: "1"},
	{name: "Sausages", cost: "1"},
	{name: "Sliced onion", cost: "0.5"},
	{name: "Mozzarella cheese", cost: "0.5"},
	{name: "Oregano", cost: "1"},
	{name: "Bacon", cost: "1"},
}

// funPizzaIngredients indexes into seedIngredients; the position is the priority
var funPizzaIngredients = []int{0, 1, 2, 3, 4, 5}

// Seed fills an empty database with the default ingredients and the "Fun Pizza".
// It does nothing when ingredients already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count ingredients: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	err := db.Transaction(func(tx *gorm.DB) error {
		ingredients := make([]models.Ingredient, 0, len(seedIngredients))
		for _, si := range seedIngredients {
			ingredients = append(ingredients, models.Ingredient{
				Name: si.name,
				Cost: decimal.RequireFromString(si.cost),
			})
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		pizza := models.Pizza{Name: "Fun Pizza", Price: decimal.RequireFromString("7.5")}
		if err := tx.Omit("Ingredients").Create(&pizza).Error; err != nil {
			return err
		}

		for i, idx := range funPizzaIngredients {
			pizza.AddIngredient(&models.PizzaIngredient{
				IngredientID: ingredients[idx].ID,
				Priority:     i + 1,
			})
		}
		return tx.Omit("Ingredient").Create(&pizza.Ingredients).Error
	})
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	log.WithField("ingredients", len(seedIngredients)).Info("Database seeded successfully")
	return nil
}
