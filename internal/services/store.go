package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"gorm.io/gorm"
)

// withOrderedIngredients preloads a pizza's associations by priority and their ingredients
func withOrderedIngredients(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("priority ASC, id ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func findPizza(db *gorm.DB, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.Scopes(withOrderedIngredients).First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.NewNotFoundError("pizza", id)
		}
		return models.Pizza{}, models.WrapUnexpected(err)
	}
	if pizza.Ingredients == nil {
		pizza.Ingredients = []models.PizzaIngredient{}
	}
	return pizza, nil
}

func findIngredient(db *gorm.DB, id uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ingredient{}, models.NewNotFoundError("ingredient", id)
		}
		return models.Ingredient{}, models.WrapUnexpected(err)
	}
	return ingredient, nil
}

// findAssociation is the single-result lookup keyed by the (pizza, ingredient) pair.
// It returns nil without error when no association exists.
func findAssociation(db *gorm.DB, pizzaID, ingredientID uint) (*models.PizzaIngredient, error) {
	var associations []models.PizzaIngredient
	err := db.
		Preload("Ingredient").
		Where("pizza_id = ? AND ingredient_id = ?", pizzaID, ingredientID).
		Limit(1).
		Find(&associations).Error
	if err != nil {
		return nil, models.WrapUnexpected(err)
	}
	if len(associations) == 0 {
		return nil, nil
	}
	return &associations[0], nil
}

// resolveAssociations loads the ingredient behind every request. Requests pointing at
// missing ingredients are reported as violations.
func resolveAssociations(db *gorm.DB, requests []AssociationRequest) ([]models.PizzaIngredient, []models.FieldViolation, error) {
	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.Ingredient.ID)
	}

	var ingredients []models.Ingredient
	if len(ids) > 0 {
		if err := db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
			return nil, nil, models.WrapUnexpected(err)
		}
	}
	byID := make(map[uint]models.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		byID[ingredient.ID] = ingredient
	}

	associations := make([]models.PizzaIngredient, 0, len(requests))
	var violations []models.FieldViolation
	for _, r := range requests {
		ingredient, ok := byID[r.Ingredient.ID]
		if !ok {
			violations = append(violations, models.FieldViolation{Field: "ingredient", Message: MsgIngredientMissing})
			continue
		}
		associations = append(associations, models.PizzaIngredient{
			IngredientID: ingredient.ID,
			Ingredient:   ingredient,
			Priority:     *r.Priority,
		})
	}
	return associations, violations, nil
}

// asDomainError leaves domain errors alone and hides anything else behind the generic message
func asDomainError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return models.WrapUnexpected(err)
}
