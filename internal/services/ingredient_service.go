package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"gorm.io/gorm"
)

// IngredientService provides methods to interact with the ingredient store
type IngredientService interface {
	// GetAllIngredients retrieves all ingredients
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(ctx context.Context, id uint) (models.Ingredient, error)
	// CreateIngredient validates and stores a new ingredient
	CreateIngredient(ctx context.Context, req IngredientRequest) (models.Ingredient, error)
	// UpdateIngredient merges the present fields onto a stored ingredient
	UpdateIngredient(ctx context.Context, id uint, req IngredientRequest) (models.Ingredient, error)
	// DeleteIngredient removes an ingredient and every association referencing it
	DeleteIngredient(ctx context.Context, id uint) error
}

type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&ingredients).Error; err != nil {
		return nil, models.WrapUnexpected(err)
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (models.Ingredient, error) {
	return findIngredient(s.db.WithContext(ctx), id)
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req IngredientRequest) (models.Ingredient, error) {
	if violations := req.ValidateCreate(); len(violations) > 0 {
		return models.Ingredient{}, models.NewConstraintError(violations)
	}

	var ingredient models.Ingredient
	req.ApplyTo(&ingredient)
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return models.Ingredient{}, models.WrapUnexpected(err)
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req IngredientRequest) (models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if ingredient, err = findIngredient(tx, id); err != nil {
			return err
		}

		req.ApplyTo(&ingredient)
		if violations := validateIngredient(ingredient); len(violations) > 0 {
			return models.NewConstraintError(violations)
		}
		return tx.Save(&ingredient).Error
	})
	if err != nil {
		return models.Ingredient{}, asDomainError(err)
	}
	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findIngredient(tx, id); err != nil {
			return err
		}
		// Associations go with the ingredient even where the store does not enforce the foreign key.
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.PizzaIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ingredient{}, id).Error
	})
	return asDomainError(err)
}
