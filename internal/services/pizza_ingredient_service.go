package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PizzaIngredientService manages which ingredients a pizza holds.
//
// An ingredient is attached to a given pizza at most once. The check is made inside the
// write transaction and backed by the unique (pizza_id, ingredient_id) index, so two
// concurrent attaches of the same pair cannot both succeed.
type PizzaIngredientService interface {
	// FindAssociation returns the association for the pair, or nil when there is none
	FindAssociation(ctx context.Context, pizzaID, ingredientID uint) (*models.PizzaIngredient, error)
	// AttachIngredient adds an ingredient with a priority to a pizza
	AttachIngredient(ctx context.Context, pizzaID uint, req AssociationRequest) error
	// DetachIngredient removes an ingredient from a pizza; detaching an absent ingredient succeeds
	DetachIngredient(ctx context.Context, pizzaID, ingredientID uint) error
	// UpdatePriority changes the priority of an attached ingredient
	UpdatePriority(ctx context.Context, pizzaID, ingredientID uint, req PriorityRequest) error
}

type pizzaIngredientService struct {
	db *gorm.DB
}

// NewPizzaIngredientService creates a new instance of PizzaIngredientService
func NewPizzaIngredientService(db *gorm.DB) PizzaIngredientService {
	return &pizzaIngredientService{db: db}
}

func (s *pizzaIngredientService) FindAssociation(ctx context.Context, pizzaID, ingredientID uint) (*models.PizzaIngredient, error) {
	return findAssociation(s.db.WithContext(ctx), pizzaID, ingredientID)
}

func (s *pizzaIngredientService) AttachIngredient(ctx context.Context, pizzaID uint, req AssociationRequest) error {
	if violations := req.Validate(); len(violations) > 0 {
		return models.NewConstraintError(violations)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, pizzaID)
		if err != nil {
			return err
		}

		ingredient, err := findIngredient(tx, req.Ingredient.ID)
		if err != nil {
			var domainErr *models.DomainError
			if errors.As(err, &domainErr) && domainErr.Kind == models.KindNotFound {
				return models.NewConstraintError([]models.FieldViolation{{Field: "ingredient", Message: MsgIngredientMissing}})
			}
			return err
		}

		existing, err := findAssociation(tx, pizza.ID, ingredient.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewBusinessRuleError(MsgDuplicateAssociation)
		}

		association := &models.PizzaIngredient{
			IngredientID: ingredient.ID,
			Ingredient:   ingredient,
			Priority:     *req.Priority,
		}
		pizza.AddIngredient(association)

		if err := tx.Omit("Ingredient").Create(association).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewBusinessRuleError(MsgDuplicateAssociation)
			}
			return err
		}
		return tx.Omit(clause.Associations).Save(&pizza).Error
	})
	return asDomainError(err)
}

func (s *pizzaIngredientService) DetachIngredient(ctx context.Context, pizzaID, ingredientID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := findPizza(tx, pizzaID)
		if err != nil {
			return err
		}
		if _, err := findIngredient(tx, ingredientID); err != nil {
			return err
		}

		association, err := findAssociation(tx, pizza.ID, ingredientID)
		if err != nil {
			return err
		}
		// Removing nothing is a no-op.
		if !pizza.RemoveIngredient(association) {
			return nil
		}
		return tx.Delete(association).Error
	})
	return asDomainError(err)
}

func (s *pizzaIngredientService) UpdatePriority(ctx context.Context, pizzaID, ingredientID uint, req PriorityRequest) error {
	if violations := req.Validate(); len(violations) > 0 {
		return models.NewBusinessRuleError(MsgInvalidPriority)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPizza(tx, pizzaID); err != nil {
			return err
		}
		if _, err := findIngredient(tx, ingredientID); err != nil {
			return err
		}

		association, err := findAssociation(tx, pizzaID, ingredientID)
		if err != nil {
			return err
		}
		if association == nil {
			return models.NewBusinessRuleError(MsgAssociationDoesNotExist)
		}
		return tx.Model(&models.PizzaIngredient{}).
			Where("id = ?", association.ID).
			Update("priority", *req.Priority).Error
	})
	return asDomainError(err)
}
