package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PizzaService provides methods to interact with the pizza store
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas with their ingredients
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza and its ingredients by its ID
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza together with its initial ingredients
	CreatePizza(ctx context.Context, req PizzaRequest) (models.Pizza, error)
	// UpdatePizza merges the present fields onto a stored pizza, replacing its ingredients when given
	UpdatePizza(ctx context.Context, id uint, req PizzaRequest) (models.Pizza, error)
	// DeletePizza deletes a pizza and all of its associations
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Scopes(withOrderedIngredients).Order("id ASC").Find(&pizzas).Error; err != nil {
		return nil, models.WrapUnexpected(err)
	}
	for i := range pizzas {
		if pizzas[i].Ingredients == nil {
			pizzas[i].Ingredients = []models.PizzaIngredient{}
		}
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	return findPizza(s.db.WithContext(ctx), id)
}

func (s *pizzaService) CreatePizza(ctx context.Context, req PizzaRequest) (models.Pizza, error) {
	if violations := req.Validate(true); len(violations) > 0 {
		return models.Pizza{}, models.NewConstraintError(violations)
	}

	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var associations []models.PizzaIngredient
		if req.Ingredients != nil {
			var violations []models.FieldViolation
			var err error
			associations, violations, err = resolveAssociations(tx, *req.Ingredients)
			if err != nil {
				return err
			}
			if len(violations) > 0 {
				return models.NewConstraintError(violations)
			}
		}

		pizza = models.Pizza{Name: strings.TrimSpace(*req.Name)}
		for i := range associations {
			pizza.AddIngredient(&associations[i])
		}
		if req.Price != nil {
			pizza.Price = *req.Price
		} else {
			pizza.Price = pizza.CalculatePrice().Round(moneyScale)
		}

		if err := tx.Omit(clause.Associations).Create(&pizza).Error; err != nil {
			return err
		}
		return s.insertAssociations(tx, &pizza)
	})
	if err != nil {
		return models.Pizza{}, asDomainError(err)
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, req PizzaRequest) (models.Pizza, error) {
	if violations := req.Validate(false); len(violations) > 0 {
		return models.Pizza{}, models.NewConstraintError(violations)
	}

	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if pizza, err = findPizza(tx, id); err != nil {
			return err
		}

		if req.Name != nil {
			pizza.Name = strings.TrimSpace(*req.Name)
		}
		if req.Price != nil {
			pizza.Price = *req.Price
		}
		if err := tx.Omit(clause.Associations).Save(&pizza).Error; err != nil {
			return err
		}

		if req.Ingredients == nil {
			return nil
		}

		replacements, violations, err := resolveAssociations(tx, *req.Ingredients)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return models.NewConstraintError(violations)
		}

		if err := tx.Where("pizza_id = ?", pizza.ID).Delete(&models.PizzaIngredient{}).Error; err != nil {
			return err
		}
		for _, existing := range append([]models.PizzaIngredient(nil), pizza.Ingredients...) {
			pizza.RemoveIngredient(&existing)
		}
		for i := range replacements {
			pizza.AddIngredient(&replacements[i])
		}
		return s.insertAssociations(tx, &pizza)
	})
	if err != nil {
		return models.Pizza{}, asDomainError(err)
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPizza(tx, id); err != nil {
			return err
		}
		if err := tx.Where("pizza_id = ?", id).Delete(&models.PizzaIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Pizza{}, id).Error
	})
	return asDomainError(err)
}

// insertAssociations stores the pizza's unsaved associations and copies their ids back
func (s *pizzaService) insertAssociations(tx *gorm.DB, pizza *models.Pizza) error {
	for i := range pizza.Ingredients {
		pi := &pizza.Ingredients[i]
		if pi.ID != 0 {
			continue
		}
		pi.PizzaID = pizza.ID
		if err := tx.Omit("Ingredient").Create(pi).Error; err != nil {
			return err
		}
	}
	return nil
}
