package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/shopspring/decimal"
)

// Field rule messages returned to clients
const (
	MsgPizzaNameEmpty          = "Pizza name cannot be empty"
	MsgPizzaPriceNegative      = "Pizza price cannot be negative"
	MsgPizzaPriceScale         = "Pizza price cannot have more than 2 decimal places"
	MsgIngredientNameEmpty     = "Ingredient name cannot be empty"
	MsgIngredientCostEmpty     = "Ingredient cost cannot be empty"
	MsgIngredientCostNegative  = "Ingredient cost cannot be negative"
	MsgIngredientCostScale     = "Ingredient cost cannot have more than 2 decimal places"
	MsgIngredientMissing       = "Ingredient cannot be empty or must exist"
	MsgPriorityEmpty           = "Ingredient priority cannot be empty"
	MsgPriorityNotPositive     = "Ingredient priority must be a positive integer"
	MsgIngredientListedTwice   = "Ingredient cannot be listed more than once for a pizza"
	MsgMalformedPayload        = "An error occurred with your data. Please check data and json format."
	MsgDuplicateAssociation    = "This ingredient already exists for this pizza. Use PUT method if you want to change priority"
	MsgAssociationDoesNotExist = "This ingredient does not exist for this pizza."
	MsgInvalidPriority         = "Priority cannot be empty and must be a positive integer"
)

// moneyScale is the number of decimal places the cost and price columns hold
const moneyScale = 2

// exceedsMoneyScale reports whether d would lose digits when stored.
func exceedsMoneyScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(moneyScale))
}

// IngredientRef points at an existing ingredient.
// It decodes from {"id": 1}, 1 or "1".
type IngredientRef struct {
	ID uint `json:"id"`
}

func (r *IngredientRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 {
			return nil
		}
		return r.UnmarshalJSON(obj.ID)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return r.parseID(strings.TrimSpace(s))
	default:
		return r.parseID(string(data))
	}
}

func (r *IngredientRef) parseID(raw string) error {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ingredient reference %q", raw)
	}
	r.ID = uint(id)
	return nil
}

// IngredientRequest is the body of ingredient create and update calls.
// Absent fields are nil so updates keep the stored value.
type IngredientRequest struct {
	Name *string          `json:"name" example:"Cheese"`
	Cost *decimal.Decimal `json:"cost" swaggertype:"number" example:"1.0"`
}

// ApplyTo copies the present fields onto ingredient.
func (r IngredientRequest) ApplyTo(ingredient *models.Ingredient) {
	if r.Name != nil {
		ingredient.Name = strings.TrimSpace(*r.Name)
	}
	if r.Cost != nil {
		ingredient.Cost = *r.Cost
	}
}

// ValidateCreate checks a request that must fully describe a new ingredient.
func (r IngredientRequest) ValidateCreate() []models.FieldViolation {
	var violations []models.FieldViolation
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		violations = append(violations, models.FieldViolation{Field: "name", Message: MsgIngredientNameEmpty})
	}
	if r.Cost == nil {
		violations = append(violations, models.FieldViolation{Field: "cost", Message: MsgIngredientCostEmpty})
	} else if r.Cost.IsNegative() {
		violations = append(violations, models.FieldViolation{Field: "cost", Message: MsgIngredientCostNegative})
	} else if exceedsMoneyScale(*r.Cost) {
		violations = append(violations, models.FieldViolation{Field: "cost", Message: MsgIngredientCostScale})
	}
	return violations
}

// validateIngredient checks an ingredient after an update has been merged onto it.
func validateIngredient(ingredient models.Ingredient) []models.FieldViolation {
	var violations []models.FieldViolation
	if strings.TrimSpace(ingredient.Name) == "" {
		violations = append(violations, models.FieldViolation{Field: "name", Message: MsgIngredientNameEmpty})
	}
	if ingredient.Cost.IsNegative() {
		violations = append(violations, models.FieldViolation{Field: "cost", Message: MsgIngredientCostNegative})
	} else if exceedsMoneyScale(ingredient.Cost) {
		violations = append(violations, models.FieldViolation{Field: "cost", Message: MsgIngredientCostScale})
	}
	return violations
}

// AssociationRequest attaches one ingredient to a pizza.
type AssociationRequest struct {
	Ingredient *IngredientRef `json:"ingredient"`
	Priority   *int           `json:"priority" example:"1"`
}

// Validate checks the payload shape. Whether the ingredient exists is checked against the store.
func (r AssociationRequest) Validate() []models.FieldViolation {
	var violations []models.FieldViolation
	if r.Ingredient == nil || r.Ingredient.ID == 0 {
		violations = append(violations, models.FieldViolation{Field: "ingredient", Message: MsgIngredientMissing})
	}
	if r.Priority == nil {
		violations = append(violations, models.FieldViolation{Field: "priority", Message: MsgPriorityEmpty})
	} else if *r.Priority <= 0 {
		violations = append(violations, models.FieldViolation{Field: "priority", Message: MsgPriorityNotPositive})
	}
	return violations
}

// PizzaRequest is the body of pizza create and update calls.
// A present Ingredients list replaces the pizza's ingredient set.
type PizzaRequest struct {
	Name        *string               `json:"name" example:"Margherita"`
	Price       *decimal.Decimal      `json:"price" swaggertype:"number" example:"5.0"`
	Ingredients *[]AssociationRequest `json:"ingredients"`
}

// Validate checks a pizza payload. requireName is set for creation.
func (r PizzaRequest) Validate(requireName bool) []models.FieldViolation {
	var violations []models.FieldViolation
	if (r.Name == nil && requireName) || (r.Name != nil && strings.TrimSpace(*r.Name) == "") {
		violations = append(violations, models.FieldViolation{Field: "name", Message: MsgPizzaNameEmpty})
	}
	if r.Price != nil && r.Price.IsNegative() {
		violations = append(violations, models.FieldViolation{Field: "price", Message: MsgPizzaPriceNegative})
	} else if r.Price != nil && exceedsMoneyScale(*r.Price) {
		violations = append(violations, models.FieldViolation{Field: "price", Message: MsgPizzaPriceScale})
	}
	if r.Ingredients == nil {
		return violations
	}

	seen := make(map[uint]bool, len(*r.Ingredients))
	duplicated := false
	for i, assoc := range *r.Ingredients {
		for _, v := range assoc.Validate() {
			v.Field = fmt.Sprintf("ingredients[%d].%s", i, v.Field)
			violations = append(violations, v)
		}
		if assoc.Ingredient == nil || assoc.Ingredient.ID == 0 {
			continue
		}
		if seen[assoc.Ingredient.ID] && !duplicated {
			duplicated = true
			violations = append(violations, models.FieldViolation{
				Field:   fmt.Sprintf("ingredients[%d].ingredient", i),
				Message: MsgIngredientListedTwice,
			})
		}
		seen[assoc.Ingredient.ID] = true
	}
	return violations
}

// PriorityRequest is the body of a priority update.
type PriorityRequest struct {
	Priority *int `json:"priority" example:"2"`
}

// Validate rejects an absent or non-positive priority.
func (r PriorityRequest) Validate() []models.FieldViolation {
	if r.Priority == nil || *r.Priority <= 0 {
		return []models.FieldViolation{{Field: "priority", Message: MsgInvalidPriority}}
	}
	return nil
}
