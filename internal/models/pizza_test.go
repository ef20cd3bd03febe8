package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredientWithCost(id uint, cost string) Ingredient {
	return Ingredient{ID: id, Name: "ingredient", Cost: decimal.RequireFromString(cost)}
}

func TestPizzaAddIngredient(t *testing.T) {
	pizza := Pizza{ID: 7, Name: "Margherita"}

	pi := &PizzaIngredient{IngredientID: 1, Ingredient: ingredientWithCost(1, "1"), Priority: 1}
	pizza.AddIngredient(pi)

	require.Len(t, pizza.Ingredients, 1)
	assert.Equal(t, uint(7), pi.PizzaID, "back reference should point at the pizza")
	assert.Equal(t, uint(7), pizza.Ingredients[0].PizzaID)

	t.Run("adding the same association again is a no-op", func(t *testing.T) {
		pizza.AddIngredient(pi)
		assert.Len(t, pizza.Ingredients, 1)
	})

	t.Run("nil association is ignored", func(t *testing.T) {
		pizza.AddIngredient(nil)
		assert.Len(t, pizza.Ingredients, 1)
	})

	t.Run("saved associations are matched by id", func(t *testing.T) {
		other := Pizza{ID: 1}
		other.AddIngredient(&PizzaIngredient{ID: 10, IngredientID: 1, Priority: 1})
		other.AddIngredient(&PizzaIngredient{ID: 11, IngredientID: 2, Priority: 2})
		other.AddIngredient(&PizzaIngredient{ID: 10, IngredientID: 1, Priority: 5})
		assert.Len(t, other.Ingredients, 2)
	})
}

func TestPizzaRemoveIngredient(t *testing.T) {
	pizza := Pizza{ID: 3}
	first := &PizzaIngredient{ID: 1, IngredientID: 1, Priority: 1}
	second := &PizzaIngredient{ID: 2, IngredientID: 2, Priority: 2}
	pizza.AddIngredient(first)
	pizza.AddIngredient(second)

	removed := pizza.RemoveIngredient(first)

	assert.True(t, removed)
	require.Len(t, pizza.Ingredients, 1)
	assert.Equal(t, uint(2), pizza.Ingredients[0].ID)
	assert.Zero(t, first.PizzaID, "back reference should be cleared")

	t.Run("absent association is a no-op", func(t *testing.T) {
		assert.False(t, pizza.RemoveIngredient(&PizzaIngredient{ID: 99}))
		assert.False(t, pizza.RemoveIngredient(nil))
		assert.Len(t, pizza.Ingredients, 1)
	})

	t.Run("back reference to another pizza is kept", func(t *testing.T) {
		moved := &PizzaIngredient{ID: 2, IngredientID: 2, PizzaID: 42}
		assert.True(t, pizza.RemoveIngredient(moved))
		assert.Equal(t, uint(42), moved.PizzaID)
		assert.Empty(t, pizza.Ingredients)
	})
}

func TestPizzaCalculatePrice(t *testing.T) {
	testCases := []struct {
		name     string
		costs    []string
		expected string
	}{
		{name: "no ingredients", costs: nil, expected: "0"},
		{name: "single ingredient", costs: []string{"1"}, expected: "1.5"},
		{name: "two ingredients", costs: []string{"0.5", "1.25"}, expected: "2.625"},
		{name: "fixture pizza", costs: []string{"0.5", "1", "1", "0.5", "0.5", "1"}, expected: "6.75"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			pizza := Pizza{ID: 1, Price: decimal.NewFromInt(99)}
			for i, cost := range tt.costs {
				id := uint(i + 1)
				pizza.AddIngredient(&PizzaIngredient{IngredientID: id, Ingredient: ingredientWithCost(id, cost), Priority: i + 1})
			}

			got := pizza.CalculatePrice()

			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s, expected %s", got, tt.expected)
			assert.True(t, pizza.Price.Equal(decimal.NewFromInt(99)), "stored price must not change")
		})
	}
}

func TestDomainError(t *testing.T) {
	cause := errors.New("disk full")

	err := WrapUnexpected(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, GenericErrorMessage, err.Message)

	constraint := NewConstraintError([]FieldViolation{
		{Field: "name", Message: "Pizza name cannot be empty"},
		{Field: "price", Message: "Pizza price cannot be negative"},
	})
	assert.Equal(t, KindConstraint, constraint.Kind)
	assert.Equal(t, "Pizza name cannot be empty, Pizza price cannot be negative", constraint.Message)
}
