package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRefDecoding(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected uint
		wantErr  bool
	}{
		{name: "object", payload: `{"ingredient":{"id":3}}`, expected: 3},
		{name: "object with string id", payload: `{"ingredient":{"id":"4"}}`, expected: 4},
		{name: "bare number", payload: `{"ingredient":5}`, expected: 5},
		{name: "numeric string", payload: `{"ingredient":" 6 "}`, expected: 6},
		{name: "null id", payload: `{"ingredient":{"id":null}}`, expected: 0},
		{name: "object without id", payload: `{"ingredient":{}}`, expected: 0},
		{name: "word", payload: `{"ingredient":"cheese"}`, wantErr: true},
		{name: "negative", payload: `{"ingredient":-1}`, wantErr: true},
		{name: "fraction", payload: `{"ingredient":1.5}`, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var req AssociationRequest
			err := json.Unmarshal([]byte(tt.payload), &req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.Ingredient)
			assert.Equal(t, tt.expected, req.Ingredient.ID)
		})
	}

	t.Run("null leaves the reference absent", func(t *testing.T) {
		var req AssociationRequest
		require.NoError(t, json.Unmarshal([]byte(`{"ingredient":null,"priority":1}`), &req))
		assert.Nil(t, req.Ingredient)
		assert.Equal(t, MsgIngredientMissing, req.Validate()[0].Message)
	})
}

func TestPizzaRequestValidate(t *testing.T) {
	t.Run("update without name is allowed", func(t *testing.T) {
		assert.Empty(t, PizzaRequest{Price: dec("3")}.Validate(false))
	})

	t.Run("violations keep input order and field paths", func(t *testing.T) {
		req := PizzaRequest{
			Name:  ptr(" "),
			Price: dec("-1"),
			Ingredients: &[]AssociationRequest{
				{Ingredient: &IngredientRef{ID: 1}, Priority: ptr(1)},
				{Priority: ptr(0)},
			},
		}

		violations := req.Validate(true)

		require.Len(t, violations, 4)
		assert.Equal(t, "name", violations[0].Field)
		assert.Equal(t, "price", violations[1].Field)
		assert.Equal(t, "ingredients[1].ingredient", violations[2].Field)
		assert.Equal(t, MsgIngredientMissing, violations[2].Message)
		assert.Equal(t, "ingredients[1].priority", violations[3].Field)
		assert.Equal(t, MsgPriorityNotPositive, violations[3].Message)
	})

	t.Run("a repeated ingredient is reported once", func(t *testing.T) {
		ref := &IngredientRef{ID: 2}
		req := PizzaRequest{
			Name: ptr("Triple"),
			Ingredients: &[]AssociationRequest{
				{Ingredient: ref, Priority: ptr(1)},
				{Ingredient: ref, Priority: ptr(2)},
				{Ingredient: ref, Priority: ptr(3)},
			},
		}

		violations := req.Validate(true)

		require.Len(t, violations, 1)
		assert.Equal(t, MsgIngredientListedTwice, violations[0].Message)
	})
}
