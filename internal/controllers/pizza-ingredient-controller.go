package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaIngredientController handles the ingredients held by a pizza
type PizzaIngredientController interface {
	AttachIngredient(c *gin.Context)
	DetachIngredient(c *gin.Context)
	UpdatePriority(c *gin.Context)
}

type pizzaIngredientController struct {
	pizzas       services.PizzaService
	ingredients  services.IngredientService
	associations services.PizzaIngredientService
}

// NewPizzaIngredientController creates a new instance of PizzaIngredientController
func NewPizzaIngredientController(
	pizzas services.PizzaService,
	ingredients services.IngredientService,
	associations services.PizzaIngredientService,
) PizzaIngredientController {
	return &pizzaIngredientController{
		pizzas:       pizzas,
		ingredients:  ingredients,
		associations: associations,
	}
}

// AttachIngredient godoc
// @Summary Add an ingredient to a pizza
// @Description Attach an existing ingredient with a priority. An ingredient is held at most once per pizza.
// @Tags pizza ingredients
// @Accept json
// @Param id path int true "Pizza ID"
// @Param association body services.AssociationRequest true "Ingredient reference and priority"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id}/ingredient [post]
func (c *pizzaIngredientController) AttachIngredient(ctx *gin.Context) {
	pizzaID, err := pathID(ctx, "id", "pizza")
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if _, err := c.pizzas.GetPizzaByID(ctx.Request.Context(), pizzaID); err != nil {
		respondWithError(ctx, err)
		return
	}

	var req services.AssociationRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	if err := c.associations.AttachIngredient(ctx.Request.Context(), pizzaID, req); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DetachIngredient godoc
// @Summary Remove an ingredient from a pizza
// @Description Detach an ingredient. Detaching an ingredient the pizza does not hold succeeds.
// @Tags pizza ingredients
// @Param id path int true "Pizza ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id}/ingredient/{ingredient_id} [delete]
func (c *pizzaIngredientController) DetachIngredient(ctx *gin.Context) {
	pizzaID, ingredientID, err := c.resolvePair(ctx)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	if err := c.associations.DetachIngredient(ctx.Request.Context(), pizzaID, ingredientID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UpdatePriority godoc
// @Summary Change the priority of a pizza ingredient
// @Description Replace the priority of an ingredient the pizza already holds
// @Tags pizza ingredients
// @Accept json
// @Param id path int true "Pizza ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Param priority body services.PriorityRequest true "New priority"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id}/ingredient/{ingredient_id} [put]
func (c *pizzaIngredientController) UpdatePriority(ctx *gin.Context) {
	pizzaID, ingredientID, err := c.resolvePair(ctx)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	var req services.PriorityRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	if err := c.associations.UpdatePriority(ctx.Request.Context(), pizzaID, ingredientID, req); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// resolvePair checks that both path entities exist before the body is read
func (c *pizzaIngredientController) resolvePair(ctx *gin.Context) (uint, uint, error) {
	pizzaID, err := pathID(ctx, "id", "pizza")
	if err != nil {
		return 0, 0, err
	}
	ingredientID, err := pathID(ctx, "ingredient_id", "ingredient")
	if err != nil {
		return 0, 0, err
	}

	if _, err := c.pizzas.GetPizzaByID(ctx.Request.Context(), pizzaID); err != nil {
		return 0, 0, err
	}
	if _, err := c.ingredients.GetIngredientByID(ctx.Request.Context(), ingredientID); err != nil {
		return 0, 0, err
	}
	return pizzaID, ingredientID, nil
}
