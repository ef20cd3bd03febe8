package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/services"
	"github.com/gin-gonic/gin"
)

// IngredientController handles HTTP requests related to ingredients
type IngredientController interface {
	// GetAllIngredients retrieves all ingredients
	GetAllIngredients(c *gin.Context)
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(c *gin.Context)
	// CreateIngredient creates a new ingredient
	CreateIngredient(c *gin.Context)
	// UpdateIngredient updates an existing ingredient
	UpdateIngredient(c *gin.Context)
	// DeleteIngredient deletes an ingredient by its ID
	DeleteIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) IngredientController {
	return &ingredientController{service: service}
}

// GetAllIngredients godoc
// @Summary Get all ingredients
// @Description Get a list of all ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredient [get]
func (c *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := c.service.GetAllIngredients(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// GetIngredientByID godoc
// @Summary Get ingredient by ID
// @Description Get a single ingredient by its ID
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredient/{id} [get]
func (c *ingredientController) GetIngredientByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "ingredient")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ingredient, err := c.service.GetIngredientByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create a new ingredient
// @Description Create a new ingredient with the input payload
// @Tags ingredients
// @Accept json
// @Param ingredient body services.IngredientRequest true "Ingredient"
// @Success 201 "Created, Location header points at the new ingredient"
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredient [post]
func (c *ingredientController) CreateIngredient(ctx *gin.Context) {
	var req services.IngredientRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	ingredient, err := c.service.CreateIngredient(ctx.Request.Context(), req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Header("Location", fmt.Sprintf("/api/v1/ingredient/%d", ingredient.ID))
	ctx.Status(http.StatusCreated)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Overwrite the fields present in the payload, keeping the others
// @Tags ingredients
// @Accept json
// @Param id path int true "Ingredient ID"
// @Param ingredient body services.IngredientRequest true "Ingredient fields"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredient/{id} [put]
func (c *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "ingredient")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	// Get the existing ingredient first so a missing one is a 404 whatever the body
	if _, err := c.service.GetIngredientByID(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}

	var req services.IngredientRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	if _, err := c.service.UpdateIngredient(ctx.Request.Context(), id, req); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Delete an ingredient and remove it from every pizza
// @Tags ingredients
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/ingredient/{id} [delete]
func (c *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "ingredient")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	if err := c.service.DeleteIngredient(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
