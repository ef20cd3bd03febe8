package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with their ingredients ordered by priority
// @Tags pizzas
// @Produce json
// @Success 200 {array} PizzaResponse
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	response := make([]PizzaResponse, 0, len(pizzas))
	for _, pizza := range pizzas {
		response = append(response, NewPizzaResponse(pizza))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} PizzaResponse
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "pizza")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewPizzaResponse(pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza, optionally with its ingredients. Without a price the calculated price is stored.
// @Tags pizzas
// @Accept json
// @Param pizza body services.PizzaRequest true "Pizza"
// @Success 201 "Created, Location header points at the new pizza"
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req services.PizzaRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), req)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Header("Location", fmt.Sprintf("/api/v1/pizza/%d", pizza.ID))
	ctx.Status(http.StatusCreated)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Overwrite the fields present in the payload. A present ingredients list replaces the current one.
// @Tags pizzas
// @Accept json
// @Param id path int true "Pizza ID"
// @Param pizza body services.PizzaRequest true "Pizza fields"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id} [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "pizza")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	// Get the existing pizza first so a missing one is a 404 whatever the body
	if _, err := c.service.GetPizzaByID(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}

	var req services.PizzaRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondWithError(ctx, err)
		return
	}

	if _, err := c.service.UpdatePizza(ctx.Request.Context(), id, req); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and its ingredient associations. The ingredients themselves are kept.
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizza/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	id, err := pathID(ctx, "id", "pizza")
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
