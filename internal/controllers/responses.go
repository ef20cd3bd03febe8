package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PizzaResponse is a pizza as clients see it.
type PizzaResponse struct {
	ID              uint                     `json:"id" example:"1"`
	Name            string                   `json:"name" example:"Fun Pizza"`
	Price           decimal.Decimal          `json:"price" swaggertype:"number" example:"7.5"`
	CalculatedPrice decimal.Decimal          `json:"calculated_price" swaggertype:"number" example:"6.75"`
	Ingredients     []models.PizzaIngredient `json:"ingredients"`
}

// NewPizzaResponse builds the response body for pizza, with its calculated price alongside.
func NewPizzaResponse(pizza models.Pizza) PizzaResponse {
	ingredients := pizza.Ingredients
	if ingredients == nil {
		ingredients = []models.PizzaIngredient{}
	}
	return PizzaResponse{
		ID:              pizza.ID,
		Name:            pizza.Name,
		Price:           pizza.Price,
		CalculatedPrice: pizza.CalculatePrice(),
		Ingredients:     ingredients,
	}
}

// respondWithError maps err onto its status code and writes the error body.
// Unexpected failures are logged with their cause and answered with the generic message.
func respondWithError(ctx *gin.Context, err error) {
	logger := middleware.Logger(ctx).WithError(err)

	var domainErr *models.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = models.WrapUnexpected(err)
	}

	switch domainErr.Kind {
	case models.KindValidation:
		logger.Warn("malformed request")
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, domainErr.Message))
	case models.KindConstraint:
		logger.Warn("request failed validation")
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, domainErr.Message))
	case models.KindBusinessRule:
		logger.Warn("request refused by business rule")
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBusinessRule, domainErr.Message))
	case models.KindNotFound:
		// The missing entity is only named in the log.
		logger.Debug("entity not found")
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, http.StatusText(http.StatusNotFound)))
	default:
		logger.Error("request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, models.GenericErrorMessage))
	}
}

// bindJSON decodes the request body into req and reports a malformed payload as a validation error.
func bindJSON(ctx *gin.Context, req any) error {
	if err := ctx.ShouldBindJSON(req); err != nil {
		return models.NewValidationError(services.MsgMalformedPayload, err)
	}
	return nil
}

// pathID reads a numeric path parameter. Anything that is not a positive id cannot
// name an entity, so it is reported as not found.
func pathID(ctx *gin.Context, param, entity string) (uint, error) {
	raw := ctx.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &models.DomainError{
			Kind:    models.KindNotFound,
			Message: fmt.Sprintf("%s %s not found", entity, raw),
			Cause:   err,
		}
	}
	return uint(id), nil
}
