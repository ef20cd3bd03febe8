package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health check
const ServiceName = "pizza-ingredient-api"

// Options tunes the HTTP behaviour shared by every route
type Options struct {
	CacheMaxAge    time.Duration
	RateLimit      float64
	RateLimitBurst int
	Logger         *log.Logger
}

// NewRouter builds the engine with the middleware chain and every route registered.
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.Recovery(),
	)

	RegisterRoutes(router, db, opts)
	return router
}

// RegisterRoutes defines the routes for the Gin router
func RegisterRoutes(router *gin.Engine, db *gorm.DB, opts Options) {
	ingredientService := services.NewIngredientService(db)
	pizzaService := services.NewPizzaService(db)
	associationService := services.NewPizzaIngredientService(db)

	ingredientController := controllers.NewIngredientController(ingredientService)
	pizzaController := controllers.NewPizzaController(pizzaService)
	pizzaIngredientController := controllers.NewPizzaIngredientController(pizzaService, ingredientService, associationService)

	// Operational endpoints
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cache := middleware.SharedCache(opts.CacheMaxAge)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(opts.RateLimit, opts.RateLimitBurst))
	{
		ingredients := v1.Group("/ingredient")
		{
			ingredients.GET("", cache, ingredientController.GetAllIngredients)
			ingredients.GET("/:id", cache, ingredientController.GetIngredientByID)
			ingredients.POST("", ingredientController.CreateIngredient)
			ingredients.PUT("/:id", ingredientController.UpdateIngredient)
			ingredients.DELETE("/:id", ingredientController.DeleteIngredient)
		}

		pizzas := v1.Group("/pizza")
		{
			pizzas.GET("", cache, pizzaController.GetAllPizzas)
			pizzas.GET("/:id", cache, pizzaController.GetPizzaByID)
			pizzas.POST("", pizzaController.CreatePizza)
			pizzas.PUT("/:id", pizzaController.UpdatePizza)
			pizzas.DELETE("/:id", pizzaController.DeletePizza)

			pizzas.POST("/:id/ingredient", pizzaIngredientController.AttachIngredient)
			pizzas.PUT("/:id/ingredient/:ingredient_id", pizzaIngredientController.UpdatePriority)
			pizzas.DELETE("/:id/ingredient/:ingredient_id", pizzaIngredientController.DetachIngredient)
		}
	}
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}
