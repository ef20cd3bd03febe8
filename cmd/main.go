package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-ingredient-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/config"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/database"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Ingredient API
// @version 1.0
// @description Pizzas, ingredients and the prioritised ingredients each pizza holds
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Costs and prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	configuration := loadConfig()
	applyLogLevel(configuration.LogLevel)

	// Initialize database connection
	db := setupDatabase(configuration)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(db, routes.Options{
		CacheMaxAge:    time.Duration(configuration.CacheMaxAge) * time.Second,
		RateLimit:      configuration.RateLimit,
		RateLimitBurst: configuration.RateLimitBurst,
		Logger:         log.StandardLogger(),
	})

	// Start the server
	if err := serve(router, configuration); err != nil {
		log.WithError(err).Fatal("Server stopped with an error")
	}
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
	database.SetLogLevel(log.GetLevel())
}

// applyLogLevel lets LOG_LEVEL override the environment default when it parses
func applyLogLevel(raw string) {
	if raw == "" {
		return
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		log.WithError(err).Warnf("Ignoring invalid LOG_LEVEL %q", raw)
		return
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the store, migrates the schema and seeds it when asked to
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		checkPanicErr(database.Seed(db))
	}
	return db
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains it within the shutdown timeout
func serve(router *gin.Engine, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", conf.Host, conf.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
