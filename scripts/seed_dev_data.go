package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-ingredient-api/internal/config"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/database"
	"github.com/franciscosanchezn/pizza-ingredient-api/internal/models"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Drop the pizza tables before seeding")
	flag.Parse()

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := conf.Database()
	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if *reset {
		// Association table first, it references the other two
		if err := db.Migrator().DropTable(&models.PizzaIngredient{}, &models.Pizza{}, &models.Ingredient{}); err != nil {
			log.Fatal("Failed to drop tables:", err)
		}
		fmt.Println("Dropped pizza, ingredient and association tables")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed:", err)
	}

	var ingredients, pizzas int64
	db.Model(&models.Ingredient{}).Count(&ingredients)
	db.Model(&models.Pizza{}).Count(&pizzas)

	fmt.Printf("✓ Development data ready on %s\n", dbConfig.String())
	fmt.Printf("Ingredients: %d\n", ingredients)
	fmt.Printf("Pizzas: %d\n", pizzas)
	fmt.Println("\nTry it:")
	fmt.Printf("curl http://%s:%d/api/v1/pizza\n", conf.Host, conf.Port)
}
