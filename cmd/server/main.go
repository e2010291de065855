package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/neri/neri-api/internal/config"
	"github.com/neri/neri-api/internal/database"
	"github.com/neri/neri-api/internal/routes"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("database connect: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	app := fiber.New()
	routes.Setup(app, cfg.QuoteURL)

	log.Fatal(app.Listen(":" + cfg.Port))
}
