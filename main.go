package main

import (
	"log"
	"net/http"

	"smartbank-go/config"
	"smartbank-go/database"
	"smartbank-go/handlers"
	"smartbank-go/store"
	"smartbank-go/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	config.ValidateConfig(cfg)

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	st := store.New(db)
	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	h := handlers.NewHandlers(st, tokens, cfg)

	r := handlers.NewRouter(h, tokens, st)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
