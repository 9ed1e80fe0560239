package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ytkit/ytmeta/internal/api"
	"github.com/ytkit/ytmeta/internal/config"
	"github.com/ytkit/ytmeta/internal/yt"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize YouTube client
	client, err := yt.New(context.Background(), cfg.APIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	server := api.NewServer(client)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
