package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bank-service/internal/database"
	"bank-service/internal/handlers"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret-key"
	}

	r := handlers.NewRouter(db, "templates/*.html", secret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
