package main

import (
	"log"

	"github.com/joho/godotenv"

	"bank-service/internal/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	log.Println("Migrations completed successfully!")
}
