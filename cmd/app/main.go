package main

import (
	"log"

	"recipehub-backend/cmd/config"
	migration "recipehub-backend/cmd/database/migrate"
	"recipehub-backend/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on config.yaml and environment")
	}
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("could not migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("could not build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
