package migration

import (
	"fmt"
	"log"

	"recipehub-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FamilyRecipe{}); err != nil {
		log.Fatalf("Error migrating family recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserRecipe{}); err != nil {
		log.Fatalf("Error migrating user recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Favorite{}); err != nil {
		log.Fatalf("Error migrating favorite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserHistory{}); err != nil {
		log.Fatalf("Error migrating user history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeProgress{}); err != nil {
		log.Fatalf("Error migrating recipe progress database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LastSearch{}); err != nil {
		log.Fatalf("Error migrating last search database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
