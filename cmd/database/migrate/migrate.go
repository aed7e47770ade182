package migration

import (
	entities2 "GameVault-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.SavedGame{}); err != nil {
		log.Fatalf("Error migrating saved game database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecommendationLog{}); err != nil {
		log.Fatalf("Error migrating recommendation log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.SearchHistory{}); err != nil {
		log.Fatalf("Error migrating search history database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
