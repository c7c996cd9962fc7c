package main

import (
	"fmt"

	"docvault/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.User{}, &models.Document{}); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}
	return db, nil
}
