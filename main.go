package main

import (
	"log"

	"scripvault/cache"
	"scripvault/config"
	"scripvault/database"
	"scripvault/handlers"
	"scripvault/repository"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		log.Fatal("Failed to seed catalog: ", err)
	}

	rdb, err := database.NewRedis(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer rdb.Close()

	repos := repository.New(db)
	catalog := cache.NewCatalog(rdb)

	router := handlers.NewRouter(repos, catalog, cfg.JWTSecret)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
