package main

import (
	"context"
	"log"
	"time"

	"salesreco/business/catalog"
	psqlRepo "salesreco/internal/repository/postgres"
	"salesreco/internal/repository/redcache"
	"salesreco/pkg/config"
	"salesreco/pkg/database"
	redisdb "salesreco/pkg/database/redis"
	"salesreco/pkg/logger"
)

// catalog-publisher preprocesses the raw sales table into the shared
// ranked catalog and stores it for the recommendation engines. It is
// meant to run on a schedule, not as a long-lived service.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting catalog publisher", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	salesRepo := psqlRepo.NewSalesRepository(db)
	catalogWriter := redcache.NewRecoRepository(redisClient)
	service := catalog.NewCatalogService(salesRepo, catalogWriter, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := service.Publish(ctx)
	if err != nil {
		logger.Fatal("Failed to publish catalog", "error", err)
	}

	logger.Info("Catalog published", "sales", count)
}
