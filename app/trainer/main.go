package main

import (
	"context"
	"flag"
	"log"

	"myShopRecs/business/recommend"
	"myShopRecs/business/vectorizer"
	"myShopRecs/domain"
	"myShopRecs/internal/repository/postgres"
	"myShopRecs/internal/repository/snapshot"
	"myShopRecs/pkg/config"
	"myShopRecs/pkg/database"
	"myShopRecs/pkg/logger"
	"myShopRecs/seeds"
)

// The trainer is the offline "fit" step: it reads the catalog and the
// interaction log from Postgres, fits the vectorizer and popularity scores,
// and writes the snapshot the server loads at startup.
func main() {
	seedFlag := flag.Bool("seed", false, "truncate and reseed sample data before training")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	ctx := context.Background()

	if err := db.WithContext(ctx).AutoMigrate(&domain.Item{}, &domain.Interaction{}); err != nil {
		logger.Fatal("Failed to migrate tables", "error", err)
	}

	if *seedFlag {
		if err := seeds.Setup(ctx, db); err != nil {
			logger.Fatal("Failed to seed sample data", "error", err)
		}
	}

	itemRepo := postgres.NewItemRepository(db)
	interactionRepo := postgres.NewInteractionRepository(db)

	items, err := itemRepo.FindAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}
	if len(items) == 0 {
		logger.Fatal("Catalog is empty; run with -seed or load catalog data first")
	}

	interactions, err := interactionRepo.FindAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load interactions", "error", err)
	}

	logger.Info("Training recommender", "items", len(items), "interactions", len(interactions))

	snap, err := recommend.Fit(items, interactions, vectorizer.New())
	if err != nil {
		logger.Fatal("Failed to fit recommender", "error", err)
	}

	store := snapshot.NewFileStore(cfg.Model.SnapshotPath)
	if err := store.Save(snap); err != nil {
		logger.Fatal("Failed to save snapshot", "error", err)
	}

	logger.Info("Model training complete", "path", cfg.Model.SnapshotPath, "dim", snap.Dim)
}
