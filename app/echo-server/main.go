package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myShopRecs/app/echo-server/router"
	"myShopRecs/business/recommend"
	"myShopRecs/business/search"
	"myShopRecs/internal/middleware"
	redisRepo "myShopRecs/internal/repository/redis"
	"myShopRecs/internal/repository/snapshot"
	"myShopRecs/internal/rest"
	"myShopRecs/pkg/config"
	redisdb "myShopRecs/pkg/database/redis"
	"myShopRecs/pkg/logger"
	"myShopRecs/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting catalog recommendation service", "version", cfg.App.Version)

	metrics.Init()

	// The model snapshot is the single source of serving state. A corrupt
	// or mismatched snapshot aborts startup.
	store := snapshot.NewFileStore(cfg.Model.SnapshotPath)
	snap, err := store.Load()
	if err != nil {
		logger.Fatal("Failed to load model snapshot", "path", cfg.Model.SnapshotPath, "error", err)
	}

	engine, err := recommend.NewEngine(snap)
	if err != nil {
		logger.Fatal("Failed to build recommendation engine", "error", err)
	}

	logger.Info("Model snapshot loaded", "catalog_size", engine.CatalogSize(), "dim", snap.Dim)

	// Optional Redis page cache
	var pageCache recommend.PageCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.CloseRedisClient(client)

		pageCache = redisRepo.NewPageCacheRepository(client, cfg.Redis.CacheTTL)
		logger.Info("Redis page cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	// Init service
	recoService := recommend.NewService(engine, pageCache)
	searchService := search.NewService(engine, recoService)

	// Init handler
	recoHandler := rest.NewRecommendHandler(recoService, cfg.Model.DefaultK, cfg.Model.DefaultAlpha)
	searchHandler := rest.NewSearchHandler(searchService, cfg.Model.DefaultK, cfg.Model.DefaultAlpha)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recoHandler)
	router.SetupSearchRoutes(api, searchHandler)
	router.SetupOpsRoutes(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
