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

	"salesreco/app/echo-server/metrics"
	"salesreco/app/echo-server/router"
	"salesreco/business/reco"
	"salesreco/domain"
	"salesreco/internal/middleware"
	"salesreco/internal/repository/redcache"
	"salesreco/internal/repository/scoring"
	"salesreco/internal/rest"
	"salesreco/pkg/config"
	redisdb "salesreco/pkg/database/redis"
	"salesreco/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func recoConfig(cfg *config.Config) reco.Config {
	recoCfg := reco.DefaultConfig()
	recoCfg.Expiration = time.Duration(cfg.Reco.ExpirationDays) * 24 * time.Hour
	recoCfg.AlertsAlwaysRefresh = cfg.Reco.AlertsAlwaysRefresh
	recoCfg.NormalisePassThrough = cfg.Reco.NormalisePassThrough
	recoCfg.MalformedFallback = cfg.Reco.MalformedFallback
	if cfg.Reco.SentinelSaleID != "" {
		recoCfg.SentinelID = domain.SaleID(cfg.Reco.SentinelSaleID)
	}
	return recoCfg
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting sales recommendation service", "version", cfg.App.Version)

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init repo
	stateRepo := redcache.NewRecoRepository(redisClient)
	scoringRepo := scoring.NewScoringRepository(scoring.ScoringConfig{
		BaseURL: cfg.Scoring.BaseURL,
		Timeout: time.Duration(cfg.Scoring.TimeoutSeconds) * time.Second,
	})

	// Init engines
	recoCfg := recoConfig(cfg)
	baseEngine := reco.NewEngine(stateRepo, recoCfg)
	alertsEngine := reco.NewAlertsEngine(stateRepo, recoCfg)
	personalisedEngine := reco.NewPersonalisedEngine(stateRepo, scoringRepo, recoCfg)

	// Init handler
	recoHandler := rest.NewRecoHandler(baseEngine, alertsEngine, personalisedEngine)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recoHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

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
