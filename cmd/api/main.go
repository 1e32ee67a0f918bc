package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/cache"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/service-marketplace/internal/db"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/logger"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	"github.com/BruksfildServices01/service-marketplace/internal/routes"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	sugar := lg.Sugar()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		sugar.Fatalf("main: %v", err)
	}

	ctx := context.Background()
	if err := ucCatalog.NewSeed(repository.NewCatalogGormRepository(db)).Execute(ctx); err != nil {
		sugar.Fatalf("main: seed catalog: %v", err)
	}

	var catalogCache ucCatalog.Cache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			sugar.Warnf("main: catalog cache disabled: %v", err)
		} else {
			defer client.Close()
			catalogCache = cache.NewRedis(client, cfg.CatalogCacheTTL)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(lg),
		middleware.Recovery(lg),
		middleware.CORSMiddleware(cfg.AllowedOrigins()),
		middleware.RateLimit(cfg.RateLimitPerMin),
	)

	routes.RegisterRoutes(r, db, cfg, catalogCache)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infof("Server running on %s", cfg.Addr())
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorf("main: forced shutdown: %v", err)
	}

	sugar.Info("main: server stopped gracefully")
}
