// Package main is the entry point for the Parky API server.
package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/roguepikachu/parky/internal/config"
	"github.com/roguepikachu/parky/internal/data"
	"github.com/roguepikachu/parky/internal/http/handler"
	"github.com/roguepikachu/parky/internal/http/router"
	"github.com/roguepikachu/parky/internal/repository"
	"github.com/roguepikachu/parky/internal/repository/cached"
	"github.com/roguepikachu/parky/internal/repository/postgres"
	"github.com/roguepikachu/parky/internal/service"
	"github.com/roguepikachu/parky/pkg/logger"
)

func main() {
	logger.InitLogging()
	config.InitConf()
	ctx := context.Background()

	pool, err := data.NewPostgresPool(ctx)
	if err != nil {
		logger.Fatal(ctx, "connect postgres: %v", err)
	}
	defer pool.Close()

	parkRepo := postgres.NewParkRepository(pool)
	if err := parkRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal(ctx, "park schema: %v", err)
	}
	pgTrailRepo := postgres.NewTrailRepository(pool)
	if err := pgTrailRepo.EnsureSchema(ctx); err != nil {
		logger.Fatal(ctx, "trail schema: %v", err)
	}

	var trailRepo repository.TrailRepository = pgTrailRepo
	var redisClient *redis.Client
	if config.Conf.CacheEnabled {
		redisClient = data.NewRedisClient()
		ttl := time.Duration(config.Conf.CacheTTLSeconds) * time.Second
		trailRepo = cached.NewTrailRepository(pgTrailRepo, redisClient, ttl)
		logger.Info(ctx, "trail cache enabled, ttl=%s", ttl)
	}

	trailSvc := service.NewTrailService(trailRepo, parkRepo)
	parkSvc := service.NewParkService(parkRepo)

	r := router.New(router.Options{
		Trails:    handler.NewTrailHandler(trailSvc),
		Parks:     handler.NewParkHandler(parkSvc),
		Health:    handler.NewHealthHandler(pool, redisClient),
		JWTSecret: config.Conf.JWTSecret,
		AdminRole: config.Conf.AdminRole,
	})

	port := config.Conf.ParkyPort
	if port == "" {
		port = "8080"
	}
	logger.Info(ctx, "starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatal(ctx, "server exited: %v", err)
	}
}
