package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/api"
	"github.com/andreisalomia/TravelSafe/internal/config"
	"github.com/andreisalomia/TravelSafe/internal/redis"
	"github.com/andreisalomia/TravelSafe/internal/scoring"
	"github.com/andreisalomia/TravelSafe/internal/service"
	"github.com/andreisalomia/TravelSafe/internal/storage/postgres"
	"github.com/andreisalomia/TravelSafe/internal/workers"
	"github.com/andreisalomia/TravelSafe/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Sweeper    *workers.ExpirySweeper
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	hazardCache := redis.NewHazardCache(redisClient)

	policy, err := scoring.PolicyFromName(cfg.Scoring.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scoring policy: %w", err)
	}
	scorer := scoring.NewScorer(policy)

	hazardSvc := service.NewHazardService(storage.Hazards(), hazardCache, logger, cfg.Scoring.HazardTTL)
	routingSvc := service.NewRoutingService(storage.Hazards(), storage.Routes(), hazardCache, scorer, logger, cfg.Scoring.CacheTTL)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(hazardSvc, routingSvc, statsSvc)

	sweeper := workers.NewExpirySweeper(storage.Hazards(), hazardCache, logger, cfg.Scoring.SweepInterval)

	httpServer := api.NewServer(ctx, cfg, logger, srv)
	logger.Info("Initialized server", slog.String("scoring_policy", policy.Name()))

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Sweeper:    sweeper,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
