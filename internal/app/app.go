// Package app wires configuration, storage and services into the handlers
// used by the HTTP server and the matchctl CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-match-api/internal/ai"
	"github.com/noah-isme/scholarship-match-api/internal/ai/gemini"
	"github.com/noah-isme/scholarship-match-api/internal/repository"
	"github.com/noah-isme/scholarship-match-api/internal/service"
	"github.com/noah-isme/scholarship-match-api/pkg/cache"
	"github.com/noah-isme/scholarship-match-api/pkg/config"
	"github.com/noah-isme/scholarship-match-api/pkg/database"
)

// Container holds long-lived dependencies.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client

	Metrics      *service.MetricsService
	Explanations *service.ExplanationService
	Matches      *service.MatchService
	Students     *service.StudentService
	Scholarships *service.ScholarshipService
	Exports      *service.ExportService
}

// New connects to Postgres (and Redis when enabled) and builds the service graph.
// A Redis failure downgrades to running without the explanation cache.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, explanation cache disabled", zap.Error(err))
		redisClient = nil
	}

	provider, err := newExplainer(ctx, cfg.Explanation, logger)
	if err != nil {
		_ = db.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, err
	}

	metrics := service.NewMetricsService()

	var cacheSvc *service.ExplanationCache
	if redisClient != nil {
		cacheSvc = service.NewExplanationCache(repository.NewCacheRepository(redisClient), metrics, cfg.Explanation.CacheTTL, logger)
	}

	students := repository.NewStudentRepository(db, metrics)
	scholarships := repository.NewScholarshipRepository(db, metrics)

	explanations := service.NewExplanationService(provider, cacheSvc, metrics, logger)
	matches := service.NewMatchService(students, scholarships, explanations, metrics, logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		Redis:        redisClient,
		Metrics:      metrics,
		Explanations: explanations,
		Matches:      matches,
		Students:     service.NewStudentService(students, nil, logger),
		Scholarships: service.NewScholarshipService(scholarships, logger),
		Exports:      service.NewExportService(matches, nil, nil, logger),
	}, nil
}

// newExplainer returns nil when no API key is configured so no outbound calls are ever made.
func newExplainer(ctx context.Context, cfg config.ExplanationConfig, logger *zap.Logger) (ai.Explainer, error) {
	if !cfg.Configured() {
		logger.Info("explanation provider not configured")
		return nil, nil
	}
	client, err := gemini.New(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	logger.Info("explanation provider configured", zap.String("model", client.Model()))
	return client, nil
}

// Close releases database and cache connections.
func (c *Container) Close() error {
	var firstErr error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
