package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roofscope_backend/internal/adapters/storage"
	"roofscope_backend/internal/ai"
	"roofscope_backend/internal/config"
	"roofscope_backend/internal/documents"
	"roofscope_backend/internal/estimate"
	estimateservice "roofscope_backend/internal/estimate/service"
	apphttp "roofscope_backend/internal/http"
	"roofscope_backend/internal/http/router"
	"roofscope_backend/internal/reports"
	reportservice "roofscope_backend/internal/reports/service"
	"roofscope_backend/platform/db"
	"roofscope_backend/platform/logger"
	"roofscope_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Shared validator instance for dependency injection
	val := validator.New()

	// Pricing source: live feed with Redis cache when configured, otherwise
	// the built-in static table.
	var prices estimateservice.PriceSource = estimateservice.StaticSource{}
	if cfg.IsLivePricingEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		prices = estimateservice.NewLiveSource(cfg.PricingFeedURL, rdb, cfg.PricingCacheTTL, log)
		log.Info("live pricing enabled", "feed", cfg.PricingFeedURL, "ttl", cfg.PricingCacheTTL.String())
	}

	// Object archive for generated PDFs (optional)
	var archive documents.Archiver
	if cfg.IsMinIOEnabled() {
		pdfArchive, err := storage.NewPDFArchive(cfg, cfg.MinioBucketReportPDFs)
		if err != nil {
			log.Error("failed to initialize storage archive", "error", err)
			panic("failed to initialize storage archive: " + err.Error())
		}
		if err := withRetry(ctx, log, "ensure report-pdfs bucket", 5, 2*time.Second, func() error {
			return pdfArchive.EnsureBucket(ctx)
		}); err != nil {
			log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.MinioBucketReportPDFs)
			panic("failed to ensure storage bucket exists: " + err.Error())
		}
		archive = pdfArchive
		log.Info("storage archive initialized", "bucket", cfg.MinioBucketReportPDFs)
	} else {
		log.Warn("MinIO not configured; PDF archiving disabled")
	}

	// Photo analysis client (optional)
	var analyzer reportservice.Analyzer
	if cfg.IsGeminiEnabled() {
		aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("failed to initialize AI client", "error", err)
			panic("failed to initialize AI client: " + err.Error())
		}
		if aiClient != nil {
			analyzer = aiClient
			log.Info("AI analysis enabled", "model", cfg.GeminiModel)
		}
	} else {
		log.Warn("GEMINI_API_KEY not configured; AI analysis disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	docsService := documents.NewService(documents.NewRepository(pool), archive, log)

	estimateModule := estimate.NewModule(prices, val)
	reportsService := reportservice.New(estimateModule.Service(), analyzer, docsService, cfg.AppBaseURL, log)
	reportsModule := reports.NewModule(reportsService, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	engine := router.New(cfg, log, pool, []apphttp.Module{
		estimateModule,
		reportsModule,
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
