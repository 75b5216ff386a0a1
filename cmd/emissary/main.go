// Emissary chat-bot runtime — ingests platform updates, runs serialized
// agent turns with approval gating, and manages the durable job queues.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emissary-bot/emissary/pkg/agent"
	"github.com/emissary-bot/emissary/pkg/api"
	"github.com/emissary-bot/emissary/pkg/approval"
	"github.com/emissary-bot/emissary/pkg/audit"
	"github.com/emissary-bot/emissary/pkg/chatlock"
	"github.com/emissary-bot/emissary/pkg/cleanup"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/database"
	"github.com/emissary-bot/emissary/pkg/ingest"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/ratelimit"
	"github.com/emissary-bot/emissary/pkg/router"
	"github.com/emissary-bot/emissary/pkg/services"
	"github.com/emissary-bot/emissary/pkg/tools"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting emissary", "http_port", httpPort, "pod_id", podID)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	queueCfg := config.DefaultQueueConfig()

	// 2. Database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	// 4. One-time startup orphan requeue
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the stale sweep covers the same ground.
	}

	// 5. Services
	updateService := services.NewUpdateService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	preferenceService := services.NewPreferenceService(dbClient.Client)
	auditService := audit.NewService(dbClient.Client)
	queueService := queue.NewService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Model client (the backend may still be starting; retry with
	// linear backoff before giving up)
	llmClient, err := agent.NewGRPCLLMClientWithRetry(ctx, cfg.Models.ServiceAddr)
	if err != nil {
		slog.Error("Failed to initialize model client", "addr", cfg.Models.ServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing model client", "error", err)
		}
	}()
	slog.Info("Model client initialized", "addr", cfg.Models.ServiceAddr, "primary", cfg.Models.Primary)

	// 7. Transport binding. The concrete platform client is provided by
	// the build; without one the transport surface is inert, which is
	// still useful for queue-only replicas.
	transportClient := newTransportClient(cfg)

	// 8. Core components
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimit)
	locker := chatlock.NewLocker(rdb)

	// Domain tool catalogs are registered by the hosting build; the core
	// only consumes the interface.
	toolRegistry := tools.NewRegistry()

	engine := approval.NewEngine(dbClient.Client, rdb, queueService, auditService, transportClient, cfg.Features)
	executor := agent.NewExecutor(
		sessionService, messageService, locker, engine, llmClient,
		transportClient, toolRegistry, auditService, cfg.Models, cfg.Features,
	)
	updateRouter := router.NewRouter(
		updateService, sessionService, preferenceService, limiter,
		queueService, engine, transportClient, agent.NewNamer(llmClient),
		cfg.Models, cfg.Features,
	)
	pipeline := ingest.NewPipeline(updateService, queueService)

	// 9. Queue manager with all handlers
	handlers := map[string]queue.Handler{
		config.QueueUpdates:            updateRouter.UpdateHandler(),
		config.QueueAgentTurns:         executor.Handler(),
		config.QueueApprovalTimeouts:   engine.ExpiryHandler(),
		config.QueueApprovalCountdowns: engine.CountdownHandler(),
		config.QueueRetryDeadLetter:    queueService.ReplayDeadLetterHandler(),
	}
	manager := queue.NewManager(podID, dbClient.Client, queueCfg, handlers)
	if err := manager.Start(ctx); err != nil {
		slog.Error("Failed to start queue manager", "error", err)
		os.Exit(1)
	}

	// 10. Background loops: recovery sweep, retention cleanup, optional
	// long-poll intake
	go pipeline.RunRecoverySweep(ctx)
	go cleanup.NewService(dbClient.Client).Run(ctx)

	if cfg.Transport.Mode == config.RunModePolling {
		if source, ok := transportClient.(ingest.UpdateSource); ok {
			go pipeline.RunLongPoll(ctx, source)
		} else {
			slog.Warn("RUN_MODE=polling but transport binding has no poll support; intake is webhook-only")
		}
	}

	// 11. HTTP server
	httpServer := api.NewServer(cfg, pipeline, updateService, queueService, manager, dbClient.DB(), rdb)
	httpServer.Start(":" + httpPort)

	slog.Info("Emissary started successfully", "pod_id", podID, "run_mode", cfg.Transport.Mode)

	// 12. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 13. Graceful shutdown: stop intake first, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	stop()

	done := make(chan struct{})
	go func() {
		manager.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Queue manager stopped gracefully")
	case <-time.After(queueCfg.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded — running jobs will be orphan-recovered")
	}

	slog.Info("Shutdown complete")
}
