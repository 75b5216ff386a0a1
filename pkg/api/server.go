// Package api exposes the HTTP surface: the transport webhook, liveness
// and readiness probes, and the admin replay endpoint.
package api

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/database"
	"github.com/emissary-bot/emissary/pkg/ingest"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// secretHeader authenticates webhook deliveries.
const secretHeader = "X-Transport-Secret-Token"

// Server is the HTTP surface of the service.
type Server struct {
	cfg      *config.Config
	pipeline *ingest.Pipeline
	updates  *services.UpdateService
	queue    *queue.Service
	manager  *queue.Manager
	db       *sql.DB
	rdb      redis.UniversalClient

	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the router and its handlers.
func NewServer(
	cfg *config.Config,
	pipeline *ingest.Pipeline,
	updates *services.UpdateService,
	q *queue.Service,
	manager *queue.Manager,
	db *sql.DB,
	rdb redis.UniversalClient,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		updates:  updates,
		queue:    q,
		manager:  manager,
		db:       db,
		rdb:      rdb,
		engine:   engine,
	}

	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/readyz", s.handleReadyz)
	engine.POST("/:transport/webhook/*secret", s.handleWebhook)
	engine.POST("/internal/replay-update", s.requireAdmin, s.handleReplayUpdate)

	return s
}

// Start serves HTTP on addr in a goroutine.
func (s *Server) Start(addr string) {
	s.http = &http.Server{Addr: addr, Handler: s.engine}
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
		}
	}()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// handleWebhook is the push-mode intake: authenticate, persist, ack.
// The durable insert is the acknowledgment contract; enqueueing is healed
// by the recovery sweep when it fails.
func (s *Server) handleWebhook(c *gin.Context) {
	if !s.webhookAuthenticated(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var update models.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}

	result, err := s.pipeline.Ingest(c.Request.Context(), &update)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Webhook ingest failed", "update_id", update.UpdateID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ingest failed"})
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, gin.H{"duplicate": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// webhookAuthenticated accepts the secret from the header and/or the URL
// segment. No configured secret means open intake (local development).
func (s *Server) webhookAuthenticated(c *gin.Context) bool {
	secret := s.cfg.Transport.WebhookSecret
	if secret == "" {
		return true
	}
	if c.GetHeader(secretHeader) == secret {
		return true
	}
	// Wildcard segment keeps its leading slash.
	return c.Param("secret") == "/"+secret
}

// handleHealthz is the liveness probe.
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReadyz pings Postgres and Redis and reports the queue manager's
// worker health; any failure returns 503.
func (s *Server) handleReadyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db)
	redisErr := s.rdb.Ping(ctx).Err()
	queueHealth := s.manager.Health()

	body := gin.H{
		"database": dbHealth,
		"queue":    queueHealth,
	}
	if redisErr != nil {
		body["redis"] = gin.H{"status": "unhealthy", "error": redisErr.Error()}
	} else {
		body["redis"] = gin.H{"status": "healthy"}
	}

	if dbErr != nil || redisErr != nil || !queueHealth.IsHealthy {
		body["status"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	c.JSON(http.StatusOK, body)
}

// requireAdmin enforces the bearer token on /internal endpoints.
func (s *Server) requireAdmin(c *gin.Context) {
	token := s.cfg.AdminToken
	if token == "" || c.GetHeader("Authorization") != "Bearer "+token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

// handleReplayUpdate re-enqueues a stored update for reprocessing.
func (s *Server) handleReplayUpdate(c *gin.Context) {
	var req struct {
		UpdateID int64 `json:"update_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "update_id required"})
		return
	}

	rec, err := s.updates.Get(c.Request.Context(), req.UpdateID)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "update not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	// Replay jobs get a distinct id so the original job-id dedupe does
	// not swallow them.
	jobID := fmt.Sprintf("replay-update-%d-%d", rec.ID, time.Now().UnixNano())
	if _, _, err := s.queue.Enqueue(c.Request.Context(), config.QueueUpdates, queue.EnqueueOptions{
		JobID:   jobID,
		Payload: map[string]interface{}{"update_id": rec.ID},
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue failed"})
		return
	}

	slog.Info("Update replay enqueued", "update_id", rec.ID, "job_id", jobID)
	c.JSON(http.StatusOK, gin.H{"job_id": jobID})
}
