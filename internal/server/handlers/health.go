package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"planet-builder/internal/shared/database"
	"planet-builder/internal/shared/redis"
	"planet-builder/internal/shared/response"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

type HealthHandler struct {
	db    *database.DB
	cache *redis.Client
}

// NewHealthHandler reports on db and cache. A nil cache is reported as disabled.
func NewHealthHandler(db *database.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	dbStatus := "disconnected"
	if h.db.Healthy(ctx) {
		dbStatus = "connected"
	} else {
		logger.Warn("Database ping failed")
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "connected"
		if err := h.cache.Ping(ctx).Err(); err != nil {
			cacheStatus = "disconnected"
			logger.Warn("Redis ping failed", "error", err)
		}
	}

	status := "healthy"
	if dbStatus != "connected" {
		status = "degraded"
	}

	response.Success(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  dbStatus,
		Cache:     cacheStatus,
	})
}
