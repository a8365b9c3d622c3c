package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
)

// HealthHandler handles health and readiness endpoints
type HealthHandler struct {
	db         *gorm.DB
	redis      *redis.Client
	classifier service.Classifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redis *redis.Client, classifier service.Classifier) *HealthHandler {
	return &HealthHandler{
		db:         db,
		redis:      redis,
		classifier: classifier,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:  "healthy",
		Message: "API is running",
	})
}

// Ready handles GET /ready. It probes the database, the cache and the
// classifier.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	ready := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not configured"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			ready = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			components["model"] = "error: " + err.Error()
			ready = false
		} else {
			components["model"] = "ok"
		}
	} else {
		components["model"] = "not configured"
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}

	c.JSON(status, gin.H{"status": state, "components": components})
}
