package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the reported application version.
const Version = "1.0.0"

var startedAt = time.Now()

// GetStatus reports service and store health.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	database := "unavailable"
	if h.store != nil {
		if err := h.store.DB().Ping(); err == nil {
			database = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"version":  Version,
		"uptime":   time.Since(startedAt).Round(time.Second).String(),
		"database": database,
	})
}
