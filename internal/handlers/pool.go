package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tupyy/rrpool/internal/models"
)

// GetHealth answers as long as the admin server is up
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPool returns a snapshot of the pool counters
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewPoolStatus(h.pool.Stats()))
}

// GetWorker returns the counters of a single worker
// (GET /pool/workers/:index)
func (h *Handler) GetWorker(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker index must be an integer"})
		return
	}

	status := models.NewPoolStatus(h.pool.Stats())
	if index < 0 || index >= len(status.Workers) {
		zap.S().Named("pool_handler").Debugw("worker not found", "index", index, "size", status.Size)
		c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
		return
	}

	c.JSON(http.StatusOK, status.Workers[index])
}
