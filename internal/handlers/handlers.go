package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tupyy/rrpool/pkg/threadpool"
)

// PoolInspector reports the counters of a running pool.
type PoolInspector interface {
	Stats() threadpool.Stats
}

type Handler struct {
	pool PoolInspector
}

func New(pool PoolInspector) *Handler {
	return &Handler{
		pool: pool,
	}
}

// Register mounts the handler routes on router.
func (h *Handler) Register(router *gin.RouterGroup) {
	router.GET("/health", h.GetHealth)
	router.GET("/pool", h.GetPool)
	router.GET("/pool/workers/:index", h.GetWorker)
}
