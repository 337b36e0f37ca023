package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tupyy/rrpool/internal/config"
)

const (
	apiPrefix   = "/api/v1"
	metricsPath = "/metrics"
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the admin server. registerHandlerFn receives the /api/v1
// group. When gatherer is not nil its metrics are served on /metrics.
func NewServer(cfg config.Admin, gatherer prometheus.Gatherer, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	switch cfg.ServerMode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	case "dev":
		gin.SetMode(gin.DebugMode)
	default:
		return nil, fmt.Errorf("unknown server mode %q", cfg.ServerMode)
	}

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(zap.L().Named("http"), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.L().Named("http"), true),
	)

	if gatherer != nil {
		engine.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	router := engine.Group(apiPrefix)
	registerHandlerFn(router)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              net.JoinHostPort("", strconv.Itoa(cfg.HTTPPort)),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Stop is called. It returns nil after a graceful stop.
func (s *Server) Start(ctx context.Context) error {
	zap.S().Named("admin").Infow("starting admin server", "addr", s.srv.Addr)

	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("admin server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("admin").Info("stopping admin server")
	return s.srv.Shutdown(ctx)
}
