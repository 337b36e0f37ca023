// Package server provides the admin HTTP server of rrpool.
//
// The admin server is separate from the front-end listener: it runs the Gin
// web framework on its own port and only reads the pool state.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                      Admin HTTP Server :8000                  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap.Ginzap, "http" logger)                  │  │
//	│  │  Recovery (ginzap.RecoveryWithZap)                      │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics        Prometheus exposition of the gatherer        │
//	│  /api/v1/...     Handlers (registered via callback)           │
//	│  anything else   404 {"error": "not found"}                   │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// ServerMode "dev" runs Gin in debug mode, "prod" in release mode. Any other
// value is rejected by NewServer.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg.Admin, registry, func(router *gin.RouterGroup) {
//	    handlers.New(pool).Register(router)
//	})
//
//	go srv.Start(ctx) // blocks until Stop
//	...
//	srv.Stop(ctx)     // graceful shutdown
package server
