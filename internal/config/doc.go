// Package config defines the configuration structure for rrpool.
//
// Configuration is organized into logical sections (Server, Pool, Admin) and
// uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - Front-end listener settings
//	├── Pool           - Worker pool settings
//	├── Admin          - Admin HTTP server settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────┬───────────┬────────────────────────────────────────────┐
//	│ Field        │ Default   │ Description                                │
//	├──────────────┼───────────┼────────────────────────────────────────────┤
//	│ Host         │ "0.0.0.0" │ Listen address                             │
//	│ Port         │ 8080      │ Listen port                                │
//	│ Strategy     │ "pool"    │ Connection strategy: pool|thread|percore   │
//	│ BufferSize   │ 8096      │ Read buffer cap for a request head         │
//	│ MaxHeaders   │ 16        │ Header fields allowed in a request head    │
//	│ ReadTimeout  │ 10s       │ Time to send a request head (0 = no limit) │
//	└──────────────┴───────────┴────────────────────────────────────────────┘
//
// Strategies:
//   - pool: one accept loop, connections handled by the worker pool
//   - thread: one accept loop, one goroutine per connection
//   - percore: one accept loop per CPU, connections handled inline
//
// # Pool Configuration
//
//	┌──────────┬─────────┬──────────────────────────────────────────┐
//	│ Field    │ Default │ Description                              │
//	├──────────┼─────────┼──────────────────────────────────────────┤
//	│ Workers  │ 0       │ Number of workers (0 means one per CPU)  │
//	└──────────┴─────────┴──────────────────────────────────────────┘
//
// # Admin Configuration
//
//	┌────────────┬─────────┬──────────────────────────────────────────┐
//	│ Field      │ Default │ Description                              │
//	├────────────┼─────────┼──────────────────────────────────────────┤
//	│ Enabled    │ true    │ Start the admin HTTP server              │
//	│ HTTPPort   │ 8000    │ Admin server listen port                 │
//	│ ServerMode │ "dev"   │ Gin mode: "prod" or "dev"                │
//	└────────────┴─────────┴──────────────────────────────────────────┘
//
// # Loading
//
// Load merges, from lowest to highest priority: struct defaults, an optional
// YAML file (--config), RRPOOL_* environment variables and command line
// flags. Nested keys map to variables by upper-casing and replacing "." and
// "-" with "_", e.g. server.buffer-size is RRPOOL_SERVER_BUFFER_SIZE.
// The result is validated before it is returned.
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Admin
//
// # Debug Logging
//
// All fields are tagged with `debugmap:"visible"`:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
