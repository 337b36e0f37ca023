// Package handlers implements the admin HTTP API.
//
// Handlers read a snapshot of the worker pool and render it as JSON. They
// never submit work and never block on the pool.
//
//	┌────────┬──────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint                 │ Description                      │
//	├────────┼──────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /api/v1/health           │ Liveness of the admin server     │
//	│ GET    │ /api/v1/pool             │ Pool counters and worker states  │
//	│ GET    │ /api/v1/pool/workers/:i  │ Counters of worker i             │
//	└────────┴──────────────────────────┴──────────────────────────────────┘
//
// Error responses carry a JSON body of the form {"error": "..."}:
//
//	400  the worker index is not an integer
//	404  the worker index is out of range
package handlers
