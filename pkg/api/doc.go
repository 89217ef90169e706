// Package api provides the HTTP API layer for the path follower.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// configures the server with the assembly routes and serves them until
// shutdown.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/path-follower/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/construct  - Assemble a driving configuration from a JSON, YAML
//     or TOML request body
//   - GET /v1/components  - List registered components, optionally filtered
//     with ?role=
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/construct)
//
//	{"controller": "mpc", "localPlanner": "rrt"}
//
// Empty names fall back to the options file named by FOLLOWER_OPTIONS, and an
// empty collision avoider resolves to the controller's default.
//
// # Environment Variables
//
//	FOLLOWER_OPTIONS          Options file (JSON, YAML or TOML)
//	PORT                      Listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown limit
//	LOG_LEVEL                 Logging verbosity
package api
