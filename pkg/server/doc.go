// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server for the path follower API.
//
// # Architecture
//
// The server is stateless apart from its readiness flag and wraps every
// application handler in the same middleware chain:
//
//   - Prometheus request metrics
//   - API version negotiation via the Accept header
//   - Request ID propagation (X-Request-Id)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request body size limit (Config.MaxBodyBytes)
//   - Debug request logging
//
// # Usage
//
//	s := server.New(
//	    server.WithName("followerd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/construct": h.HandleConstruct,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
// These bypass rate limiting:
//
//	GET /health   - liveness probe, always 200
//	GET /ready    - readiness probe, 503 until the listener is up, during shutdown,
//	                and while the WithReadinessCheck hook fails
//	GET /metrics  - Prometheus metrics
//
// GET / lists the registered routes.
//
// # Errors
//
// Errors are returned as ErrorResponse JSON. WriteErrorFromErr maps the code
// of a pkg/errors StructuredError to the HTTP status:
//
//	INVALID_REQUEST, MISSING_FIELD      400
//	NOT_FOUND, UNKNOWN_COMPONENT        404
//	METHOD_NOT_ALLOWED                  405
//	INIT_FAILED                         422
//	RATE_LIMIT_EXCEEDED                 429
//	SERVICE_UNAVAILABLE                 503
//	ASSEMBLY_INVARIANT, INTERNAL        500
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment.
// Timeouts and limits default to the values in pkg/defaults.
package server
