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

// Package server hosts HTTP handlers behind a shared middleware chain with
// health, readiness and Prometheus endpoints.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("foodd"),
//	    server.WithVersion(version),
//	    server.WithHandler(svc.Routes()),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Handlers are keyed by http.ServeMux pattern, so path parameters such as
// /api/foods/{id} are read with r.PathValue. A root handler listing the
// registered routes is added unless one is provided; it also answers 404
// for paths no other pattern matches.
//
// # Middleware
//
// Every configured handler runs inside, from outermost:
//
//   - metrics: food_http_* counters and histograms labeled by route pattern
//   - version: Accept header negotiation (application/vnd.nvidia.food.v1+json)
//   - request ID: X-Request-Id, generated when missing or not a UUID
//   - panic recovery: 500 INTERNAL instead of a dropped connection
//   - rate limit: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - logging: request start and completion at debug level
//
// The whole mux is wrapped in CORS handling (github.com/rs/cors).
//
// # System Endpoints
//
// GET /health always returns 200 {"status": "healthy"}.
//
// GET /ready returns 200 once Start is serving and 503 during startup and
// shutdown.
//
// GET /metrics serves Prometheus metrics.
//
// # Errors
//
// Failures are written as ErrorResponse:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Food item not found with id: 99",
//	  "status": 404,
//	  "error": "Not Found",
//	  "path": "/api/foods/99",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP status codes.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT,
// RATE_LIMIT_BURST, CORS_ALLOWED_ORIGINS, TLS_CERT_FILE and TLS_KEY_FILE,
// falling back to pkg/defaults. TLS is enabled when both files are set.
//
// Run installs SIGINT and SIGTERM handling and shuts down within
// the configured shutdown timeout.
package server
