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

// Package api wires the food catalog into the HTTP server for the foodd
// binary.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/food-service/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// Serve seeds the environment from .env when present, configures structured
// logging, loads the catalog once from FOOD_DATA_FILE_PATH (default
// embedded:menu.xml) and hands the food routes to pkg/server. A catalog that
// cannot be loaded is served as empty.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /api/foods             - every item in document order
//   - GET /api/foods/{id}        - first item with the id, 404 when absent
//   - GET /api/foods/search?name - case-insensitive substring match on name
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl "http://localhost:8080/api/foods/search?name=paneer"
//
// # Configuration
//
//   - FOOD_DATA_FILE_PATH: catalog source, a file path or embedded:<name>
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// See pkg/server for rate limiting, CORS and TLS settings.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/food-service/pkg/api.version=1.0.0'"
package api
