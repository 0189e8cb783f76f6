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

package defaults

import "time"

// Loader defaults.
const (
	// FoodDataSource is the catalog source used when none is configured.
	FoodDataSource = "embedded:menu.xml"

	// FoodLoadTimeout bounds reading the catalog source at startup.
	FoodLoadTimeout = 10 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// FoodHandlerTimeout is the timeout for food catalog requests.
	FoodHandlerTimeout = 5 * time.Second

	// FoodCacheTTL is the cache duration advertised on catalog responses.
	// The catalog never changes within a process lifetime.
	FoodCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerRateLimit is the default sustained request rate per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the default token bucket size.
	ServerRateLimitBurst = 200

	// ServerPort is the default listen port.
	ServerPort = 8080
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout bounds a single CLI query including catalog load.
	CLICommandTimeout = 30 * time.Second
)
