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

package server

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/food-service/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort               = "PORT"
	EnvShutdownTimeout    = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit          = "RATE_LIMIT"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvTLSCertFile        = "TLS_CERT_FILE"
	EnvTLSKeyFile         = "TLS_KEY_FILE"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers keyed by ServeMux pattern. Each one is wrapped by the middleware chain.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Origins allowed by CORS; "*" allows any origin.
	CORSAllowedOrigins []string

	// TLS is enabled when both files are set.
	TLSCertFile string
	TLSKeyFile  string

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults overridden by the environment.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// TLSEnabled reports whether the server will terminate TLS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Validate checks for settings that cannot work together.
func (c *Config) Validate() error {
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("both %s and %s must be set to enable TLS", EnvTLSCertFile, EnvTLSKeyFile)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

func parseConfig() *Config {
	cfg := &Config{
		Name:               "server",
		Version:            "undefined",
		Handlers:           map[string]http.HandlerFunc{},
		Address:            "",
		Port:               defaults.ServerPort,
		RateLimit:          defaults.ServerRateLimit,
		RateLimitBurst:     defaults.ServerRateLimitBurst,
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        defaults.ServerReadTimeout,
		ReadHeaderTimeout:  defaults.ServerReadHeaderTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv(EnvPort); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the orchestrator's grace period
	if shutdownStr := os.Getenv(EnvShutdownTimeout); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if limitStr := os.Getenv(EnvRateLimit); limitStr != "" {
		var limit float64
		if _, err := fmt.Sscanf(limitStr, "%g", &limit); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		}
	}

	if burstStr := os.Getenv(EnvRateLimitBurst); burstStr != "" {
		var burst int
		if _, err := fmt.Sscanf(burstStr, "%d", &burst); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	if origins := splitList(os.Getenv(EnvCORSAllowedOrigins)); len(origins) > 0 {
		cfg.CORSAllowedOrigins = origins
	}

	cfg.TLSCertFile = strings.TrimSpace(os.Getenv(EnvTLSCertFile))
	cfg.TLSKeyFile = strings.TrimSpace(os.Getenv(EnvTLSKeyFile))

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
