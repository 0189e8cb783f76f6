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

package api

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/NVIDIA/food-service/pkg/defaults"
	"github.com/NVIDIA/food-service/pkg/food"
	"github.com/NVIDIA/food-service/pkg/logging"
	"github.com/NVIDIA/food-service/pkg/server"
)

const (
	name           = "foodd"
	versionDefault = "dev"

	// EnvDataFilePath selects the catalog source, see food.Load.
	EnvDataFilePath = "FOOD_DATA_FILE_PATH"

	envFile = ".env"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/food-service/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve seeds the environment from .env, configures logging and serves the
// catalog named by FOOD_DATA_FILE_PATH until shutdown.
func Serve() error {
	envErr := LoadEnv()

	logging.SetDefaultStructuredLogger(name, version)
	if envErr != nil {
		slog.Warn("failed to load env file", "file", envFile, "error", envErr)
	}

	return Run(context.Background(), DataSource())
}

// Run loads the catalog from source, starts the API server and blocks until
// ctx is canceled or the process is signaled. A catalog that cannot be read
// is served as empty; only server failures are returned.
func Run(ctx context.Context, source string) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"source", source,
	)

	s := newServer(ctx, source)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// LoadEnv seeds the process environment from files, .env by default.
// Variables already set are kept and a missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{envFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// DataSource returns the catalog source from FOOD_DATA_FILE_PATH, or the
// embedded sample menu when unset.
func DataSource() string {
	if v := strings.TrimSpace(os.Getenv(EnvDataFilePath)); v != "" {
		return v
	}
	return defaults.FoodDataSource
}

// newServer loads the catalog from source and wires the food routes.
func newServer(ctx context.Context, source string) *server.Server {
	loadCtx, cancel := context.WithTimeout(ctx, defaults.FoodLoadTimeout)
	defer cancel()

	svc := food.NewService(food.Load(loadCtx, source))

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(svc.Routes()),
	)
}
