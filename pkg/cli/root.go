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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/food-service/pkg/api"
	"github.com/NVIDIA/food-service/pkg/defaults"
	"github.com/NVIDIA/food-service/pkg/logging"
	"github.com/NVIDIA/food-service/pkg/serializer"
)

const (
	name           = "food"
	versionDefault = "dev"

	// defaultLogLevel keeps command output free of load notices unless asked.
	defaultLogLevel = "warn"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the food CLI with the process arguments and exits non-zero
// on failure. This is called by main.main().
func Execute() {
	if err := api.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Query the food menu catalog",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Read-only access to a food menu catalog loaded from an XML document.

The catalog source is a file path or embedded:<name> for the menus built
into the binary. A source that cannot be read yields an empty catalog.`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   defaults.FoodDataSource,
				Usage:   "Catalog source, a file path or embedded:<name>",
				Sources: cli.EnvVars(api.EnvDataFilePath),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			listCmd(),
			getCmd(),
			searchCmd(),
			serveCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --debug applies to
// every subcommand.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := os.Getenv(logging.EnvLogLevel)
	if level == "" {
		level = defaultLogLevel
	}
	if cmd.Bool("debug") {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	return ctx, nil
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat returns the --format value, rejecting unknown formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}
