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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/food-service/pkg/defaults"
	"github.com/NVIDIA/food-service/pkg/food"
	"github.com/NVIDIA/food-service/pkg/serializer"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List every food item in document order",
		Description: `List every item in the catalog, duplicates included, in the order
they appear in the source document.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(ctx, cmd, func(svc *food.Service) (any, error) {
				return svc.All(), nil
			})
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a food item by id",
		Description: `Print the first item carrying the given id. Fails when no item
matches.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "id",
				Aliases:  []string{"i"},
				Usage:    "Food item id",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(ctx, cmd, func(svc *food.Service) (any, error) {
				item, err := svc.Get(cmd.Int("id"))
				if err != nil {
					return nil, err
				}
				return item, nil
			})
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search food items by name",
		Description: `Print the items whose name contains the query, ignoring case and
surrounding whitespace. A blank query matches nothing.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Name fragment to search for",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var query *string
			if cmd.IsSet("name") {
				query = ptr.To(cmd.String("name"))
			}
			return runQuery(ctx, cmd, func(svc *food.Service) (any, error) {
				return svc.Search(query), nil
			})
		},
	}
}

// runQuery loads the catalog named by --data, runs query against it and
// writes the result using --format and --output.
func runQuery(ctx context.Context, cmd *cli.Command, query func(*food.Service) (any, error)) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
	defer cancel()

	svc := food.NewService(food.Load(ctx, dataSource(cmd)))

	result, err := query(svc)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	ser, err := newWriter(cmd, outFormat)
	if err != nil {
		return err
	}
	if closer, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
	}

	return ser.Serialize(ctx, result)
}

// dataSource returns --data, falling back to the embedded menu when it is
// blank, for example when FOOD_DATA_FILE_PATH is set but empty.
func dataSource(cmd *cli.Command) string {
	if v := strings.TrimSpace(cmd.String("data")); v != "" {
		return v
	}
	return defaults.FoodDataSource
}

// newWriter writes to --output when set, otherwise to the root command's
// writer (stdout unless replaced).
func newWriter(cmd *cli.Command, format serializer.Format) (serializer.Serializer, error) {
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		w, err := serializer.NewFileWriterOrStdout(format, path)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return serializer.NewWriter(format, cmd.Root().Writer), nil
}
