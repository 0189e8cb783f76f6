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

// Package cli implements the food command line interface.
//
// # Commands
//
// list - Print every item in document order:
//
//	food list
//
// get - Print the first item with the given id; fails when none matches:
//
//	food get --id 2
//
// search - Case-insensitive substring match on item names:
//
//	food search --name paneer --format table
//
// serve - Start the HTTP API for the selected catalog:
//
//	food --data /srv/menu.xml serve
//
// # Global Flags
//
//	--data, -d     Catalog source, a file path or embedded:<name>
//	               (env: FOOD_DATA_FILE_PATH, default: embedded:menu.xml)
//	--debug        Enable debug logging
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Query commands also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// A .env file in the working directory is read before flags are parsed;
// variables already set in the environment take precedence.
//
// An unreadable or malformed catalog is treated as empty, so list and
// search print an empty list rather than failing.
package cli
