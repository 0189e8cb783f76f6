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

// Package logging configures log/slog for the food service binaries.
//
// All output is JSON on stderr and carries the module and version of the
// binary that emitted it:
//
//	{"time":"...","level":"INFO","msg":"food catalog loaded","module":"foodd","version":"v0.1.0","source":"embedded:menu.xml","items":5}
//
// Debug level also records the source location of each log call.
//
// # Log Levels
//
// Supported levels (case-insensitive): debug, info (default), warn or
// warning, error. The LOG_LEVEL environment variable selects the level:
//
//	LOG_LEVEL=debug foodd
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("foodd", version)
//	    slog.Info("starting")
//	}
//
// NewLogLogger bridges the standard library logger, for example for
// http.Server.ErrorLog, onto the default slog handler.
package logging
