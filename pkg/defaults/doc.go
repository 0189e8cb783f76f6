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

// Package defaults provides centralized configuration constants for the food service.
//
// # Categories
//
//   - Loader: bundled data location and load deadline
//   - Handler: HTTP request processing and response caching
//   - Server: HTTP server configuration
//   - CLI: command-line operations
//
// # Usage
//
//	import "github.com/NVIDIA/food-service/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
//	defer cancel()
package defaults
