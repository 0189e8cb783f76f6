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

// Package food loads a menu document into an immutable catalog and answers
// read queries over it.
//
// # Loading
//
// Load resolves a source string and parses it once at startup:
//
//	catalog := food.Load(ctx, "embedded:menu.xml")   // bundled with the binary
//	catalog := food.Load(ctx, "/etc/food/menu.xml")  // filesystem path
//
// Any failure is logged and produces an empty catalog; Load never returns an error.
//
// # Document Format
//
//	<breakfast_menu>
//	    <food>
//	        <id>1</id>
//	        <name>Palak paneer</name>
//	        <price>$5.95</price>
//	        <description>...</description>
//	        <calories>650</calories>
//	    </food>
//	</breakfast_menu>
//
// # Queries
//
//	svc := food.NewService(catalog)
//	svc.All()
//	svc.Get(1)                  // NOT_FOUND error when missing
//	svc.Search(ptr.To("pan"))   // case-insensitive substring match
//
// # HTTP API
//
//	GET /api/foods
//	GET /api/foods/{id}
//	GET /api/foods/search?name=
package food
