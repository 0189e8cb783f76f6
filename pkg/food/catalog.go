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

package food

// Catalog is the ordered, immutable sequence of items produced by Load.
// It is safe for concurrent use because nothing mutates it after construction.
type Catalog struct {
	items []Item
}

// NewCatalog returns a catalog holding deep copies of items in the given order.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{items: make([]Item, len(items))}
	for i, item := range items {
		c.items[i] = item.clone()
	}
	return c
}

// EmptyCatalog returns a catalog with no items.
func EmptyCatalog() *Catalog {
	return &Catalog{items: []Item{}}
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of all items in document order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return []Item{}
	}
	out := make([]Item, len(c.items))
	for i, item := range c.items {
		out[i] = item.clone()
	}
	return out
}
