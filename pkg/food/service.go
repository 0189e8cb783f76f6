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

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/NVIDIA/food-service/pkg/errors"
)

// Service answers read queries against a catalog it is constructed with.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	catalog *Catalog
}

// NewService returns a Service over c. A nil catalog behaves as empty.
func NewService(c *Catalog) *Service {
	if c == nil {
		c = EmptyCatalog()
	}
	return &Service{catalog: c}
}

// All returns every item in document order, duplicates included.
func (s *Service) All() []Item {
	return s.catalog.Items()
}

// Get returns the first item whose id matches. When no item matches the
// error carries apperrors.ErrCodeNotFound.
func (s *Service) Get(id int) (*Item, error) {
	for _, item := range s.catalog.items {
		if item.HasID(id) {
			found := item.clone()
			return &found, nil
		}
	}

	lookupMisses.Inc()
	return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
		fmt.Sprintf("Food item not found with id: %d", id),
		map[string]any{"id": id})
}

// Search returns the items whose name contains name, ignoring case and
// surrounding whitespace of the query, in catalog order. A nil, empty or
// blank query matches nothing. Items without a name never match.
func (s *Service) Search(name *string) []Item {
	out := []Item{}
	if name == nil {
		searchResults.Observe(0)
		return out
	}

	// Casers are stateful and must not be shared between goroutines.
	lower := cases.Lower(language.Und)

	term := lower.String(strings.TrimSpace(*name))
	if term == "" {
		searchResults.Observe(0)
		return out
	}

	for _, item := range s.catalog.items {
		if item.Name == nil {
			continue
		}
		if strings.Contains(lower.String(*item.Name), term) {
			out = append(out, item.clone())
		}
	}

	searchResults.Observe(float64(len(out)))
	return out
}
