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

	"k8s.io/utils/ptr"
)

// Item is a single menu entry. Every field is optional because the source
// document may omit any element; absent fields serialize as null.
type Item struct {
	ID          *int    `json:"id" yaml:"id"`
	Name        *string `json:"name" yaml:"name"`
	Price       *string `json:"price" yaml:"price"`
	Description *string `json:"description" yaml:"description"`
	Calories    *int    `json:"calories" yaml:"calories"`
}

// NewItem returns an Item with every field present.
func NewItem(id int, name, price, description string, calories int) Item {
	return Item{
		ID:          ptr.To(id),
		Name:        ptr.To(name),
		Price:       ptr.To(price),
		Description: ptr.To(description),
		Calories:    ptr.To(calories),
	}
}

// HasID reports whether the item carries the given id.
func (i Item) HasID(id int) bool {
	return i.ID != nil && *i.ID == id
}

// Equal reports whether both items carry the same field values.
func (i Item) Equal(o Item) bool {
	return ptr.Equal(i.ID, o.ID) &&
		ptr.Equal(i.Name, o.Name) &&
		ptr.Equal(i.Price, o.Price) &&
		ptr.Equal(i.Description, o.Description) &&
		ptr.Equal(i.Calories, o.Calories)
}

// String returns a short human readable form used in logs and CLI errors.
func (i Item) String() string {
	return fmt.Sprintf("%d:%s", ptr.Deref(i.ID, 0), ptr.Deref(i.Name, ""))
}

// clone returns a deep copy so callers never share field storage with the catalog.
func (i Item) clone() Item {
	return Item{
		ID:          clonePtr(i.ID),
		Name:        clonePtr(i.Name),
		Price:       clonePtr(i.Price),
		Description: clonePtr(i.Description),
		Calories:    clonePtr(i.Calories),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr.To(*p)
}
