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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/food-service/pkg/defaults"
	apperrors "github.com/NVIDIA/food-service/pkg/errors"
	"github.com/NVIDIA/food-service/pkg/serializer"
	"github.com/NVIDIA/food-service/pkg/server"
)

// Route patterns served by the handlers below.
const (
	RouteFoods  = "/api/foods"
	RouteFood   = "/api/foods/{id}"
	RouteSearch = "/api/foods/search"

	idPathValue = "id"
	nameParam   = "name"
)

// unexpectedErrorMessage is returned for any failure that is not a known domain error.
const unexpectedErrorMessage = "An unexpected error occurred"

var (
	// foodCacheTTL can be overridden for testing or custom configurations
	foodCacheTTL = defaults.FoodCacheTTL
)

// Routes returns the handler map to register with the server.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteFoods:  s.HandleFoods,
		RouteFood:   s.HandleFood,
		RouteSearch: s.HandleSearch,
	}
}

// HandleFoods serves GET /api/foods with the full catalog.
func (s *Service) HandleFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	if !allowGet(w, r) || requestDone(ctx, w, r) {
		return
	}

	items := s.All()
	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, items)
}

// HandleFood serves GET /api/foods/{id}. A non-integer id is rejected with
// 400 and an unknown id yields 404.
func (s *Service) HandleFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	if !allowGet(w, r) || requestDone(ctx, w, r) {
		return
	}

	raw := r.PathValue(idPathValue)
	id, err := strconv.Atoi(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid food item id", false, map[string]any{
				"id":    raw,
				"error": err.Error(),
			})
		return
	}

	item, err := s.Get(id)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
			slog.Debug("food item not found", "id", id)
		} else {
			slog.Error("food item lookup failed", "id", id, "error", err)
		}
		server.WriteErrorFromErr(w, r, err, unexpectedErrorMessage, nil)
		return
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, item)
}

// HandleSearch serves GET /api/foods/search?name=. A missing or blank name
// yields an empty list.
func (s *Service) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FoodHandlerTimeout)
	defer cancel()

	if !allowGet(w, r) || requestDone(ctx, w, r) {
		return
	}

	var name *string
	if q := r.URL.Query(); q.Has(nameParam) {
		name = ptr.To(q.Get(nameParam))
	}

	items := s.Search(name)
	slog.Debug("food search",
		"name", ptr.Deref(name, ""),
		"results", len(items),
	)

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, items)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodGet, http.MethodHead},
		})
	return false
}

// requestDone writes an error and reports true when the request context is
// already finished, so no query runs for a client that went away.
func requestDone(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	err := ctx.Err()
	if err == nil {
		return false
	}
	server.WriteErrorFromErr(w, r, apperrors.Wrap(apperrors.ErrCodeTimeout, "request canceled", err),
		unexpectedErrorMessage, nil)
	return true
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(foodCacheTTL.Seconds())))
}
