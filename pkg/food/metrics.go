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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog load metrics
	catalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "food_catalog_items",
			Help: "Number of food items in the loaded catalog",
		},
	)
	catalogLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "food_catalog_load_failures_total",
			Help: "Total number of catalog loads that fell back to an empty catalog",
		},
		[]string{"source"},
	)
	catalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "food_catalog_load_duration_seconds",
			Help:    "Duration of catalog loading in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// Query metrics
	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "food_search_results",
			Help:    "Number of items returned by name searches",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
	lookupMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "food_lookup_misses_total",
			Help: "Total number of id lookups that found no item",
		},
	)
)
