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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/food-service/pkg/defaults"
)

// Serve blocks until a signal arrives, so these tests exercise newServer,
// which builds the same handler tree without listening.

func TestConstants(t *testing.T) {
	if name != "foodd" {
		t.Errorf("name = %q, want %q", name, "foodd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

func TestDataSource(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvDataFilePath, "")
		if got := DataSource(); got != defaults.FoodDataSource {
			t.Errorf("DataSource() = %q, want %q", got, defaults.FoodDataSource)
		}
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv(EnvDataFilePath, " /srv/menu.xml ")
		if got := DataSource(); got != "/srv/menu.xml" {
			t.Errorf("DataSource() = %q, want %q", got, "/srv/menu.xml")
		}
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	content := EnvDataFilePath + "=/from/dotenv.xml\nFOOD_TEST_ONLY_VAR=present\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// existing variables win over the file
	t.Setenv(EnvDataFilePath, "/from/env.xml")
	t.Setenv("FOOD_TEST_ONLY_VAR", "")
	os.Unsetenv("FOOD_TEST_ONLY_VAR")

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := os.Getenv(EnvDataFilePath); got != "/from/env.xml" {
		t.Errorf("expected existing value kept, got %q", got)
	}
	if got := os.Getenv("FOOD_TEST_ONLY_VAR"); got != "present" {
		t.Errorf("expected value from file, got %q", got)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("expected missing file to be ignored, got %v", err)
	}
}

func TestNewServerServesEmbeddedMenu(t *testing.T) {
	s := newServer(context.Background(), defaults.FoodDataSource)

	req := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("expected 5 embedded items, got %d", len(items))
	}
}

func TestNewServerMissingSourceServesEmpty(t *testing.T) {
	s := newServer(context.Background(), filepath.Join(t.TempDir(), "nope.xml"))

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/api/foods", http.StatusOK, "[]"},
		{"/api/foods/search?name=paneer", http.StatusOK, "[]"},
		{"/api/foods/1", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && strings.TrimSpace(w.Body.String()) != tt.wantBody {
				t.Errorf("expected body %s, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}
