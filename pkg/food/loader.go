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
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	apperrors "github.com/NVIDIA/food-service/pkg/errors"
)

const (
	// EmbeddedPrefix marks a source that resolves against the bundled data directory.
	EmbeddedPrefix = "embedded:"

	// ClasspathPrefix is accepted as an alias of EmbeddedPrefix so existing
	// configuration values keep working.
	ClasspathPrefix = "classpath:"

	// embeddedRoot is the directory inside dataFS holding bundled menus.
	embeddedRoot = "data"

	// source kinds used as metric labels
	sourceEmbedded = "embedded"
	sourceExternal = "external"
)

//go:embed data/*.xml
var dataFS embed.FS

// Load reads the menu at source and returns its catalog.
//
// A source carrying EmbeddedPrefix or ClasspathPrefix is looked up among the
// bundled menus; anything else is a filesystem path. Load never fails: a
// missing resource, read error, or malformed document is logged and yields
// an empty catalog.
func Load(ctx context.Context, source string) *Catalog {
	start := time.Now()
	kind, _ := resolve(source)

	items, err := loadItems(ctx, source)
	catalogLoadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		catalogLoadFailures.WithLabelValues(kind).Inc()
		catalogItems.Set(0)
		slog.Error("error loading food data",
			"source", source,
			"kind", kind,
			"error", err,
		)
		return EmptyCatalog()
	}

	catalogItems.Set(float64(len(items)))
	slog.Info("food data loaded",
		"source", source,
		"kind", kind,
		"items", len(items),
		"duration", time.Since(start).String(),
	)

	return NewCatalog(items)
}

func loadItems(ctx context.Context, source string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	f, err := open(source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close food data source", "source", source, "error", cerr)
		}
	}()

	return readItems(ctx, source, f)
}

// readItems decodes r, aborting at the next read once ctx is done. A
// document that was fully read is kept even if ctx ends afterwards.
func readItems(ctx context.Context, source string, r io.Reader) ([]Item, error) {
	items, err := Decode(&contextReader{ctx: ctx, r: r})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, canceled(err)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}
	return items, nil
}

// contextReader fails reads once its context is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func canceled(err error) error {
	return apperrors.Wrap(apperrors.ErrCodeTimeout, "catalog load canceled", err)
}

// resolve reports the kind of source and the name to open.
func resolve(source string) (kind, name string) {
	for _, prefix := range []string{EmbeddedPrefix, ClasspathPrefix} {
		if rest, ok := strings.CutPrefix(source, prefix); ok {
			return sourceEmbedded, strings.TrimPrefix(rest, "/")
		}
	}
	return sourceExternal, source
}

func open(source string) (io.ReadCloser, error) {
	kind, name := resolve(source)
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "food data source is empty")
	}

	var (
		f   io.ReadCloser
		err error
	)
	if kind == sourceEmbedded {
		slog.Debug("reading food data from embedded provider", "name", name)
		f, err = dataFS.Open(path.Join(embeddedRoot, name))
	} else {
		slog.Debug("reading food data from filesystem", "path", name)
		f, err = os.Open(name)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				"Resource not found: "+source, err, map[string]any{"kind": kind})
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to open food data source", err)
	}

	return f, nil
}

// EmbeddedMenus lists the names of bundled menus, usable as EmbeddedPrefix+name.
func EmbeddedMenus() ([]string, error) {
	entries, err := fs.ReadDir(dataFS, embeddedRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded menus: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
