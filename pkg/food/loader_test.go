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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	apperrors "github.com/NVIDIA/food-service/pkg/errors"
)

func testItems() []Item {
	return []Item{
		NewItem(1, "Palak paneer", "$5.95", "Fresh spinach leaves (palak) cooked with cubes of Paneer cheese", 650),
		NewItem(2, "Biryani", "$7.95", "A fragrant and flavorful Indian rice dish", 900),
	}
}

func TestLoad(t *testing.T) {
	absMenu, err := filepath.Abs(filepath.Join("testdata", "menu.xml"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		source  string
		wantLen int
	}{
		{"relative filesystem path", filepath.Join("testdata", "menu.xml"), 2},
		{"absolute filesystem path", absMenu, 2},
		{"embedded menu", EmbeddedPrefix + "menu.xml", 5},
		{"embedded with leading slash", EmbeddedPrefix + "/menu.xml", 5},
		{"classpath alias", ClasspathPrefix + "menu.xml", 5},
		{"missing file", filepath.Join("testdata", "does-not-exist.xml"), 0},
		{"missing embedded resource", EmbeddedPrefix + "lunch.xml", 0},
		{"malformed markup", filepath.Join("testdata", "malformed.xml"), 0},
		{"bad integer", filepath.Join("testdata", "badint.xml"), 0},
		{"directory", "testdata", 0},
		{"empty source", "", 0},
		{"empty embedded name", EmbeddedPrefix, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Load(context.Background(), tt.source)
			require.NotNil(t, c)
			assert.Equal(t, tt.wantLen, c.Len())
			assert.NotNil(t, c.Items())
		})
	}
}

func TestLoadPreservesFieldValues(t *testing.T) {
	c := Load(context.Background(), filepath.Join("testdata", "menu.xml"))

	got := c.Items()
	want := testItems()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "item %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestLoadEmbeddedStartsWithSampleItems(t *testing.T) {
	items := Load(context.Background(), EmbeddedPrefix+"menu.xml").Items()
	require.GreaterOrEqual(t, len(items), 2)

	want := testItems()
	assert.Equal(t, *want[0].Name, *items[0].Name)
	assert.Equal(t, *want[1].Name, *items[1].Name)
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := Load(ctx, EmbeddedPrefix+"menu.xml")
	assert.Equal(t, 0, c.Len())
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	path := filepath.Join(t.TempDir(), "menu.xml")
	require.NoError(t, os.WriteFile(path, []byte("<breakfast_menu/>"), 0o000))

	c := Load(context.Background(), path)
	assert.Equal(t, 0, c.Len())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		source   string
		wantKind string
		wantName string
	}{
		{"embedded:menu.xml", sourceEmbedded, "menu.xml"},
		{"classpath:menu.xml", sourceEmbedded, "menu.xml"},
		{"classpath:/menu.xml", sourceEmbedded, "menu.xml"},
		{"/var/lib/food/menu.xml", sourceExternal, "/var/lib/food/menu.xml"},
		{"menu.xml", sourceExternal, "menu.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			kind, name := resolve(tt.source)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestEmbeddedMenus(t *testing.T) {
	names, err := EmbeddedMenus()
	require.NoError(t, err)
	assert.Contains(t, names, "menu.xml")
}

func largeMenu(n int) string {
	var sb strings.Builder
	sb.WriteString("<breakfast_menu>")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "<food><id>%d</id><name>Dish %d</name><price>$1.00</price>"+
			"<description>Daily special</description><calories>%d</calories></food>", i, i, i%1000)
	}
	sb.WriteString("</breakfast_menu>")
	return sb.String()
}

// cancelAtEOF cancels its context when the wrapped reader is exhausted,
// so the deadline passes after the whole document was read.
type cancelAtEOF struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancelAtEOF) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.cancel()
	}
	return n, err
}

func TestLoadLargeMenuWithinDeadline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xml")
	require.NoError(t, os.WriteFile(path, []byte(largeMenu(20000)), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c := Load(ctx, path)
	require.Equal(t, 20000, c.Len())
	assert.Equal(t, "Dish 20000", ptr.Deref(c.Items()[19999].Name, ""))
}

func TestReadItemsKeepsDocumentReadBeforeDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &cancelAtEOF{r: strings.NewReader(largeMenu(5000)), cancel: cancel}

	items, err := readItems(ctx, "large.xml", r)
	require.NoError(t, err)
	assert.Len(t, items, 5000)
	assert.Error(t, ctx.Err())
}

func TestReadItemsStopsReadingAfterDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := readItems(ctx, "large.xml", strings.NewReader(largeMenu(10)))
	require.Error(t, err)
	assert.Nil(t, items)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTimeout), "got %v", err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadItemsMalformedIsNotTimeout(t *testing.T) {
	_, err := readItems(context.Background(), "bad.xml", strings.NewReader("<menu><food>"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest), "got %v", err)
}
