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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	apperrors "github.com/NVIDIA/food-service/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Item
	}{
		{
			name: "two items in document order",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<breakfast_menu>
  <food><id>1</id><name>Palak paneer</name><price>$5.95</price><description>Spinach</description><calories>650</calories></food>
  <food><id>2</id><name>Biryani</name><price>$7.95</price><description>Rice</description><calories>900</calories></food>
</breakfast_menu>`,
			want: []Item{
				NewItem(1, "Palak paneer", "$5.95", "Spinach", 650),
				NewItem(2, "Biryani", "$7.95", "Rice", 900),
			},
		},
		{
			name: "empty root",
			doc:  `<breakfast_menu/>`,
			want: []Item{},
		},
		{
			name: "any root name is accepted",
			doc:  `<menu><food><id>7</id></food></menu>`,
			want: []Item{{ID: ptr.To(7)}},
		},
		{
			name: "missing elements are absent",
			doc:  `<breakfast_menu><food><name>Biryani</name></food></breakfast_menu>`,
			want: []Item{{Name: ptr.To("Biryani")}},
		},
		{
			name: "unknown elements are ignored",
			doc: `<breakfast_menu>
  <chef>Ravi</chef>
  <food><id>1</id><spice level="3"><note>hot</note></spice><name>Vindaloo</name></food>
</breakfast_menu>`,
			want: []Item{{ID: ptr.To(1), Name: ptr.To("Vindaloo")}},
		},
		{
			name: "integers tolerate surrounding whitespace",
			doc:  "<breakfast_menu><food><id> 3 </id><calories>\n420\n</calories></food></breakfast_menu>",
			want: []Item{{ID: ptr.To(3), Calories: ptr.To(420)}},
		},
		{
			name: "empty integer element is absent",
			doc:  `<breakfast_menu><food><id>4</id><calories></calories></food></breakfast_menu>`,
			want: []Item{{ID: ptr.To(4)}},
		},
		{
			name: "text is kept verbatim",
			doc:  `<breakfast_menu><food><price> $5.95 </price><description>Tom &amp; Jerry&#39;s</description></food></breakfast_menu>`,
			want: []Item{{Price: ptr.To(" $5.95 "), Description: ptr.To("Tom & Jerry's")}},
		},
		{
			name: "repeated element keeps the last value",
			doc:  `<breakfast_menu><food><name>First</name><name>Second</name></food></breakfast_menu>`,
			want: []Item{{Name: ptr.To("Second")}},
		},
		{
			name: "duplicate ids are preserved",
			doc:  `<breakfast_menu><food><id>1</id><name>A</name></food><food><id>1</id><name>B</name></food></breakfast_menu>`,
			want: []Item{
				{ID: ptr.To(1), Name: ptr.To("A")},
				{ID: ptr.To(1), Name: ptr.To("B")},
			},
		},
		{
			name: "comments after root are allowed",
			doc:  "<breakfast_menu></breakfast_menu>\n<!-- generated -->\n",
			want: []Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ""},
		{"prolog only", `<?xml version="1.0"?>`},
		{"unterminated item", `<breakfast_menu><food><id>1</id>`},
		{"mismatched tags", `<breakfast_menu><food></menu>`},
		{"bad id", `<breakfast_menu><food><id>one</id></food></breakfast_menu>`},
		{"bad calories", `<breakfast_menu><food><calories>12.5</calories></food></breakfast_menu>`},
		{"bad integer after good items", `<breakfast_menu><food><id>1</id></food><food><id>x</id></food></breakfast_menu>`},
		{"second root", `<breakfast_menu></breakfast_menu><breakfast_menu></breakfast_menu>`},
		{"unsupported charset", `<?xml version="1.0" encoding="x-unknown"?><breakfast_menu/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, items)
		})
	}
}

func TestDecodeIntegerErrorContext(t *testing.T) {
	_, err := Decode(strings.NewReader(`<breakfast_menu><food><calories>lots</calories></food></breakfast_menu>`))
	require.Error(t, err)

	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
	assert.Contains(t, err.Error(), "calories")
}

func TestDecodeLatin1(t *testing.T) {
	// "Crème brûlée" encoded as ISO-8859-1
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><breakfast_menu><food><name>Cr\xe8me br\xfbl\xe9e</name></food></breakfast_menu>"

	items, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Crème brûlée", *items[0].Name)
}
