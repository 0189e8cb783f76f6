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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	apperrors "github.com/NVIDIA/food-service/pkg/errors"
)

// Element names of the menu document.
const (
	itemElement        = "food"
	idElement          = "id"
	nameElement        = "name"
	priceElement       = "price"
	descriptionElement = "description"
	caloriesElement    = "calories"
)

// Decode parses a menu document into items in document order.
//
// The root element may have any name. Its direct children named food become
// items; every other element is skipped. Inside an item the id, name, price,
// description and calories children map onto the matching fields, and a
// repeated child overwrites the earlier value. An integer field that does
// not parse fails the whole document.
func Decode(r io.Reader) ([]Item, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charsetReader

	if _, err := nextStart(d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "menu document has no root element")
		}
		return nil, malformed(err)
	}

	items := []Item{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != itemElement {
				if err := d.Skip(); err != nil {
					return nil, malformed(err)
				}
				continue
			}
			item, err := decodeItem(d)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case xml.EndElement:
			if err := expectEOF(d); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
}

// charsetReader converts documents declaring a non UTF-8 encoding, such as
// ISO-8859-1, using the IANA registry.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// nextStart advances to the first start element, skipping the prolog.
func nextStart(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// expectEOF allows only comments, whitespace and processing instructions after the root.
func expectEOF(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformed(err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"menu document has more than one root element",
				map[string]any{"element": se.Name.Local})
		}
	}
}

func decodeItem(d *xml.Decoder) (Item, error) {
	var item Item
	for {
		tok, err := d.Token()
		if err != nil {
			return Item{}, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			field := t.Name.Local
			switch field {
			case idElement, caloriesElement:
				text, err := readText(d)
				if err != nil {
					return Item{}, err
				}
				n, err := parseInt(field, text)
				if err != nil {
					return Item{}, err
				}
				if field == idElement {
					item.ID = n
				} else {
					item.Calories = n
				}
			case nameElement, priceElement, descriptionElement:
				text, err := readText(d)
				if err != nil {
					return Item{}, err
				}
				switch field {
				case nameElement:
					item.Name = &text
				case priceElement:
					item.Price = &text
				default:
					item.Description = &text
				}
			default:
				if err := d.Skip(); err != nil {
					return Item{}, malformed(err)
				}
			}
		case xml.EndElement:
			return item, nil
		}
	}
}

// readText collects the character data of the current element up to its end
// tag. Nested elements are skipped.
func readText(d *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", malformed(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return "", malformed(err)
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// parseInt converts element text to an integer. Empty text means the field is absent.
func parseInt(field, text string) (*int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid integer in %s element", field), err,
			map[string]any{"element": field, "value": trimmed})
	}
	return &n, nil
}

func malformed(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "malformed menu document", err)
}
