// seehuhn.de/go/fontimize - generate optimised fonts from the characters in use
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package htmltext extracts the renderable text content from HTML
// documents.  Markup, scripts and style sheets are discarded.
package htmltext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// skip lists elements whose text content is never rendered.
var skip = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Extract returns the text content of the HTML document read from r.
// Text inside script, style, noscript and template elements is omitted.
func Extract(r io.Reader) (string, error) {
	var buf strings.Builder
	z := html.NewTokenizer(r)
	var skipUntil string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return buf.String(), nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipUntil == "" && skip[string(name)] {
				skipUntil = string(name)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == skipUntil {
				skipUntil = ""
			}
		case html.TextToken:
			if skipUntil == "" {
				buf.Write(z.Text())
			}
		}
	}
}

// ExtractString is like [Extract], for a document already held in memory.
func ExtractString(doc string) (string, error) {
	return Extract(strings.NewReader(doc))
}

// ExtractFile reads the HTML file at the given path and returns its text
// content.  The character encoding is detected from byte order marks, a
// Content-Type meta tag, or falls back to UTF-8.
func ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	text, err := Extract(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
