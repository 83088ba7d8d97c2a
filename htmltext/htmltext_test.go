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

package htmltext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain markup",
			in:   "<p>Hello <b>world</b></p>",
			want: "Hello world",
		},
		{
			name: "script dropped",
			in:   "<p>a</p><script>var x = 'nope';</script><p>b</p>",
			want: "ab",
		},
		{
			name: "style dropped",
			in:   "<style>body { color: red }</style>ok",
			want: "ok",
		},
		{
			name: "nested markup",
			in:   "<div><span>x</span><noscript>hidden</noscript>y</div>",
			want: "xy",
		},
		{
			name: "entities decoded",
			in:   "<p>a&amp;b</p>",
			want: "a&b",
		},
		{
			name: "no markup",
			in:   "just text",
			want: "just text",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ExtractString(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	doc := `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Tést</title>
<style>h1 { font-family: serif }</style></head>
<body><h1>Héllo</h1></body></html>`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ExtractFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Tést", "Héllo"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text %q does not contain %q", text, want)
		}
	}
	if strings.Contains(text, "font-family") {
		t.Errorf("style content leaked into %q", text)
	}

	if _, err := ExtractFile(filepath.Join(dir, "missing.html")); err == nil {
		t.Error("expected error for missing file")
	}
}
