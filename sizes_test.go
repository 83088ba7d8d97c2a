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

package fontimize

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestTotalFileSize(t *testing.T) {
	dir := t.TempDir()
	sizes := []int{100, 2000, 0}
	var paths []string
	for i, n := range sizes {
		path := filepath.Join(dir, string(rune('a'+i)))
		if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	sum, err := totalFileSize(paths)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 2100 {
		t.Errorf("got %d, want 2100", sum)
	}

	if _, err := totalFileSize([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0KB"},
		{1024, "1KB"},
		{512 * 1024, "512KB"},
		{1024 * 1024, "1.0MB"},
		{2560 * 1024, "2.5MB"},
	}
	for _, c := range cases {
		if got := humanSize(c.n); got != c.want {
			t.Errorf("humanSize(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

// TestLogSavingsZeroSize checks that empty original fonts do not cause a
// division by zero in the savings percentage.
func TestLogSavingsZeroSize(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "empty.ttf")
	gen := filepath.Join(dir, "empty.woff2")
	for _, path := range []string{orig, gen} {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logSavings(logger, map[string]string{orig: gen})

	out := buf.String()
	if out == "" {
		t.Error("no log output")
	}
	if bytes.Contains(buf.Bytes(), []byte("savedPercent")) {
		t.Errorf("savings percentage reported for zero-size input: %s", out)
	}
}

func TestLogSavingsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logSavings(logger, map[string]string{"missing.ttf": "missing.woff2"})
	if !bytes.Contains(buf.Bytes(), []byte("could not determine")) {
		t.Errorf("expected a warning, got: %s", buf.String())
	}
}
