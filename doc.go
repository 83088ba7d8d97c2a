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

// Package fontimize creates optimised font files which contain only the
// glyphs needed to display a given piece of text.
//
// The package determines the set of Unicode codepoints used in text or
// HTML content, collapses this set into contiguous codepoint ranges, and
// generates a trimmed WOFF2 web font for each input font:
//
//	res, err := fontimize.Optimize("Hello world",
//	    []string{"fonts/EBGaramond.ttf"}, nil)
//
// The returned map gives the generated file for each input font, e.g. for
// updating CSS @font-face rules.  Subsetting itself is performed by the
// [seehuhn.de/go/fontimize/subset] package; the computation of codepoint
// ranges lives in [seehuhn.de/go/fontimize/urange].
package fontimize
