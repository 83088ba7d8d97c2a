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

// Package subset generates trimmed web fonts.
//
// Given a TrueType or OpenType font file and a set of Unicode ranges, the
// engine keeps only the glyphs needed for the codepoints in those ranges
// and writes the result as a WOFF2 file.
package subset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontimize/urange"
	"seehuhn.de/go/fontimize/woff2"
)

// Directive selects the codepoints to keep in a subset font.
type Directive struct {
	// Label names the subset.  It becomes part of the generated file
	// name, e.g. "Arial.FontimizeSubset.woff2".
	Label string

	// Ranges is a Unicode range expression in the syntax of
	// [urange.Expression], e.g. "U+0020, U+0041-005A".
	Ranges string
}

// Result describes one generated font file.
type Result struct {
	// Path is the file name of the generated WOFF2 font.
	Path string

	// Ranges is the range expression the font was subsetted to.
	Ranges string
}

// Engine subsets font files.  The zero value is ready to use.
type Engine struct {
	// Quality is the Brotli compression level for the WOFF2 output,
	// 0 to 11.  Zero selects the highest level.
	Quality int
}

// Subset writes one WOFF2 font per directive, containing only the glyphs
// for the codepoints the directive names.  The files are created in
// outDir; if outDir is empty, they are placed next to the input font.
func (e *Engine) Subset(fontFile string, directives []Directive, outDir string) ([]Result, error) {
	data, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, err
	}
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontFile, err)
	}

	if outDir == "" {
		outDir = filepath.Dir(fontFile)
	}

	var res []Result
	for _, d := range directives {
		rr, err := urange.Parse(d.Ranges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fontFile, err)
		}

		sub, err := trim(font, urange.Runes(rr))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fontFile, err)
		}

		var fontData bytes.Buffer
		if sub.IsCFF() {
			err = sub.WriteOpenTypeCFFPDF(&fontData)
		} else {
			_, err = sub.WriteTrueTypePDF(&fontData)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fontFile, err)
		}

		outPath := filepath.Join(outDir, outputName(fontFile, d.Label))
		out, err := os.Create(outPath)
		if err != nil {
			return nil, err
		}
		err = woff2.Encode(out, fontData.Bytes(), &woff2.Options{Quality: e.Quality})
		if err2 := out.Close(); err == nil {
			err = err2
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", outPath, err)
		}

		res = append(res, Result{Path: outPath, Ranges: d.Ranges})
	}
	return res, nil
}

// trim returns a copy of font containing only .notdef and the glyphs for
// the given codepoints, with a rebuilt cmap.
func trim(font *sfnt.Font, runes []rune) (*sfnt.Font, error) {
	cmapTable, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("no usable cmap: %w", err)
	}

	glyphs, mapping := collectGlyphs(cmapTable, runes)

	clone := font.Clone()
	clone.CMapTable = nil
	clone.Gdef = nil
	clone.Gsub = nil
	clone.Gpos = nil
	sub := clone.Subset(glyphs)

	// TODO(voss): use a format 12 subtable so that codepoints outside
	// the BMP keep their mapping.
	sub.CMapTable = cmap.Table{
		{PlatformID: 3, EncodingID: 1}: mapping.Encode(0),
	}
	return sub, nil
}

// collectGlyphs maps the codepoints to glyphs in the original font and
// assigns new glyph IDs.  Glyph 0 (.notdef) always comes first.
// Codepoints which the font cannot display are dropped.
func collectGlyphs(cmapTable cmap.Subtable, runes []rune) ([]glyph.ID, cmap.Format4) {
	glyphs := []glyph.ID{0}
	newGID := map[glyph.ID]glyph.ID{0: 0}
	mapping := cmap.Format4{}
	for _, r := range runes {
		gid := cmapTable.Lookup(r)
		if gid == 0 {
			continue
		}
		sub, ok := newGID[gid]
		if !ok {
			sub = glyph.ID(len(glyphs))
			newGID[gid] = sub
			glyphs = append(glyphs, gid)
		}
		if r <= 0xFFFF {
			mapping[uint16(r)] = sub
		}
	}
	return glyphs, mapping
}

// outputName derives the name of the generated font file, e.g.
// "EBGaramond.ttf" with label "FontimizeSubset" becomes
// "EBGaramond.FontimizeSubset.woff2".
func outputName(fontFile, label string) string {
	base := filepath.Base(fontFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if label != "" {
		base += "." + label
	}
	return base + ".woff2"
}
