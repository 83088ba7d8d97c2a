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
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/fontimize/htmltext"
	"seehuhn.de/go/fontimize/subset"
	"seehuhn.de/go/fontimize/urange"
)

// DefaultLabel is the subset name used when Options.Label is empty.
// It becomes part of the generated file names.
const DefaultLabel = "FontimizeSubset"

// ErrArtifactCount indicates that the subsetting engine did not return
// exactly one output font for an input font.
var ErrArtifactCount = errors.New("wrong number of generated fonts")

// Subsetter generates subset fonts.  It is implemented by
// [subset.Engine]; other implementations can be supplied for testing.
type Subsetter interface {
	Subset(fontFile string, directives []subset.Directive, outDir string) ([]subset.Result, error)
}

// Options control font optimisation.  The zero value (and a nil pointer)
// are valid and select the defaults described on each field.
type Options struct {
	// OutputDir is the directory for the generated fonts.  If empty,
	// each font is placed in the directory of its input file.
	OutputDir string

	// Label names the subset and is included in generated file names.
	// If empty, [DefaultLabel] is used.
	Label string

	// Subsetter generates the subset fonts.
	// If nil, a [subset.Engine] is used.
	Subsetter Subsetter

	// Logger, if non-nil, receives progress and savings information.
	Logger *slog.Logger
}

// Optimize generates, for every font in fonts, an optimised font file
// containing only the glyphs needed to display text.  It returns a map
// from input font file to generated font file.
//
// Fonts are processed concurrently; each font is independent of the
// others.  The first error aborts the whole call.
func Optimize(text string, fonts []string, opt *Options) (map[string]string, error) {
	return optimize(UsedCharacters(text), fonts, opt)
}

// OptimizeTexts is like [Optimize] for the combined characters of
// several pieces of text.
func OptimizeTexts(texts []string, fonts []string, opt *Options) (map[string]string, error) {
	return optimize(UsedCharacters(texts...), fonts, opt)
}

// OptimizeHTML is like [Optimize], but takes HTML documents and only
// counts their renderable text content.
func OptimizeHTML(docs []string, fonts []string, opt *Options) (map[string]string, error) {
	chars, err := UsedCharactersInHTML(docs, nil)
	if err != nil {
		return nil, err
	}
	return optimize(chars, fonts, opt)
}

// OptimizeHTMLFiles is like [OptimizeHTML], reading the HTML documents
// from files.  The character encoding of each file is detected
// automatically.
func OptimizeHTMLFiles(paths []string, fonts []string, opt *Options) (map[string]string, error) {
	texts := make([]string, len(paths))
	for i, path := range paths {
		text, err := htmltext.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		texts[i] = text
	}
	return optimize(UsedCharacters(texts...), fonts, opt)
}

func optimize(chars Set, fonts []string, opt *Options) (map[string]string, error) {
	if opt == nil {
		opt = &Options{}
	}
	label := opt.Label
	if label == "" {
		label = DefaultLabel
	}
	engine := opt.Subsetter
	if engine == nil {
		engine = &subset.Engine{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ranges := urange.Compress(chars.Runes())
	expr := urange.Expression(ranges)
	logger.Info("characters collected",
		"count", len(chars),
		"characters", string(chars.Runes()))
	logger.Info("character ranges computed",
		"count", len(ranges),
		"expression", expr)

	directives := []subset.Directive{{Label: label, Ranges: expr}}

	res := make(map[string]string, len(fonts))
	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for _, font := range fonts {
		group.Go(func() error {
			out, err := engine.Subset(font, directives, opt.OutputDir)
			if err != nil {
				return err
			}
			if len(out) != 1 {
				return fmt.Errorf("%s: %w: got %d, expected 1",
					font, ErrArtifactCount, len(out))
			}
			logger.Info("font generated", "from", font, "to", out[0].Path)
			mu.Lock()
			res[font] = out[0].Path
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logSavings(logger, res)
	return res, nil
}
