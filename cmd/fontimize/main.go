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

// Fontimize generates optimised web fonts containing only the glyphs
// needed for the given text or HTML content.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/fontimize"
	"seehuhn.de/go/fontimize/htmltext"
)

var (
	textArg = flag.String("text", "", "keep the characters of this `text`")
	outDir  = flag.String("o", "", "output `directory` (default: next to each font)")
	label   = flag.String("name", fontimize.DefaultLabel,
		"subset `name`, used in the generated file names")
	verbose = flag.Bool("v", false, "report progress and size savings")
)

func main() {
	var textFiles, htmlFiles []string
	flag.Func("textfile", "keep the characters of this text `file` (can be repeated)",
		func(path string) error {
			textFiles = append(textFiles, path)
			return nil
		})
	flag.Func("htmlfile", "keep the characters of the text in this HTML `file` (can be repeated)",
		func(path string) error {
			htmlFiles = append(htmlFiles, path)
			return nil
		})
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fontimize — generate optimised fonts from the characters in use\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fontimize [options] <font.ttf>...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fontimize -text \"Hello world\" EBGaramond.ttf\n")
		fmt.Fprintf(os.Stderr, "  fontimize -htmlfile index.html -htmlfile about.html fonts/*.ttf\n")
	}
	flag.Parse()

	fonts := flag.Args()
	if len(fonts) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var texts []string
	if *textArg != "" {
		texts = append(texts, *textArg)
	}
	for _, path := range textFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		texts = append(texts, string(data))
	}
	for _, path := range htmlFiles {
		text, err := htmltext.ExtractFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		texts = append(texts, text)
	}

	opt := &fontimize.Options{
		OutputDir: *outDir,
		Label:     *label,
	}
	if *verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	res, err := fontimize.OptimizeTexts(texts, fonts, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, font := range slices.Sorted(maps.Keys(res)) {
		fmt.Printf("%s -> %s\n", font, res[font])
	}
}
