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
	"slices"

	"seehuhn.de/go/fontimize/htmltext"
)

// seedRune is included in every character set.  Subsetting an empty set
// would produce a font without any glyphs, which some consumers reject;
// the space character is a safe universal default.
const seedRune = ' '

// Set is a set of Unicode codepoints.
type Set map[rune]struct{}

// UsedCharacters returns the set of codepoints occurring in the given
// strings.  The result always contains the space character, even for
// empty input.
func UsedCharacters(texts ...string) Set {
	s := Set{seedRune: {}}
	for _, text := range texts {
		for _, r := range text {
			s[r] = struct{}{}
		}
	}
	return s
}

// UsedCharactersInHTML returns the set of codepoints occurring in the
// renderable text of the given HTML documents.  The extract function
// turns an HTML document into plain text; if it is nil,
// [htmltext.ExtractString] is used.
func UsedCharactersInHTML(docs []string, extract func(string) (string, error)) (Set, error) {
	if extract == nil {
		extract = htmltext.ExtractString
	}
	texts := make([]string, len(docs))
	for i, doc := range docs {
		text, err := extract(doc)
		if err != nil {
			return nil, err
		}
		texts[i] = text
	}
	return UsedCharacters(texts...), nil
}

// Add inserts a codepoint into the set.
func (s Set) Add(r rune) {
	s[r] = struct{}{}
}

// Has reports whether the set contains the codepoint r.
func (s Set) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Runes returns the codepoints in the set in ascending order.
func (s Set) Runes() []rune {
	res := make([]rune, 0, len(s))
	for r := range s {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}
