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

// Package urange represents sets of Unicode codepoints as lists of
// inclusive ranges, in the syntax used by CSS "unicode-range" descriptors
// and font subsetting tools.
package urange

import (
	"fmt"
	"slices"
	"strings"
)

// Range is an inclusive, contiguous run of Unicode codepoints.
type Range struct {
	First rune
	Last  rune
}

// String returns the range as a Unicode range token.  Single codepoints
// render as "U+0041", longer runs as "U+0061-007A".  Hex digits are upper
// case and zero-padded to at least four digits.
func (r Range) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("U+%04X", r.First)
	}
	return fmt.Sprintf("U+%04X-%04X", r.First, r.Last)
}

// Count returns the number of codepoints in the range.
func (r Range) Count() int {
	return int(r.Last-r.First) + 1
}

// Compress partitions the given codepoints into the minimal ordered list
// of maximal contiguous ranges.  The input does not need to be sorted and
// may contain duplicates.
//
// The returned ranges are in ascending order, pairwise non-overlapping and
// non-adjacent, and their union is exactly the set of input codepoints.
// An empty input yields a nil slice.
func Compress(runes []rune) []Range {
	if len(runes) == 0 {
		return nil
	}

	cc := slices.Clone(runes)
	slices.Sort(cc)
	cc = slices.Compact(cc)

	var res []Range
	first := cc[0]
	last := first
	for _, c := range cc[1:] {
		if c == last+1 {
			last = c
			continue
		}
		res = append(res, Range{first, last})
		first = c
		last = c
	}
	res = append(res, Range{first, last})
	return res
}

// Runes expands a list of ranges back into the codepoints it covers, in
// ascending order.
func Runes(rr []Range) []rune {
	var res []rune
	for _, r := range rr {
		for c := r.First; c <= r.Last; c++ {
			res = append(res, c)
		}
	}
	return res
}

// Expression joins the tokens for the given ranges into a single range
// expression, e.g. "U+0020, U+0061-0063, U+007A".
func Expression(rr []Range) string {
	tokens := make([]string, len(rr))
	for i, r := range rr {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, ", ")
}

// Parse decodes a range expression as produced by [Expression].  Tokens
// are separated by commas; surrounding white space is ignored.  The "U+"
// prefix is required on the first endpoint of each token and must not be
// repeated on the second.
func Parse(expr string) ([]Range, error) {
	var res []Range
	for _, tok := range strings.Split(expr, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func parseToken(tok string) (Range, error) {
	body, ok := strings.CutPrefix(tok, "U+")
	if !ok {
		return Range{}, fmt.Errorf("urange: missing U+ prefix in %q", tok)
	}
	lo, hi, isRange := strings.Cut(body, "-")
	first, err := parseHex(lo)
	if err != nil {
		return Range{}, fmt.Errorf("urange: invalid token %q", tok)
	}
	last := first
	if isRange {
		last, err = parseHex(hi)
		if err != nil {
			return Range{}, fmt.Errorf("urange: invalid token %q", tok)
		}
	}
	if last < first {
		return Range{}, fmt.Errorf("urange: inverted range %q", tok)
	}
	return Range{first, last}, nil
}

func parseHex(s string) (rune, error) {
	if s == "" || len(s) > 6 {
		return 0, fmt.Errorf("bad length")
	}
	var x rune
	for _, c := range s {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		default:
			return 0, fmt.Errorf("bad digit %q", c)
		}
		x = x<<4 | d
	}
	return x, nil
}
