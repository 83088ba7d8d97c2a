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

// Package woff2 packages sfnt font data into WOFF2 containers.
//
// The encoder stores all tables with the null preprocessing transform and
// compresses the table data stream using Brotli.  This is valid WOFF2
// which every conforming decoder must accept; the optional glyf/loca
// transform is not applied.
package woff2

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/andybalholm/brotli"
)

// Options controls the encoding of a WOFF2 file.
type Options struct {
	// Quality is the Brotli compression level, 0 to 11.
	// Zero or out-of-range values select the highest level.
	Quality int
}

const woff2Signature = 0x774F4632 // "wOF2"

var (
	errNotSfnt   = errors.New("woff2: not an sfnt font")
	errTruncated = errors.New("woff2: truncated font data")
)

type table struct {
	tag    uint32
	data   []byte
	offset uint32
}

// Encode writes the font given as raw sfnt data (a TrueType or OpenType
// file) to w as a WOFF2 file.  Opt may be nil to use default options.
func Encode(w io.Writer, fontData []byte, opt *Options) error {
	flavor, tables, err := splitTables(fontData)
	if err != nil {
		return err
	}

	quality := brotli.BestCompression
	if opt != nil && opt.Quality > 0 && opt.Quality <= brotli.BestCompression {
		quality = opt.Quality
	}

	// The uncompressed data stream holds the table contents in the order
	// given by the table directory, without padding.
	var dir bytes.Buffer
	var stream bytes.Buffer
	totalSfntSize := uint32(12 + 16*len(tables))
	for _, t := range tables {
		writeDirEntry(&dir, t)
		stream.Write(t.data)
		totalSfntSize += 4 * ((uint32(len(t.data)) + 3) / 4)
	}

	var compressed bytes.Buffer
	bw := brotli.NewWriterLevel(&compressed, quality)
	if _, err := bw.Write(stream.Bytes()); err != nil {
		return err
	}
	if err := bw.Close(); err != nil {
		return err
	}

	type header struct {
		Signature           uint32
		Flavor              uint32
		Length              uint32
		NumTables           uint16
		Reserved            uint16
		TotalSfntSize       uint32
		TotalCompressedSize uint32
		MajorVersion        uint16
		MinorVersion        uint16
		MetaOffset          uint32
		MetaLength          uint32
		MetaOrigLength      uint32
		PrivOffset          uint32
		PrivLength          uint32
	}
	h := header{
		Signature:           woff2Signature,
		Flavor:              flavor,
		Length:              uint32(48 + dir.Len() + compressed.Len()),
		NumTables:           uint16(len(tables)),
		TotalSfntSize:       totalSfntSize,
		TotalCompressedSize: uint32(compressed.Len()),
		MajorVersion:        1,
	}

	if err := binary.Write(w, binary.BigEndian, h); err != nil {
		return err
	}
	if _, err := w.Write(dir.Bytes()); err != nil {
		return err
	}
	_, err = w.Write(compressed.Bytes())
	return err
}

// splitTables parses the sfnt table directory and returns the tables in
// file order.
func splitTables(fontData []byte) (uint32, []table, error) {
	if len(fontData) < 12 {
		return 0, nil, errTruncated
	}
	flavor := binary.BigEndian.Uint32(fontData)
	switch flavor {
	case 0x00010000, 0x4F54544F, 0x74727565: // TrueType, "OTTO", "true"
		// pass
	default:
		return 0, nil, errNotSfnt
	}
	numTables := int(binary.BigEndian.Uint16(fontData[4:]))
	if numTables == 0 {
		return 0, nil, errNotSfnt
	}
	dirEnd := 12 + 16*numTables
	if len(fontData) < dirEnd {
		return 0, nil, errTruncated
	}

	tables := make([]table, numTables)
	for i := range tables {
		rec := fontData[12+16*i:]
		offset := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if offset < uint32(dirEnd) || uint64(offset)+uint64(length) > uint64(len(fontData)) {
			return 0, nil, fmt.Errorf("woff2: table %q out of bounds", rec[:4])
		}
		tables[i] = table{
			tag:    binary.BigEndian.Uint32(rec),
			data:   fontData[offset : offset+length],
			offset: offset,
		}
	}

	// The WOFF2 table directory must list tables in the order their data
	// appears in the file.
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].offset < tables[j].offset
	})
	return flavor, tables, nil
}

func writeDirEntry(buf *bytes.Buffer, t table) {
	idx := knownTableIndex(t.tag)
	flags := byte(idx)
	if tag := string([]byte{byte(t.tag >> 24), byte(t.tag >> 16), byte(t.tag >> 8), byte(t.tag)}); tag == "glyf" || tag == "loca" {
		// transformation version 3 is the null transform for glyf and loca
		flags |= 3 << 6
	}
	buf.WriteByte(flags)
	if idx == 63 {
		var tag [4]byte
		binary.BigEndian.PutUint32(tag[:], t.tag)
		buf.Write(tag[:])
	}
	writeBase128(buf, uint32(len(t.data)))
}

// knownTags lists the table tags which WOFF2 encodes as a directory index
// instead of a full four-byte tag.  The order is fixed by the WOFF2
// specification; index 63 marks an arbitrary tag.
var knownTags = [63]string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca", "prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern", "LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS", "GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL", "SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar", "fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar", "mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat", "Gloc", "Feat", "Sill",
}

var knownTagIndex = make(map[uint32]int)

func init() {
	for i, tag := range knownTags {
		knownTagIndex[binary.BigEndian.Uint32([]byte(tag))] = i
	}
}

func knownTableIndex(tag uint32) int {
	if i, ok := knownTagIndex[tag]; ok {
		return i
	}
	return 63
}

// writeBase128 appends x in the UIntBase128 encoding: big-endian groups
// of 7 bits, all but the last byte with the high bit set.
func writeBase128(buf *bytes.Buffer, x uint32) {
	var tmp [5]byte
	n := 0
	for {
		tmp[n] = byte(x & 0x7F)
		n++
		x >>= 7
		if x == 0 {
			break
		}
	}
	for i := n - 1; i > 0; i-- {
		buf.WriteByte(tmp[i] | 0x80)
	}
	buf.WriteByte(tmp[0])
}
