// Copyright (c) 2025 The fatlens authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package disk

import (
	"bytes"
	"strings"
)

// DirEntrySize is the size of one raw directory slot.
const DirEntrySize = 32

// Slot markers.
const (
	// AttrLongName in byte 11 marks a slot as a long-file-name fragment.
	AttrLongName = 0x0F

	// DeletedFlag in the first byte marks a deleted slot.
	DeletedFlag = 0xE5

	// endOfDirectory in the first byte terminates the directory region.
	endOfDirectory = 0x00
)

// Directory entry attribute bits.
const (
	AttrReadOnly = 0x01
	AttrHidden   = 0x02
	AttrSystem   = 0x04
	AttrVolume   = 0x08
	AttrDir      = 0x10
	AttrArchive  = 0x20
)

// Long-name sequence byte layout.
const (
	seqOrdinalMask = 0x3F // low bits carry the 1-based fragment order
	seqLastFlag    = 0x40 // set on the highest-order fragment of a group
)

// fragmentChars is the number of UCS-2 name slots carried by one fragment.
const fragmentChars = 13

// ShortDirEntry is a legacy 8.3 directory entry, stored raw.
type ShortDirEntry struct {
	Name           [11]byte // space-padded name+extension, no embedded dot
	Attributes     uint8
	Reserved       uint8
	CreatedTenths  uint8 // creation time, tenths of a second
	CreatedTime    uint16
	CreatedDate    uint16
	LastAccessDate uint16
	ClusterHigh    uint16 // bits 16-31 of the starting cluster
	ModifiedTime   uint16
	ModifiedDate   uint16
	ClusterLow     uint16 // bits 0-15 of the starting cluster
	FileSize       uint32
}

// LongNameFragment is one auxiliary long-file-name slot. Fragments are
// written on disk in descending order, highest order number first, ending
// at order 1 immediately before their terminating short entry. Each
// fragment carries up to 13 UCS-2 name characters.
type LongNameFragment struct {
	Sequence  uint8    // raw order byte, flag bits included
	First5    [10]byte // UCS-2 characters 1-5
	Attribute uint8    // always AttrLongName
	EntryType uint8    // always 0 for name fragments
	Checksum  uint8    // checksum of the paired short name
	Next6     [12]byte // UCS-2 characters 6-11
	Zeros     [2]byte
	Final2    [4]byte // UCS-2 characters 12-13
}

// Seq returns the fragment's order within its group, flag bits stripped.
func (f *LongNameFragment) Seq() int {
	return int(f.Sequence & seqOrdinalMask)
}

// IsLast reports whether the fragment carries the end-of-sequence flag,
// i.e. it is the highest-order fragment of its group and therefore the
// first one encountered on disk.
func (f *LongNameFragment) IsLast() bool {
	return f.Sequence&seqLastFlag != 0
}

// chars appends the fragment's 13 name characters to dst, reading only the
// low byte of each UCS-2 code unit. Non-Latin names lose their high byte.
func (f *LongNameFragment) chars(dst []byte) []byte {
	for i := 0; i < len(f.First5); i += 2 {
		dst = append(dst, f.First5[i])
	}
	for i := 0; i < len(f.Next6); i += 2 {
		dst = append(dst, f.Next6[i])
	}
	for i := 0; i < len(f.Final2); i += 2 {
		dst = append(dst, f.Final2[i])
	}
	return dst
}

// DecodeShortDirEntry parses one raw slot as an 8.3 directory entry.
func DecodeShortDirEntry(slot []byte) (ShortDirEntry, error) {
	if len(slot) < DirEntrySize {
		return ShortDirEntry{}, truncated("directory entry", DirEntrySize, len(slot))
	}

	var e ShortDirEntry
	copy(e.Name[:], slot[0:11])
	e.Attributes = slot[11]
	e.Reserved = slot[12]
	e.CreatedTenths = slot[13]
	e.CreatedTime = le16(slot[14:16])
	e.CreatedDate = le16(slot[16:18])
	e.LastAccessDate = le16(slot[18:20])
	e.ClusterHigh = le16(slot[20:22])
	e.ModifiedTime = le16(slot[22:24])
	e.ModifiedDate = le16(slot[24:26])
	e.ClusterLow = le16(slot[26:28])
	e.FileSize = le32(slot[28:32])
	return e, nil
}

// DecodeLongNameFragment parses one raw slot as a long-file-name fragment.
// The sequence byte is kept intact, flags included.
func DecodeLongNameFragment(slot []byte) (LongNameFragment, error) {
	if len(slot) < DirEntrySize {
		return LongNameFragment{}, truncated("long-name fragment", DirEntrySize, len(slot))
	}

	var f LongNameFragment
	f.Sequence = slot[0]
	copy(f.First5[:], slot[1:11])
	f.Attribute = slot[11]
	f.EntryType = slot[12]
	f.Checksum = slot[13]
	copy(f.Next6[:], slot[14:26])
	copy(f.Zeros[:], slot[26:28])
	copy(f.Final2[:], slot[28:32])
	return f, nil
}

// IsLongNameSlot reports whether a raw slot holds a long-name fragment.
func IsLongNameSlot(slot []byte) bool {
	return len(slot) > 11 && slot[11] == AttrLongName
}

// LogicalDirEntry is one reassembled directory entry: the long-name
// fragments that preceded a short entry on disk, paired with that entry.
// The fragment list is ordered so that concatenating the fragments'
// characters yields the name left to right.
type LogicalDirEntry struct {
	Fragments []LongNameFragment
	Short     ShortDirEntry
	Deleted   bool
}

// Name reconstructs the entry's file name from its long-name fragments.
// Trailing 0x0000 terminators and 0xFFFF fill characters are stripped and
// invalid UTF-8 sequences are replaced. Entries without fragments fall
// back to the 8.3 name.
func (e *LogicalDirEntry) Name() string {
	if len(e.Fragments) == 0 {
		return shortName(e.Short.Name)
	}

	raw := make([]byte, 0, len(e.Fragments)*fragmentChars)
	for i := range e.Fragments {
		raw = e.Fragments[i].chars(raw)
	}
	raw = bytes.TrimRight(raw, "\xFF")
	raw = bytes.TrimRight(raw, "\x00")
	return strings.ToValidUTF8(string(raw), "�")
}

// Cluster returns the 32-bit starting cluster number, composed from the
// high and low 16-bit words of the short entry.
func (e *LogicalDirEntry) Cluster() uint32 {
	return uint32(e.Short.ClusterHigh)<<16 | uint32(e.Short.ClusterLow)
}

// Size returns the file size in bytes. Zero denotes a directory or an
// empty file.
func (e *LogicalDirEntry) Size() uint32 {
	return e.Short.FileSize
}

// IsDir reports whether the directory attribute bit is set.
func (e *LogicalDirEntry) IsDir() bool {
	return e.Short.Attributes&AttrDir != 0
}

// CreatedAt renders the entry's creation timestamp.
func (e *LogicalDirEntry) CreatedAt() string {
	return FormatDateTime(e.Short.CreatedDate, e.Short.CreatedTime)
}

// ModifiedAt renders the entry's last-modified timestamp.
func (e *LogicalDirEntry) ModifiedAt() string {
	return FormatDateTime(e.Short.ModifiedDate, e.Short.ModifiedTime)
}

// shortName converts a space-padded 11-byte 8.3 name to "NAME.EXT" form.
func shortName(raw [11]byte) string {
	base := strings.TrimRight(string(raw[0:8]), " ")
	ext := strings.TrimRight(string(raw[8:11]), " ")
	if ext == "" {
		return base
	}
	return base + "." + ext
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
