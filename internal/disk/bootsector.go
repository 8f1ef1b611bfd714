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
	"encoding/binary"
	"fmt"
	"strings"
)

// BootSectorSize is the length of the common BIOS Parameter Block region
// at the very start of a FAT volume.
const BootSectorSize = 36

// BootSector holds the common BPB fields shared by every FAT variant.
// All multi-byte values are little-endian on disk. On true FAT32 volumes
// TableSize16 and TotalSectors16 are zero by convention; the real values
// live in the Fat32Extension that follows.
type BootSector struct {
	BootJmp           [3]byte // 0x00 boot strap short or near jump
	OEMName           [8]byte // 0x03 OEM identifier
	BytesPerSector    uint16  // 0x0B bytes per logical sector
	SectorsPerCluster uint8   // 0x0D sectors per cluster
	ReservedSectors   uint16  // 0x0E reserved sector count
	TableCount        uint8   // 0x10 number of FATs
	RootEntryCount    uint16  // 0x11 root directory entries (0 on FAT32)
	TotalSectors16    uint16  // 0x13 total sectors (0 when the volume exceeds 16-bit range)
	MediaType         uint8   // 0x15 media descriptor
	TableSize16       uint16  // 0x16 sectors per FAT (0 on FAT32)
	SectorsPerTrack   uint16  // 0x18 sectors per track
	HeadCount         uint16  // 0x1A number of heads
	HiddenSectors     uint32  // 0x1C hidden sectors preceding the volume
	TotalSectors32    uint32  // 0x20 total sectors, 32-bit
}

// DecodeBootSector parses the first BootSectorSize bytes of a volume.
// No signature or range validation is performed: a malformed window still
// decodes into a structurally valid record. Only the window length is
// checked.
func DecodeBootSector(data []byte) (*BootSector, error) {
	if len(data) < BootSectorSize {
		return nil, truncated("boot sector", BootSectorSize, len(data))
	}

	var bs BootSector
	copy(bs.BootJmp[:], data[0:3])
	copy(bs.OEMName[:], data[3:11])
	bs.BytesPerSector = binary.LittleEndian.Uint16(data[11:13])
	bs.SectorsPerCluster = data[13]
	bs.ReservedSectors = binary.LittleEndian.Uint16(data[14:16])
	bs.TableCount = data[16]
	bs.RootEntryCount = binary.LittleEndian.Uint16(data[17:19])
	bs.TotalSectors16 = binary.LittleEndian.Uint16(data[19:21])
	bs.MediaType = data[21]
	bs.TableSize16 = binary.LittleEndian.Uint16(data[22:24])
	bs.SectorsPerTrack = binary.LittleEndian.Uint16(data[24:26])
	bs.HeadCount = binary.LittleEndian.Uint16(data[26:28])
	bs.HiddenSectors = binary.LittleEndian.Uint32(data[28:32])
	bs.TotalSectors32 = binary.LittleEndian.Uint32(data[32:36])
	return &bs, nil
}

// TotalSectors returns the 16-bit sector count when set, and the 32-bit
// count otherwise.
func (b *BootSector) TotalSectors() uint32 {
	if b.TotalSectors16 != 0 {
		return uint32(b.TotalSectors16)
	}
	return b.TotalSectors32
}

// String provides a human-readable representation of the boot sector.
func (b *BootSector) String() string {
	return fmt.Sprintf("--- Boot Sector (BPB) ---\n"+
		"OEM Name: %s\n"+
		"Bytes Per Sector: %d\n"+
		"Sectors Per Cluster: %d\n"+
		"Reserved Sectors: %d\n"+
		"Number of FATs: %d\n"+
		"Root Dir Entries: %d\n"+
		"Total Sectors (16-bit): %d\n"+
		"Media Type: 0x%02X\n"+
		"FAT Size (16-bit): %d\n"+
		"Sectors Per Track: %d\n"+
		"Heads: %d\n"+
		"Hidden Sectors: %d\n"+
		"Total Sectors (32-bit): %d",
		strings.TrimRight(string(b.OEMName[:]), " "),
		b.BytesPerSector, b.SectorsPerCluster, b.ReservedSectors,
		b.TableCount, b.RootEntryCount, b.TotalSectors16, b.MediaType,
		b.TableSize16, b.SectorsPerTrack, b.HeadCount,
		b.HiddenSectors, b.TotalSectors32)
}
