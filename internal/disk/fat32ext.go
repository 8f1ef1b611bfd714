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

// Fat32ExtensionSize is the length of the FAT32-specific extended BPB,
// located immediately after the common boot sector region.
const Fat32ExtensionSize = 54

// BootSignatureValid is the extended boot signature value indicating that
// the volume id, label and type fields were written.
const BootSignatureValid = 0x29

// Fat32Extension holds the FAT32-specific extended BPB fields
// (volume bytes 36-89). All multi-byte values are little-endian on disk.
type Fat32Extension struct {
	TableSize32   uint32   // 0x00 sectors per FAT
	ExtFlags      uint16   // 0x04 bit 7: mirroring disabled, low 4 bits: active FAT
	Version       uint16   // 0x06 filesystem version (major, minor)
	RootCluster   uint32   // 0x08 first cluster of the root directory
	FSInfoSector  uint16   // 0x0C FSInfo sector number
	BackupBoot    uint16   // 0x0E backup boot sector number
	Reserved      [12]byte // 0x10 unused
	DriveNumber   uint8    // 0x1C BIOS drive number
	Reserved1     uint8    // 0x1D unused
	BootSignature uint8    // 0x1E extended boot signature (0x29 when labels are valid)
	VolumeID      uint32   // 0x1F volume serial number
	VolumeLabel   [11]byte // 0x23 volume label, space-padded
	TypeLabel     [8]byte  // 0x2E filesystem type label ("FAT32   ")
}

// DecodeFat32Extension parses the Fat32ExtensionSize bytes following the
// common boot sector region. Like DecodeBootSector it checks only the
// window length, never field contents.
func DecodeFat32Extension(data []byte) (*Fat32Extension, error) {
	if len(data) < Fat32ExtensionSize {
		return nil, truncated("FAT32 extension", Fat32ExtensionSize, len(data))
	}

	var ext Fat32Extension
	ext.TableSize32 = binary.LittleEndian.Uint32(data[0:4])
	ext.ExtFlags = binary.LittleEndian.Uint16(data[4:6])
	ext.Version = binary.LittleEndian.Uint16(data[6:8])
	ext.RootCluster = binary.LittleEndian.Uint32(data[8:12])
	ext.FSInfoSector = binary.LittleEndian.Uint16(data[12:14])
	ext.BackupBoot = binary.LittleEndian.Uint16(data[14:16])
	copy(ext.Reserved[:], data[16:28])
	ext.DriveNumber = data[28]
	ext.Reserved1 = data[29]
	ext.BootSignature = data[30]
	ext.VolumeID = binary.LittleEndian.Uint32(data[31:35])
	copy(ext.VolumeLabel[:], data[35:46])
	copy(ext.TypeLabel[:], data[46:54])
	return &ext, nil
}

// Label returns the volume label with trailing padding removed.
func (e *Fat32Extension) Label() string {
	return strings.TrimRight(string(e.VolumeLabel[:]), " ")
}

// FSType returns the filesystem type label with trailing padding removed.
func (e *Fat32Extension) FSType() string {
	return strings.TrimRight(string(e.TypeLabel[:]), " ")
}

// String provides a human-readable representation of the FAT32 extension.
func (e *Fat32Extension) String() string {
	return fmt.Sprintf("--- FAT32 Extension ---\n"+
		"FAT Size (32-bit): %d\n"+
		"Extended Flags: 0x%04X\n"+
		"Filesystem Version: %d.%d\n"+
		"Root Directory Cluster: %d\n"+
		"FSInfo Sector: %d\n"+
		"Backup Boot Sector: %d\n"+
		"Drive Number: 0x%02X\n"+
		"Boot Signature: 0x%02X\n"+
		"Volume ID: 0x%08X\n"+
		"Volume Label: %s\n"+
		"Filesystem Type: %s",
		e.TableSize32, e.ExtFlags, e.Version>>8, e.Version&0xFF,
		e.RootCluster, e.FSInfoSector, e.BackupBoot,
		e.DriveNumber, e.BootSignature, e.VolumeID,
		e.Label(), e.FSType())
}
