package disk_test

import (
	"encoding/binary"
	"testing"

	"github.com/okaidia/fatlens/internal/disk"
	"github.com/stretchr/testify/require"
)

// shortSlot builds a raw 32-byte 8.3 directory slot.
func shortSlot(name83 string, attrs byte, cluster uint32, size uint32, cdate, ctime uint16) []byte {
	slot := make([]byte, disk.DirEntrySize)
	copy(slot[0:11], "           ")
	copy(slot[0:11], name83)
	slot[11] = attrs
	binary.LittleEndian.PutUint16(slot[14:16], ctime)
	binary.LittleEndian.PutUint16(slot[16:18], cdate)
	binary.LittleEndian.PutUint16(slot[20:22], uint16(cluster>>16))
	binary.LittleEndian.PutUint16(slot[26:28], uint16(cluster&0xFFFF))
	binary.LittleEndian.PutUint32(slot[28:32], size)
	return slot
}

// lfnCharOffsets are the byte positions of the 13 UCS-2 name slots within
// one long-name fragment (5 + 6 + 2 characters).
var lfnCharOffsets = []int{1, 3, 5, 7, 9, 14, 16, 18, 20, 22, 24, 28, 30}

// lfnSlot builds a raw 32-byte long-name fragment slot holding up to 13
// ASCII characters, NUL-terminated and 0xFFFF-padded like real volumes.
func lfnSlot(seq byte, chars string) []byte {
	slot := make([]byte, disk.DirEntrySize)
	slot[0] = seq
	slot[11] = disk.AttrLongName
	for i, off := range lfnCharOffsets {
		switch {
		case i < len(chars):
			slot[off] = chars[i]
		case i == len(chars):
			// UCS-2 NUL terminator, both bytes zero.
		default:
			slot[off], slot[off+1] = 0xFF, 0xFF
		}
	}
	return slot
}

func TestDecodeShortDirEntry(t *testing.T) {
	slot := shortSlot("README  TXT", disk.AttrArchive, 0x00020005, 4096, packDate(37, 6, 15), packTime(10, 30, 0))

	e, err := disk.DecodeShortDirEntry(slot)
	require.NoError(t, err)

	require.Equal(t, "README  TXT", string(e.Name[:]))
	require.Equal(t, uint8(disk.AttrArchive), e.Attributes)
	require.Equal(t, uint16(0x0002), e.ClusterHigh)
	require.Equal(t, uint16(0x0005), e.ClusterLow)
	require.Equal(t, uint32(4096), e.FileSize)
}

func TestDecodeShortDirEntry_Truncated(t *testing.T) {
	_, err := disk.DecodeShortDirEntry(make([]byte, 31))
	require.ErrorIs(t, err, disk.ErrTruncatedInput)
}

func TestLogicalDirEntry_Cluster(t *testing.T) {
	// High word from raw bytes [0x02 0x00], low word from [0x05 0x00]:
	// the high word occupies bits 16-31.
	slot := make([]byte, disk.DirEntrySize)
	slot[0] = 'A'
	slot[20], slot[21] = 0x02, 0x00
	slot[26], slot[27] = 0x05, 0x00

	short, err := disk.DecodeShortDirEntry(slot)
	require.NoError(t, err)

	e := disk.LogicalDirEntry{Short: short}
	require.Equal(t, uint32(0x00020005), e.Cluster())
}

func TestLogicalDirEntry_Size(t *testing.T) {
	slot := make([]byte, disk.DirEntrySize)
	slot[0] = 'A'
	copy(slot[28:32], []byte{0x00, 0x10, 0x00, 0x00})

	short, err := disk.DecodeShortDirEntry(slot)
	require.NoError(t, err)

	e := disk.LogicalDirEntry{Short: short}
	require.Equal(t, uint32(4096), e.Size())
}

func TestLogicalDirEntry_ShortNameFallback(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"README  TXT", "README.TXT"},
		{"KERNEL8 IMG", "KERNEL8.IMG"},
		{"BOOT       ", "BOOT"},
		{"A       B  ", "A.B"},
	}

	for _, tt := range tests {
		short, err := disk.DecodeShortDirEntry(shortSlot(tt.raw, 0, 0, 0, 0, 0))
		require.NoError(t, err)

		e := disk.LogicalDirEntry{Short: short}
		require.Equal(t, tt.want, e.Name())
	}
}

func TestDecodeLongNameFragment(t *testing.T) {
	slot := lfnSlot(0x42, "TXT")

	f, err := disk.DecodeLongNameFragment(slot)
	require.NoError(t, err)

	require.Equal(t, uint8(0x42), f.Sequence)
	require.Equal(t, 2, f.Seq())
	require.True(t, f.IsLast())
	require.Equal(t, uint8(disk.AttrLongName), f.Attribute)

	f2, err := disk.DecodeLongNameFragment(lfnSlot(0x01, "LONGFILENAME."))
	require.NoError(t, err)
	require.Equal(t, 1, f2.Seq())
	require.False(t, f2.IsLast())
}

func TestIsLongNameSlot(t *testing.T) {
	require.True(t, disk.IsLongNameSlot(lfnSlot(0x41, "A")))
	require.False(t, disk.IsLongNameSlot(shortSlot("README  TXT", disk.AttrArchive, 0, 0, 0, 0)))
}
