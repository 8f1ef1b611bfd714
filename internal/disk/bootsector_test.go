package disk_test

import (
	"encoding/binary"
	"testing"

	"github.com/okaidia/fatlens/internal/disk"
	"github.com/stretchr/testify/require"
)

// encodeBootSector is the inverse of DecodeBootSector, used to verify that
// little-endian field composition round-trips the raw window exactly.
func encodeBootSector(bs *disk.BootSector) []byte {
	buf := make([]byte, disk.BootSectorSize)
	copy(buf[0:3], bs.BootJmp[:])
	copy(buf[3:11], bs.OEMName[:])
	binary.LittleEndian.PutUint16(buf[11:13], bs.BytesPerSector)
	buf[13] = bs.SectorsPerCluster
	binary.LittleEndian.PutUint16(buf[14:16], bs.ReservedSectors)
	buf[16] = bs.TableCount
	binary.LittleEndian.PutUint16(buf[17:19], bs.RootEntryCount)
	binary.LittleEndian.PutUint16(buf[19:21], bs.TotalSectors16)
	buf[21] = bs.MediaType
	binary.LittleEndian.PutUint16(buf[22:24], bs.TableSize16)
	binary.LittleEndian.PutUint16(buf[24:26], bs.SectorsPerTrack)
	binary.LittleEndian.PutUint16(buf[26:28], bs.HeadCount)
	binary.LittleEndian.PutUint32(buf[28:32], bs.HiddenSectors)
	binary.LittleEndian.PutUint32(buf[32:36], bs.TotalSectors32)
	return buf
}

func TestDecodeBootSector(t *testing.T) {
	window := make([]byte, disk.BootSectorSize)
	copy(window[0:3], []byte{0xEB, 0x58, 0x90})
	copy(window[3:11], "mkfs.fat")
	binary.LittleEndian.PutUint16(window[11:13], 512)
	window[13] = 8
	binary.LittleEndian.PutUint16(window[14:16], 32)
	window[16] = 2
	binary.LittleEndian.PutUint16(window[17:19], 0)
	binary.LittleEndian.PutUint16(window[19:21], 0)
	window[21] = 0xF8
	binary.LittleEndian.PutUint16(window[22:24], 0)
	binary.LittleEndian.PutUint16(window[24:26], 63)
	binary.LittleEndian.PutUint16(window[26:28], 255)
	binary.LittleEndian.PutUint32(window[28:32], 2048)
	binary.LittleEndian.PutUint32(window[32:36], 262144)

	bs, err := disk.DecodeBootSector(window)
	require.NoError(t, err)

	require.Equal(t, uint16(512), bs.BytesPerSector)
	require.Equal(t, uint8(8), bs.SectorsPerCluster)
	require.Equal(t, uint16(32), bs.ReservedSectors)
	require.Equal(t, uint8(2), bs.TableCount)
	require.Equal(t, uint16(0), bs.RootEntryCount)
	require.Equal(t, uint16(0), bs.TotalSectors16)
	require.Equal(t, uint8(0xF8), bs.MediaType)
	require.Equal(t, uint16(0), bs.TableSize16)
	require.Equal(t, uint16(63), bs.SectorsPerTrack)
	require.Equal(t, uint16(255), bs.HeadCount)
	require.Equal(t, uint32(2048), bs.HiddenSectors)
	require.Equal(t, uint32(262144), bs.TotalSectors32)
	require.Equal(t, uint32(262144), bs.TotalSectors())
}

func TestDecodeBootSector_RoundTrip(t *testing.T) {
	window := make([]byte, disk.BootSectorSize)
	for i := range window {
		window[i] = byte(i*7 + 3)
	}

	bs, err := disk.DecodeBootSector(window)
	require.NoError(t, err)
	require.Equal(t, window, encodeBootSector(bs))
}

func TestDecodeBootSector_Truncated(t *testing.T) {
	for _, n := range []int{0, 1, 35} {
		_, err := disk.DecodeBootSector(make([]byte, n))
		require.ErrorIs(t, err, disk.ErrTruncatedInput)
	}
}

func TestBootSector_TotalSectorsPrefers16Bit(t *testing.T) {
	bs := &disk.BootSector{TotalSectors16: 1024, TotalSectors32: 99}
	require.Equal(t, uint32(1024), bs.TotalSectors())
}
