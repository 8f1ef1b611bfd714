package disk_test

import (
	"testing"

	"github.com/okaidia/fatlens/internal/disk"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	bs := &disk.BootSector{
		BytesPerSector:    512,
		SectorsPerCluster: 8,
		ReservedSectors:   32,
		TableCount:        2,
	}
	ext := &disk.Fat32Extension{
		TableSize32: 100,
		RootCluster: 2,
	}

	require.Equal(t, uint32(232), disk.FirstDataSector(bs, ext))
	require.Equal(t, int64(232*512), disk.RootDirOffset(bs, ext))

	// Cluster 3 starts one cluster (8 sectors) past the data region.
	require.Equal(t, int64((232+8)*512), disk.ClusterOffset(bs, ext, 3))
}
