package disk

// FirstDataSector returns the sector number of the first data cluster:
// everything before it is the reserved region followed by the FAT copies.
// FAT32 has no fixed root directory region, so no root-entry term appears.
func FirstDataSector(bs *BootSector, ext *Fat32Extension) uint32 {
	return uint32(bs.ReservedSectors) + uint32(bs.TableCount)*ext.TableSize32
}

// ClusterOffset returns the byte offset of the first sector of the given
// cluster. Cluster numbering starts at 2.
func ClusterOffset(bs *BootSector, ext *Fat32Extension, cluster uint32) int64 {
	sector := int64(FirstDataSector(bs, ext)) + int64(cluster-2)*int64(bs.SectorsPerCluster)
	return sector * int64(bs.BytesPerSector)
}

// RootDirOffset returns the byte offset of the root directory region.
func RootDirOffset(bs *BootSector, ext *Fat32Extension) int64 {
	return ClusterOffset(bs, ext, ext.RootCluster)
}
