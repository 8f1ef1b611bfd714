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
package inspect

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/okaidia/fatlens/internal/disk"
	"github.com/okaidia/fatlens/internal/fs"
	"github.com/okaidia/fatlens/internal/logger"
	fmtutil "github.com/okaidia/fatlens/pkg/util/format"
)

const headerSize = disk.BootSectorSize + disk.Fat32ExtensionSize

// ReadVolumeHeader reads the first 90 bytes of the image and decodes both
// boot sector regions.
func ReadVolumeHeader(f fs.File) (*disk.BootSector, *disk.Fat32Extension, error) {
	var buf [headerSize]byte
	n, err := f.ReadAt(buf[:], 0)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("reading volume header: %w", err)
	}

	bs, err := disk.DecodeBootSector(buf[:min(n, disk.BootSectorSize)])
	if err != nil {
		return nil, nil, err
	}

	ext, err := disk.DecodeFat32Extension(buf[disk.BootSectorSize:n])
	if err != nil {
		return nil, nil, err
	}
	return bs, ext, nil
}

// Info decodes and prints the boot sector and FAT32 extension of the image
// at path, followed by geometry derived from the two headers.
func Info(path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image file %q: %w", path, err)
	}
	defer f.Close()

	bs, ext, err := ReadVolumeHeader(f)
	if err != nil {
		return err
	}

	fmt.Println(bs)
	fmt.Println()
	fmt.Println(ext)
	fmt.Println()
	printGeometry(bs, ext)
	return nil
}

// printGeometry derives volume geometry from the headers. Plain
// arithmetic over decoded fields: no FAT chains are followed.
func printGeometry(bs *disk.BootSector, ext *disk.Fat32Extension) {
	clusterSize := int64(bs.BytesPerSector) * int64(bs.SectorsPerCluster)
	fatRegion := int64(bs.TableCount) * int64(ext.TableSize32) * int64(bs.BytesPerSector)
	volumeSize := int64(bs.TotalSectors()) * int64(bs.BytesPerSector)

	fmt.Println("--- Derived Geometry ---")
	fmt.Printf("Volume Size: %s\n", fmtutil.FormatBytes(volumeSize))
	fmt.Printf("Cluster Size: %s\n", fmtutil.FormatBytes(clusterSize))
	fmt.Printf("FAT Region: %s\n", fmtutil.FormatBytes(fatRegion))
	fmt.Printf("First Data Sector: %d\n", disk.FirstDataSector(bs, ext))
	fmt.Printf("Root Directory Offset: %d\n", disk.RootDirOffset(bs, ext))
}

// ListOptions configures a directory listing.
type ListOptions struct {
	// Offset is the byte offset of the directory region. A negative
	// value means "the root directory", located via the volume headers.
	Offset int64

	// Entries is the maximum number of 32-byte slots to examine.
	Entries int

	// ShowDeleted includes slots whose first byte is 0xE5.
	ShowDeleted bool

	LogLevel logger.Level
}

// List scans a directory region of the image at path and prints one line
// per logical entry: size in KiB, creation timestamp, reconstructed name
// and starting cluster. When the scan fails partway, the complete entries
// found so far are still printed before the error is returned.
func List(path string, opts ListOptions) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image file %q: %w", path, err)
	}
	defer f.Close()

	log := logger.New(os.Stderr, opts.LogLevel)

	offset := opts.Offset
	if offset < 0 {
		bs, ext, err := ReadVolumeHeader(f)
		if err != nil {
			return err
		}
		offset = disk.RootDirOffset(bs, ext)
		log.Debugf("root directory located at byte offset %d", offset)
	}

	region := io.NewSectionReader(f, offset, int64(opts.Entries)*disk.DirEntrySize)
	entries, scanErr := disk.NewDirScanner(log).Scan(region, opts.Entries)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCREATED\tNAME\tCLUSTER")

	shown := 0
	for i := range entries {
		e := &entries[i]
		if e.Deleted && !opts.ShowDeleted {
			continue
		}

		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		if e.Deleted {
			name += " (deleted)"
		}
		fmt.Fprintf(w, "%dK\t%s\t%s\t%d\n", e.Size()/1024, e.CreatedAt(), name, e.Cluster())
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("[INFO] %d entries decoded (%d shown) at offset %d\n", len(entries), shown, offset)
	return scanErr
}
