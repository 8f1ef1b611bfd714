// Package fs opens disk images and raw volumes as seekable byte sources.
// On unix a plain os.File suffices; windows raw volumes need aligned reads
// through the win32 API.
package fs

import (
	"io"
	"os"
)

type File interface {
	io.ReadCloser
	io.ReaderAt
	Stat() (os.FileInfo, error)
}
