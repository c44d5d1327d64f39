// Package input loads BIOS update executables for scanning. Files are
// mapped read-only where the platform allows it, with a plain read
// fallback, so multi-hundred-megabyte vendor blobs do not have to be
// copied just to be searched for a container signature.
package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var ErrTooLarge = errors.New("input file does not fit in memory on this architecture")

// File is a loaded input buffer. It must be closed to release any
// mapping; slices of Data must not be retained after Close.
type File struct {
	Path    string
	Data    []byte
	mmapped bool
}

// Open loads path read-only. mmap is preferred for zero-copy scanning;
// when unavailable the file is read into memory instead.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, ErrTooLarge
	}
	size := int(size64)

	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &File{Path: path, Data: data, mmapped: true}, nil
		}
	}

	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.Data = nil
	f.mmapped = false
	return err
}
