//go:build unix

package parser

import (
	"os"

	"golang.org/x/sys/unix"
)

// readFile mmaps path read-only on unix platforms and copies the mapped
// bytes into a fresh slice before unmapping. An empty file returns nil
// without mapping (unix.Mmap rejects a zero length). Falls back to a
// plain read on any mmap failure (e.g. the file lives on a filesystem
// that rejects mmap).
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return readFileFallback(path)
	}

	out := make([]byte, len(data))
	copy(out, data)
	_ = unix.Munmap(data)
	return out, nil
}
