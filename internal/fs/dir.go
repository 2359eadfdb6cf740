//go:build linux || darwin

package fs

import (
	"encoding/binary"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const direntBufSize = 8192

var (
	direntInoOff    = int(unsafe.Offsetof(unix.Dirent{}.Ino))
	direntReclenOff = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
	direntNameOff   = int(unsafe.Offsetof(unix.Dirent{}.Name))
)

// Dir is an open directory read with the raw getdents family of syscalls.
// Unlike os.ReadDir it yields the "." and ".." entries; callers filter them.
type Dir struct {
	Path string

	fd  int
	buf []byte
	pos int
	end int
}

// OpenDir opens path for entry enumeration.
func OpenDir(path string) (*Dir, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return &Dir{
		Path: path,
		fd:   fd,
		buf:  make([]byte, direntBufSize),
	}, nil
}

// Next returns the next entry name in the order the kernel yields them.
// It returns io.EOF once the directory is exhausted.
func (d *Dir) Next() (string, error) {
	for {
		if d.pos >= d.end {
			n, err := unix.ReadDirent(d.fd, d.buf)
			if err != nil {
				return "", &os.PathError{Op: "readdirent", Path: d.Path, Err: err}
			}
			if n <= 0 {
				return "", io.EOF
			}
			d.pos, d.end = 0, n
		}

		name, reclen, ok := parseDirent(d.buf[d.pos:d.end])
		if !ok {
			// Truncated record; drop the rest of this buffer.
			d.pos = d.end
			continue
		}
		d.pos += reclen
		if name != "" {
			return name, nil
		}
	}
}

// Close releases the directory descriptor.
func (d *Dir) Close() error {
	if d.fd < 0 {
		return os.ErrClosed
	}
	err := unix.Close(d.fd)
	d.fd = -1
	if err != nil {
		return &os.PathError{Op: "close", Path: d.Path, Err: err}
	}
	return nil
}

// parseDirent decodes the record at the start of buf. A record with a zero
// inode is a deleted entry and comes back with an empty name.
func parseDirent(buf []byte) (name string, reclen int, ok bool) {
	if len(buf) < direntNameOff {
		return "", 0, false
	}
	reclen = int(binary.NativeEndian.Uint16(buf[direntReclenOff:]))
	if reclen == 0 || reclen > len(buf) || reclen < direntNameOff {
		return "", 0, false
	}
	if binary.NativeEndian.Uint64(buf[direntInoOff:]) == 0 {
		return "", reclen, true
	}
	raw := buf[direntNameOff:reclen]
	for i, b := range raw {
		if b == 0 {
			raw = raw[:i]
			break
		}
	}
	return string(raw), reclen, true
}
