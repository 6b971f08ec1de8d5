package locator

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Mmap maps a table dump read-only instead of copying it. The mapping is
// released by Table.Close.
type Mmap struct {
	Path string
}

var _ Locator = &Mmap{}

func (m *Mmap) Locate() (*Table, error) {
	f, err := os.Open(m.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrapf(err, "could not open %s", m.Path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", m.Path)
	}
	size := stat.Size()
	if size == 0 {
		return nil, ErrNotFound
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("%s is too large to map", m.Path)
	}
	b, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "could not map %s", m.Path)
	}
	log.Tracef("mapped %d bytes of %s", size, m.Path)
	return &Table{
		Data: b,
		release: func() error {
			return unix.Munmap(b)
		},
	}, nil
}
