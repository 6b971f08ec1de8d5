// Package locator finds the raw EFI_IMAGE_EXECUTION_INFO_TABLE bytes the
// decoder walks.
//
// Linux does not publish this configuration table through sysfs, so the
// table is read from a dump taken from firmware (an EFI shell `dmem` dump
// or a memory image).
package locator

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var log = logrus.WithField("service", "locator")

// ErrNotFound means no table is present. Callers treat it as an empty table.
var ErrNotFound = errors.New("image execution info table not found")

// Table holds the located bytes until Close is called.
type Table struct {
	Data    []byte
	release func() error
}

// Close releases the table. Data must not be used afterwards.
func (t *Table) Close() error {
	if t == nil {
		return nil
	}
	t.Data = nil
	if t.release == nil {
		return nil
	}
	release := t.release
	t.release = nil
	return release()
}

// Locator supplies the table bytes.
type Locator interface {
	Locate() (*Table, error)
}

// File reads a table dump through an afero filesystem.
type File struct {
	Fs   afero.Fs
	Path string
}

var _ Locator = &File{}

func NewFile(path string) *File {
	return &File{Fs: afero.NewOsFs(), Path: path}
}

func (f *File) Locate() (*Table, error) {
	b, err := afero.ReadFile(f.Fs, f.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("no table at %s", f.Path)
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrapf(err, "could not read table from %s", f.Path)
	}
	if len(b) == 0 {
		return nil, ErrNotFound
	}
	log.Tracef("read %d bytes from %s", len(b), f.Path)
	return &Table{Data: b}, nil
}
