// Package efitest builds firmware fixtures for tests: efivarfs trees and
// image execution info tables.
package efitest

import (
	"path/filepath"
	"testing/fstest"

	"github.com/spf13/afero"
)

// Convert fstest.MapFS to afero.Fs
func FromMapFS(files fstest.MapFS) afero.Fs {
	memfs := afero.NewMemMapFs()
	for name, file := range files {
		memfs.MkdirAll(filepath.Dir(name), 0755)
		f, err := memfs.Create(name)
		if err != nil {
			continue
		}
		f.Write(file.Data)
		f.Close()
	}
	return memfs
}

type FSState struct {
	fs fstest.MapFS
}

func (f *FSState) ToAfero() afero.Fs {
	return FromMapFS(f.fs)
}

func (f *FSState) With(files ...fstest.MapFS) *FSState {
	for _, mapfs := range files {
		for path, file := range mapfs {
			f.fs[path] = file
		}
	}
	return f
}

func NewFS() *FSState {
	return &FSState{fs: fstest.MapFS{}}
}
