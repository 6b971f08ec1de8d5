package locator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/foxboron/go-execinfo/efi/efitest"
)

func TestFileLocate(t *testing.T) {
	table := efitest.Table(efitest.ImageRecord{Action: 2, Name: "loader.efi"})
	fs := efitest.NewFS().With(efitest.File("/tmp/execinfo.bin", table)).ToAfero()

	tbl, err := (&File{Fs: fs, Path: "/tmp/execinfo.bin"}).Locate()
	if err != nil {
		t.Fatal(err)
	}
	defer tbl.Close()
	if !bytes.Equal(tbl.Data, table) {
		t.Fatalf("unexpected table %x", tbl.Data)
	}
}

func TestFileNotFound(t *testing.T) {
	fs := efitest.NewFS().With(efitest.File("/tmp/empty.bin", nil)).ToAfero()
	for _, path := range []string{"/tmp/missing.bin", "/tmp/empty.bin"} {
		_, err := (&File{Fs: fs, Path: path}).Locate()
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", path, err)
		}
	}
}

func TestMmapLocate(t *testing.T) {
	table := efitest.Table(efitest.ImageRecord{Action: 2, Name: "loader.efi"})
	path := filepath.Join(t.TempDir(), "execinfo.bin")
	if err := os.WriteFile(path, table, 0644); err != nil {
		t.Fatal(err)
	}
	tbl, err := (&Mmap{Path: path}).Locate()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tbl.Data, table) {
		t.Fatalf("unexpected table %x", tbl.Data)
	}
	if err := tbl.Close(); err != nil {
		t.Fatal(err)
	}
	if tbl.Data != nil {
		t.Fatal("Close did not drop the mapping")
	}
	// Closing twice is a no-op
	if err := tbl.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMmapNotFound(t *testing.T) {
	_, err := (&Mmap{Path: filepath.Join(t.TempDir(), "missing.bin")}).Locate()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
