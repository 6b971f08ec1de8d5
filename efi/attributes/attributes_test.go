package attributes

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseEfivars(t *testing.T) {
	attrs, data, err := ParseEfivars([]byte{0x27, 0, 0, 0, 0xaa, 0xbb})
	if err != nil {
		t.Fatal(err)
	}
	var pkflags Attributes
	pkflags |= EFI_VARIABLE_NON_VOLATILE
	pkflags |= EFI_VARIABLE_BOOTSERVICE_ACCESS
	pkflags |= EFI_VARIABLE_RUNTIME_ACCESS
	pkflags |= EFI_VARIABLE_TIME_BASED_AUTHENTICATED_WRITE_ACCESS
	if !attrs.Equal(pkflags) {
		t.Errorf("Incorrect bitmask")
	}
	if !bytes.Equal(data, []byte{0xaa, 0xbb}) {
		t.Fatalf("unexpected data %x", data)
	}
	if attrs.String() != "NV|BS|RT|AT" {
		t.Fatalf("unexpected string %q", attrs.String())
	}
}

func TestParseEfivarsShort(t *testing.T) {
	if _, _, err := ParseEfivars([]byte{0x07, 0}); !errors.Is(err, ErrShortVariable) {
		t.Fatalf("expected ErrShortVariable, got %v", err)
	}
}
