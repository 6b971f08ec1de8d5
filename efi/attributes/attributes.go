package attributes

import (
	"encoding/binary"
	"errors"
	"strings"
)

// Section 8.2 Variable Services
type Attributes uint32

var SizeofAttributes = 4

const (
	EFI_VARIABLE_NON_VOLATILE                          Attributes = 0x00000001
	EFI_VARIABLE_BOOTSERVICE_ACCESS                    Attributes = 0x00000002
	EFI_VARIABLE_RUNTIME_ACCESS                        Attributes = 0x00000004
	EFI_VARIABLE_HARDWARE_ERROR_RECORD                 Attributes = 0x00000008
	EFI_VARIABLE_AUTHENTICATED_WRITE_ACCESS            Attributes = 0x00000010 // Deprecated, we only reserve it
	EFI_VARIABLE_TIME_BASED_AUTHENTICATED_WRITE_ACCESS Attributes = 0x00000020
	EFI_VARIABLE_APPEND_WRITE                          Attributes = 0x00000040
	EFI_VARIABLE_ENHANCED_AUTHENTICATED_ACCESS         Attributes = 0x00000080 // Uses the EFI_VARIABLE_AUTHENTICATION_3 struct
)

// NV -> Non-Volatile
// BS -> Boot Services
// RT -> Runtime Services
// AT -> Time Based Authenticated Write Access
var shortNames = []struct {
	attr Attributes
	name string
}{
	{EFI_VARIABLE_NON_VOLATILE, "NV"},
	{EFI_VARIABLE_BOOTSERVICE_ACCESS, "BS"},
	{EFI_VARIABLE_RUNTIME_ACCESS, "RT"},
	{EFI_VARIABLE_HARDWARE_ERROR_RECORD, "HR"},
	{EFI_VARIABLE_AUTHENTICATED_WRITE_ACCESS, "AW"},
	{EFI_VARIABLE_TIME_BASED_AUTHENTICATED_WRITE_ACCESS, "AT"},
	{EFI_VARIABLE_APPEND_WRITE, "AP"},
	{EFI_VARIABLE_ENHANCED_AUTHENTICATED_ACCESS, "EA"},
}

// Efivarfs mount point
var Efivars = "/sys/firmware/efi/efivars"

var ErrShortVariable = errors.New("efivarfs file is shorter than the attribute header")

func (a Attributes) Equal(b Attributes) bool {
	return a == b
}

func (a Attributes) String() string {
	var names []string
	for _, n := range shortNames {
		if a&n.attr != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseEfivars splits an efivarfs file into its attributes and the variable
// data. The data is a view into b.
func ParseEfivars(b []byte) (Attributes, []byte, error) {
	if len(b) < SizeofAttributes {
		return 0, nil, ErrShortVariable
	}
	attrs := Attributes(binary.LittleEndian.Uint32(b[:SizeofAttributes]))
	return attrs, b[SizeofAttributes:], nil
}
