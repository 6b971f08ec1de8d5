package util

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Section 7.3 - Protocol Handler Services
// Related Definitions
// Page 176

// Appendix A - GUID and Time Formats
// Page 2272

type EFIGUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]uint8
}

// Size of an EFI_GUID on the wire
const SizeofEFIGUID uint32 = 16

// Pretty print an EFIGUID struct
func (e *EFIGUID) Format() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%12x", e.Data1, e.Data2, e.Data3, e.Data4[:2], e.Data4[2:])
}

func (e EFIGUID) String() string {
	return uuid.UUID(e.canonical()).String()
}

// canonical returns the big endian RFC 4122 byte order used by the textual form.
func (e EFIGUID) canonical() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], e.Data1)
	binary.BigEndian.PutUint16(b[4:6], e.Data2)
	binary.BigEndian.PutUint16(b[6:8], e.Data3)
	copy(b[8:], e.Data4[:])
	return b
}

// Compare two EFIGUID structs
func CmpEFIGUID(cmp1 EFIGUID, cmp2 EFIGUID) bool {
	return cmp1.Data1 == cmp2.Data1 &&
		cmp1.Data2 == cmp2.Data2 &&
		cmp1.Data3 == cmp2.Data3 &&
		cmp1.Data4 == cmp2.Data4
}

// Convert a string to an EFIGUID
func StringToGUID(s string) (EFIGUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return EFIGUID{}, errors.Wrapf(err, "invalid GUID %q", s)
	}
	g := EFIGUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:])
	return g, nil
}

// MustGUID is StringToGUID for package level constants.
func MustGUID(s string) EFIGUID {
	g, err := StringToGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// GUIDFromBytes decodes the mixed endian EFI_GUID wire layout.
func GUIDFromBytes(b [16]byte) EFIGUID {
	g := EFIGUID{
		Data1: binary.LittleEndian.Uint32(b[0:4]),
		Data2: binary.LittleEndian.Uint16(b[4:6]),
		Data3: binary.LittleEndian.Uint16(b[6:8]),
	}
	copy(g.Data4[:], b[8:])
	return g
}

// Bytes returns the EFI_GUID wire layout.
func (e EFIGUID) Bytes() []byte {
	b := make([]byte, SizeofEFIGUID)
	binary.LittleEndian.PutUint32(b[0:4], e.Data1)
	binary.LittleEndian.PutUint16(b[4:6], e.Data2)
	binary.LittleEndian.PutUint16(b[6:8], e.Data3)
	copy(b[8:], e.Data4[:])
	return b
}
