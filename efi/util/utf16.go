package util

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
)

var ErrNotNullTerminated = errors.New("UTF-16 string is not null terminated")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16StringSize returns the byte length of the null terminated UTF-16
// string at the start of b, terminator included. Only even offsets are
// considered.
func UTF16StringSize(b []byte) (uint64, error) {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return uint64(i + 2), nil
		}
	}
	return 0, ErrNotNullTerminated
}

// DecodeUTF16 converts UTF-16LE to a Go string. A trailing terminator is
// dropped. Malformed surrogates become U+FFFD.
func DecodeUTF16(b []byte) (string, error) {
	if n := len(b); n >= 2 && b[n-2] == 0 && b[n-1] == 0 {
		b = b[:n-2]
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// ParseUtf16Var decodes the null terminated UTF-16 string at the start of b.
func ParseUtf16Var(b []byte) (string, error) {
	n, err := UTF16StringSize(b)
	if err != nil {
		return "", err
	}
	return DecodeUTF16(b[:n])
}

// EncodeUTF16 returns s as null terminated UTF-16LE.
func EncodeUTF16(s string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// The encoder replaces invalid runes, it does not fail on valid Go strings.
		panic(err)
	}
	return append(b, 0, 0)
}
