package util

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Section 8.2 - Time Services

var (
	EFI_TIME_ADJUST_DAYLIGHT uint8  = 0x01
	EFI_TIME_IN_DAYLIGHT     uint8  = 0x02
	EFI_UNSPECIFIED_TIMEZONE int16  = 0x07FF
	SizeofEFITime            uint32 = 16
)

type EFITime struct {
	Year       uint16 // 1900 - 9999 AKA Y99K y'all
	Month      uint8  // 1-12
	Day        uint8  // 1 -31
	Hour       uint8  // 0 - 23
	Minute     uint8  // 0 - 59
	Second     uint8  // 0 - 59
	Pad1       uint8
	Nanosecond uint32 // 0 - 999,999,999
	TimeZone   int16  // -1440 to 1440 or 2047
	Daylight   uint8
	Pad2       uint8
}

// ReadEFITime decodes an EFI_TIME from the first 16 bytes of b.
func ReadEFITime(b []byte) (EFITime, error) {
	c := NewCursor(b)
	raw, err := c.Read(uint64(SizeofEFITime))
	if err != nil {
		return EFITime{}, err
	}
	return EFITime{
		Year:       binary.LittleEndian.Uint16(raw[0:2]),
		Month:      raw[2],
		Day:        raw[3],
		Hour:       raw[4],
		Minute:     raw[5],
		Second:     raw[6],
		Pad1:       raw[7],
		Nanosecond: binary.LittleEndian.Uint32(raw[8:12]),
		TimeZone:   int16(binary.LittleEndian.Uint16(raw[12:14])),
		Daylight:   raw[14],
		Pad2:       raw[15],
	}, nil
}

func (e *EFITime) Format() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second)
}

// IsZero reports whether every field is unset. dbx entries use this for
// revocations without a time.
func (e *EFITime) IsZero() bool {
	return *e == EFITime{}
}

// Time converts to time.Time. An unspecified timezone is treated as UTC.
func (e *EFITime) Time() time.Time {
	loc := time.UTC
	if e.TimeZone != EFI_UNSPECIFIED_TIMEZONE && e.TimeZone != 0 {
		// TimeZone is the offset from UTC in minutes, local = UTC - TimeZone
		loc = time.FixedZone("", -int(e.TimeZone)*60)
	}
	return time.Date(int(e.Year), time.Month(e.Month), int(e.Day),
		int(e.Hour), int(e.Minute), int(e.Second), int(e.Nanosecond), loc)
}
