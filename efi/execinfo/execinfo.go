// Package execinfo decodes the EFI_IMAGE_EXECUTION_INFO_TABLE, the record
// firmware keeps of every image it tried to authenticate against db and dbx.
package execinfo

import (
	"errors"
	"iter"

	"github.com/foxboron/go-execinfo/efi/device"
	"github.com/foxboron/go-execinfo/efi/signature"
	"github.com/foxboron/go-execinfo/efi/util"
)

// Section 32.5.3.1 - Image Execution Information Table
// The table is published in the system configuration table under this GUID.
var EFI_IMAGE_SECURITY_DATABASE_GUID = util.EFIGUID{Data1: 0xd719b2cb, Data2: 0x3d3a, Data3: 0x4596, Data4: [8]uint8{0xa3, 0xbc, 0xda, 0xd0, 0x0e, 0x67, 0x65, 0x6f}}

const (
	// sizeof(UINTN) NumberOfImages, as laid out by 64-bit firmware
	SizeofImageExecutionInfoTable = 8
	// Action + InfoSize
	SizeofImageExecutionInfo = 4 + 4
)

var (
	ErrNameTruncated       = errors.New("image name is not null terminated")
	ErrDevicePathTruncated = errors.New("device path runs past the end of the record")
	ErrInvalidInfoSize     = errors.New("info size smaller than the record header")
)

// ImageExecutionInfo is one EFI_IMAGE_EXECUTION_INFO record. Byte slices are
// views into the walked buffer.
type ImageExecutionInfo struct {
	Index    uint64
	Offset   uint64 // from the start of the record area
	Action   Action
	InfoSize uint32
	Name     string
	// Device path of the image, see device.Format
	DevicePath []byte
	// Signature lists that were used to authenticate the image, if any
	Signature []byte

	NameTruncated       bool
	DevicePathTruncated bool
	InfoSizeInvalid     bool
}

// Malformed joins the reasons this record could only be partially decoded.
func (e *ImageExecutionInfo) Malformed() error {
	var errs []error
	if e.InfoSizeInvalid {
		errs = append(errs, ErrInvalidInfoSize)
	}
	if e.NameTruncated {
		errs = append(errs, ErrNameTruncated)
	}
	if e.DevicePathTruncated {
		errs = append(errs, ErrDevicePathTruncated)
	}
	return errors.Join(errs...)
}

// SignatureLists walks the signature lists attached to the record.
func (e *ImageExecutionInfo) SignatureLists() iter.Seq[*signature.SignatureList] {
	return signature.WalkSignatureLists(e.Signature)
}

// Table is a decoded EFI_IMAGE_EXECUTION_INFO_TABLE header.
type Table struct {
	NumberOfImages uint64
	records        []byte
}

// ParseTable reads the table header. A buffer too short for the header is
// treated as an empty table.
func ParseTable(b []byte) *Table {
	c := util.NewCursor(b)
	n, err := c.Uint64()
	if err != nil {
		return &Table{}
	}
	return &Table{NumberOfImages: n, records: c.Rest()}
}

// Records walks the records of the table. Every call starts a fresh walk.
func (t *Table) Records() iter.Seq[*ImageExecutionInfo] {
	return WalkRecords(t.records, t.NumberOfImages)
}

// Walk decodes a complete table, header included.
func Walk(b []byte) iter.Seq[*ImageExecutionInfo] {
	return ParseTable(b).Records()
}

// WalkRecords walks at most count records packed in buf.
//
// A record is only yielded when its declared size lies within buf. Fields
// that cannot be decoded are flagged on the record and the walk moves on by
// InfoSize. The walk ends early when InfoSize cannot move it forward.
func WalkRecords(buf []byte, count uint64) iter.Seq[*ImageExecutionInfo] {
	return func(yield func(*ImageExecutionInfo) bool) {
		c := util.NewCursor(buf)
		for i := uint64(0); i < count; i++ {
			start := c.Offset()
			action, err := c.Uint32()
			if err != nil {
				return
			}
			size, err := c.Uint32()
			if err != nil {
				return
			}
			info := &ImageExecutionInfo{
				Index:    i,
				Offset:   start,
				Action:   Action(action),
				InfoSize: size,
			}
			if size < SizeofImageExecutionInfo {
				// Nothing bounds this record but the buffer, and there
				// is no next record to find.
				info.InfoSizeInvalid = true
				info.decodeFields(c.Rest(), false)
				yield(info)
				return
			}
			body, err := util.Window(buf, c.Offset(), uint64(size-SizeofImageExecutionInfo))
			if err != nil {
				return
			}
			info.decodeFields(body, true)
			if !yield(info) {
				return
			}
			if err := c.Seek(start + uint64(size)); err != nil {
				return
			}
		}
	}
}

// decodeFields splits the bytes after the record header into the name, the
// device path and the trailing signature lists.
func (e *ImageExecutionInfo) decodeFields(body []byte, bounded bool) {
	c := util.NewCursor(body)
	n, err := util.UTF16StringSize(body)
	if err != nil {
		e.NameTruncated = true
		e.DevicePathTruncated = true
		return
	}
	name, _ := c.Read(n)
	if e.Name, err = util.DecodeUTF16(name); err != nil {
		e.NameTruncated = true
	}

	rest, _ := c.Peek(c.Len())
	n, err = device.DevicePathSize(rest)
	if err != nil {
		e.DevicePathTruncated = true
		return
	}
	e.DevicePath, _ = c.Read(n)

	if bounded && c.Len() > 0 {
		e.Signature = c.Rest()
	}
}
