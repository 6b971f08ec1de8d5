package efitest

import (
	"bytes"
	"encoding/binary"

	"github.com/foxboron/go-execinfo/efi/util"
)

// ImageRecord describes one EFI_IMAGE_EXECUTION_INFO record. A nil
// DevicePath is replaced by EndDevicePath.
type ImageRecord struct {
	Action     uint32
	Name       string
	DevicePath []byte
	Signature  []byte
}

// Bytes serializes the record with a correct InfoSize.
func (r ImageRecord) Bytes() []byte {
	dp := r.DevicePath
	if dp == nil {
		dp = EndDevicePath()
	}
	body := bytes.Join([][]byte{util.EncodeUTF16(r.Name), dp, r.Signature}, nil)
	return RawRecord(r.Action, uint32(8+len(body)), body)
}

// RawRecord writes a record header with an arbitrary InfoSize.
func RawRecord(action, infoSize uint32, body []byte) []byte {
	b := binary.LittleEndian.AppendUint32(nil, action)
	b = binary.LittleEndian.AppendUint32(b, infoSize)
	return append(b, body...)
}

// Table prefixes the records with NumberOfImages set to their count.
func Table(records ...ImageRecord) []byte {
	var raw [][]byte
	for _, r := range records {
		raw = append(raw, r.Bytes())
	}
	return RawTable(uint64(len(records)), raw...)
}

// RawTable writes a table with an arbitrary NumberOfImages.
func RawTable(count uint64, records ...[]byte) []byte {
	b := binary.LittleEndian.AppendUint64(nil, count)
	for _, r := range records {
		b = append(b, r...)
	}
	return b
}

// EndDevicePath is an End Entire Device Path node on its own.
func EndDevicePath() []byte {
	return []byte{0x7f, 0xff, 0x04, 0x00}
}

// FileDevicePath is a media file path node followed by the end node.
func FileDevicePath(path string) []byte {
	name := util.EncodeUTF16(path)
	b := []byte{0x04, 0x04, 0, 0}
	binary.LittleEndian.PutUint16(b[2:], uint16(4+len(name)))
	b = append(b, name...)
	return append(b, EndDevicePath()...)
}
