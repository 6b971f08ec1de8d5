package device

import (
	"encoding/binary"
	"fmt"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Subtypes of Media Device
// Section 10.3.5 - Media Device Path
const (
	_ DevicePathSubType = iota
	HardDriveMediaDevice
	CDRomMediaDevice
	VendorMediaDevice
	FileTypeMediaDevice
	_
	PIWGFirmwareFileMediaDevice
	PIWGFirmwareVolumeMediaDevice
	RelativeOffsetRangeMediaDevice
)

// Partition formats and signature types of the hard drive node
const (
	partitionFormatMBR = 0x01
	partitionFormatGPT = 0x02
	signatureTypeMBR   = 0x01
	signatureTypeGUID  = 0x02
)

type HardDriveMediaDevicePath struct {
	EFIDevicePath
	PartitionNumber    uint32
	PartitionStart     uint64
	PartitionSize      uint64
	PartitionSignature [16]byte
	PartitionFormat    uint8
	SignatureType      uint8
}

func (h HardDriveMediaDevicePath) Format() string {
	switch h.SignatureType {
	case signatureTypeGUID:
		return fmt.Sprintf("HD(%d,GPT,%s,0x%x,0x%x)", h.PartitionNumber,
			util.GUIDFromBytes(h.PartitionSignature), h.PartitionStart, h.PartitionSize)
	case signatureTypeMBR:
		return fmt.Sprintf("HD(%d,MBR,0x%08x,0x%x,0x%x)", h.PartitionNumber,
			binary.LittleEndian.Uint32(h.PartitionSignature[:4]), h.PartitionStart, h.PartitionSize)
	}
	return fmt.Sprintf("HD(%d,%d,0,0x%x,0x%x)", h.PartitionNumber, h.PartitionFormat, h.PartitionStart, h.PartitionSize)
}

type CDRomMediaDevicePath struct {
	EFIDevicePath
	BootEntry      uint32
	PartitionStart uint64
	PartitionSize  uint64
}

func (c CDRomMediaDevicePath) Format() string {
	return fmt.Sprintf("CDROM(0x%x,0x%x,0x%x)", c.BootEntry, c.PartitionStart, c.PartitionSize)
}

type VendorMediaDevicePath struct {
	EFIDevicePath
	Guid util.EFIGUID
}

func (v VendorMediaDevicePath) Format() string {
	return fmt.Sprintf("VenMedia(%s)", v.Guid)
}

type FileTypeMediaDevicePath struct {
	EFIDevicePath
	PathName string
}

func (f FileTypeMediaDevicePath) Format() string {
	return f.PathName
}

// FirmwareFileMediaDevicePath covers both the PIWG firmware file and
// firmware volume nodes, which only carry a GUID.
type FirmwareFileMediaDevicePath struct {
	EFIDevicePath
	Name util.EFIGUID
}

func (f FirmwareFileMediaDevicePath) Format() string {
	if f.SubType == PIWGFirmwareVolumeMediaDevice {
		return fmt.Sprintf("Fv(%s)", f.Name)
	}
	return fmt.Sprintf("FvFile(%s)", f.Name)
}

type RelativeOffsetRangeMediaDevicePath struct {
	EFIDevicePath
	StartingOffset uint64
	EndingOffset   uint64
}

func (r RelativeOffsetRangeMediaDevicePath) Format() string {
	return fmt.Sprintf("Offset(0x%x,0x%x)", r.StartingOffset, r.EndingOffset)
}

func ParseMediaDevicePath(efi EFIDevicePath, data []byte) EFIDevicePaths {
	c := util.NewCursor(data)
	switch efi.SubType {
	case HardDriveMediaDevice:
		m := HardDriveMediaDevicePath{EFIDevicePath: efi}
		var err error
		if m.PartitionNumber, err = c.Uint32(); err != nil {
			return nil
		}
		if m.PartitionStart, err = c.Uint64(); err != nil {
			return nil
		}
		if m.PartitionSize, err = c.Uint64(); err != nil {
			return nil
		}
		sig, err := c.Read(16)
		if err != nil {
			return nil
		}
		m.PartitionSignature = [16]byte(sig)
		if m.PartitionFormat, err = c.Uint8(); err != nil {
			return nil
		}
		if m.SignatureType, err = c.Uint8(); err != nil {
			return nil
		}
		return m
	case CDRomMediaDevice:
		m := CDRomMediaDevicePath{EFIDevicePath: efi}
		var err error
		if m.BootEntry, err = c.Uint32(); err != nil {
			return nil
		}
		if m.PartitionStart, err = c.Uint64(); err != nil {
			return nil
		}
		if m.PartitionSize, err = c.Uint64(); err != nil {
			return nil
		}
		return m
	case VendorMediaDevice:
		g, err := c.GUID()
		if err != nil {
			return nil
		}
		return VendorMediaDevicePath{EFIDevicePath: efi, Guid: g}
	case FileTypeMediaDevice:
		// Not every firmware terminates the path name
		name, err := util.DecodeUTF16(c.Rest())
		if err != nil {
			return nil
		}
		return FileTypeMediaDevicePath{EFIDevicePath: efi, PathName: name}
	case PIWGFirmwareFileMediaDevice, PIWGFirmwareVolumeMediaDevice:
		g, err := c.GUID()
		if err != nil {
			return nil
		}
		return FirmwareFileMediaDevicePath{EFIDevicePath: efi, Name: g}
	case RelativeOffsetRangeMediaDevice:
		if err := c.Skip(4); err != nil {
			return nil
		}
		m := RelativeOffsetRangeMediaDevicePath{EFIDevicePath: efi}
		var err error
		if m.StartingOffset, err = c.Uint64(); err != nil {
			return nil
		}
		if m.EndingOffset, err = c.Uint64(); err != nil {
			return nil
		}
		return m
	}
	return nil
}
