package device

import (
	"fmt"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Subtypes of Messaging Device Path
// Section 10.3.4
const (
	MessagingSCSI   DevicePathSubType = 2
	MessagingUSB    DevicePathSubType = 5
	MessagingVendor DevicePathSubType = 10
	MessagingMAC    DevicePathSubType = 11
	MessagingSATA   DevicePathSubType = 18
	MessagingNVMe   DevicePathSubType = 23
	MessagingURI    DevicePathSubType = 24
)

type SCSIMessagingDevicePath struct {
	EFIDevicePath
	PUN uint16
	LUN uint16
}

func (s SCSIMessagingDevicePath) Format() string {
	return fmt.Sprintf("Scsi(0x%x,0x%x)", s.PUN, s.LUN)
}

type USBMessagingDevicePath struct {
	EFIDevicePath
	USBParentPortNumber uint8
	Interface           uint8
}

func (u USBMessagingDevicePath) Format() string {
	return fmt.Sprintf("USB(0x%x,0x%x)", u.USBParentPortNumber, u.Interface)
}

type VendorMessagingDevicePath struct {
	EFIDevicePath
	Guid util.EFIGUID
}

func (v VendorMessagingDevicePath) Format() string {
	return fmt.Sprintf("VenMsg(%s)", v.Guid)
}

type MACMessagingDevicePath struct {
	EFIDevicePath
	Address []byte
	IfType  uint8
}

func (m MACMessagingDevicePath) Format() string {
	n := 6
	if m.IfType != 0 && m.IfType != 1 {
		n = len(m.Address)
	}
	return fmt.Sprintf("MAC(%x,0x%x)", m.Address[:n], m.IfType)
}

type SATAMessagingDevicePath struct {
	EFIDevicePath
	HBAPort        uint16
	PortMultiplier uint16
	LUN            uint16
}

func (s SATAMessagingDevicePath) Format() string {
	return fmt.Sprintf("Sata(0x%x,0x%x,0x%x)", s.HBAPort, s.PortMultiplier, s.LUN)
}

type NVMeMessagingDevicePath struct {
	EFIDevicePath
	NamespaceID uint32
	EUI64       [8]byte
}

func (n NVMeMessagingDevicePath) Format() string {
	e := n.EUI64
	return fmt.Sprintf("NVMe(0x%x,%02X-%02X-%02X-%02X-%02X-%02X-%02X-%02X)",
		n.NamespaceID, e[7], e[6], e[5], e[4], e[3], e[2], e[1], e[0])
}

type URIMessagingDevicePath struct {
	EFIDevicePath
	URI string
}

func (u URIMessagingDevicePath) Format() string {
	return fmt.Sprintf("Uri(%s)", u.URI)
}

func ParseMessagingDevicePath(efi EFIDevicePath, data []byte) EFIDevicePaths {
	c := util.NewCursor(data)
	switch efi.SubType {
	case MessagingSCSI:
		pun, err := c.Uint16()
		if err != nil {
			return nil
		}
		lun, err := c.Uint16()
		if err != nil {
			return nil
		}
		return SCSIMessagingDevicePath{EFIDevicePath: efi, PUN: pun, LUN: lun}
	case MessagingUSB:
		b, err := c.Read(2)
		if err != nil {
			return nil
		}
		return USBMessagingDevicePath{EFIDevicePath: efi, USBParentPortNumber: b[0], Interface: b[1]}
	case MessagingVendor:
		g, err := c.GUID()
		if err != nil {
			return nil
		}
		return VendorMessagingDevicePath{EFIDevicePath: efi, Guid: g}
	case MessagingMAC:
		addr, err := c.Read(32)
		if err != nil {
			return nil
		}
		iftype, err := c.Uint8()
		if err != nil {
			return nil
		}
		return MACMessagingDevicePath{EFIDevicePath: efi, Address: addr, IfType: iftype}
	case MessagingSATA:
		var v [3]uint16
		for i := range v {
			n, err := c.Uint16()
			if err != nil {
				return nil
			}
			v[i] = n
		}
		return SATAMessagingDevicePath{EFIDevicePath: efi, HBAPort: v[0], PortMultiplier: v[1], LUN: v[2]}
	case MessagingNVMe:
		nsid, err := c.Uint32()
		if err != nil {
			return nil
		}
		eui, err := c.Read(8)
		if err != nil {
			return nil
		}
		return NVMeMessagingDevicePath{EFIDevicePath: efi, NamespaceID: nsid, EUI64: [8]byte(eui)}
	case MessagingURI:
		return URIMessagingDevicePath{EFIDevicePath: efi, URI: string(c.Rest())}
	}
	return nil
}
